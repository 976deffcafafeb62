package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a user's access level. Anything other than RoleAdmin is an
// ordinary user.
type Role string

const RoleAdmin Role = "admin"

// User is keyed by email; the ObjectID exists but no lookup uses it.
// Profile fields beyond these are client-defined and kept as-is.
type User struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	Email string                 `bson:"email" json:"email"`
	Role  Role                   `bson:"role,omitempty" json:"role,omitempty"`
	Extra map[string]interface{} `bson:",inline" json:"-"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
