package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Part is a catalog entry. Descriptive fields vary per part; only the ones
// the API filters or mutates on are typed here.
type Part struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	Category    string                 `bson:"category,omitempty" json:"category,omitempty"`
	Featured    bool                   `bson:"featured,omitempty" json:"featured,omitempty"`
	Stock       int                    `bson:"stock" json:"stock"`
	ImageURL    string                 `bson:"image_url,omitempty" json:"image_url,omitempty"`
	ImageObject string                 `bson:"image_object,omitempty" json:"-"`
	Extra       map[string]interface{} `bson:",inline" json:"-"`
}
