package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bikeverse/api/internal/models"
	"github.com/bikeverse/api/internal/store"
)

// UserService owns the users collection plus the order cleanup that user
// removal cascades into. Email is the only key any mutation accepts.
type UserService struct {
	users  store.Collection
	orders store.Collection
	runner store.Runner
}

func NewUserService(users, orders store.Collection, runner store.Runner) *UserService {
	return &UserService{users: users, orders: orders, runner: runner}
}

// Upsert creates or overwrites the user document for the email. This is the
// login/registration path; the caller issues a token for the same fields.
func (s *UserService) Upsert(ctx context.Context, email string, doc bson.M) (*store.UpdateResult, error) {
	return s.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": doc}, true)
}

func (s *UserService) Get(ctx context.Context, email string) (bson.M, error) {
	var user bson.M
	if err := s.users.FindOne(ctx, bson.M{"email": email}, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a field-set update to an existing user. Unlike Upsert it
// never creates the user.
func (s *UserService) Update(ctx context.Context, email string, fields bson.M) (*store.UpdateResult, error) {
	res, err := s.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields}, false)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, store.ErrNotFound
	}
	return res, nil
}

// IsAdmin reports whether the user carries the admin role. An unknown email
// is simply not an admin, not an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}, &user)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *UserService) List(ctx context.Context) ([]bson.M, error) {
	return s.users.Find(ctx, bson.M{}, nil)
}

func (s *UserService) MakeAdmin(ctx context.Context, email string) (*store.UpdateResult, error) {
	res, err := s.users.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"role": string(models.RoleAdmin)}}, false)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, store.ErrNotFound
	}
	return res, nil
}

// Remove deletes the user and every order owned by the email. Both deletes
// run through the transaction runner; when the deployment cannot provide a
// transaction and the order cleanup fails after the user is gone, the
// partial state is surfaced as ErrCascadeIncomplete.
func (s *UserService) Remove(ctx context.Context, email string) error {
	return s.runner.WithTransaction(ctx, func(ctx context.Context) error {
		n, err := s.users.DeleteOne(ctx, bson.M{"email": email})
		if err != nil {
			return err
		}
		if n == 0 {
			return store.ErrNotFound
		}
		if _, err := s.orders.DeleteMany(ctx, bson.M{"email": email}); err != nil {
			return fmt.Errorf("%w: orders for %s: %v", store.ErrCascadeIncomplete, email, err)
		}
		return nil
	})
}
