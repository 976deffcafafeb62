package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bikeverse/api/internal/store"
)

// OrderService owns every store operation on the orders collection.
type OrderService struct {
	orders store.Collection
}

func NewOrderService(orders store.Collection) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) List(ctx context.Context) ([]bson.M, error) {
	return s.orders.Find(ctx, bson.M{}, nil)
}

// ByOwner returns the orders carrying the email as owner.
func (s *OrderService) ByOwner(ctx context.Context, email string) ([]bson.M, error) {
	return s.orders.Find(ctx, bson.M{"email": email}, nil)
}

func (s *OrderService) Create(ctx context.Context, doc bson.M) (interface{}, error) {
	return s.orders.InsertOne(ctx, doc)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	n, err := s.orders.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
