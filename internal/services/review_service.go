package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bikeverse/api/internal/store"
)

// ReviewService owns every store operation on the reviews collection.
type ReviewService struct {
	reviews store.Collection
}

func NewReviewService(reviews store.Collection) *ReviewService {
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) List(ctx context.Context) ([]bson.M, error) {
	return s.reviews.Find(ctx, bson.M{}, nil)
}

func (s *ReviewService) Create(ctx context.Context, doc bson.M) (interface{}, error) {
	return s.reviews.InsertOne(ctx, doc)
}
