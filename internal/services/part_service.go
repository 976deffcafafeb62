package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bikeverse/api/internal/models"
	"github.com/bikeverse/api/internal/store"
)

// ErrInvalidID reports a path identifier that is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid identifier")

// PartService owns every store operation on the parts collection.
type PartService struct {
	parts store.Collection

	// upsertOnStock keeps the legacy create-on-missing behavior of the
	// stock update route when enabled.
	upsertOnStock bool
}

func NewPartService(parts store.Collection, upsertOnStock bool) *PartService {
	return &PartService{parts: parts, upsertOnStock: upsertOnStock}
}

// List returns the catalog, optionally one page of it.
func (s *PartService) List(ctx context.Context, page *store.Pagination) ([]bson.M, error) {
	return s.parts.Find(ctx, bson.M{}, page)
}

func (s *PartService) Count(ctx context.Context) (int64, error) {
	return s.parts.Count(ctx, bson.M{})
}

func (s *PartService) Featured(ctx context.Context) ([]bson.M, error) {
	return s.parts.Find(ctx, bson.M{"featured": true}, nil)
}

// ByCategory filters on exact category match; an empty category returns the
// whole catalog.
func (s *PartService) ByCategory(ctx context.Context, category string) ([]bson.M, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return s.parts.Find(ctx, filter, nil)
}

func (s *PartService) Get(ctx context.Context, id string) (bson.M, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var part bson.M
	if err := s.parts.FindOne(ctx, bson.M{"_id": objID}, &part); err != nil {
		return nil, err
	}
	return part, nil
}

// SetStock sets the stock field on one part. Whether a missing part is
// created depends on the configured upsert flag.
func (s *PartService) SetStock(ctx context.Context, id string, stock int) (*store.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	res, err := s.parts.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"stock": stock}}, s.upsertOnStock)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 && res.UpsertedID == nil {
		return nil, store.ErrNotFound
	}
	return res, nil
}

func (s *PartService) Create(ctx context.Context, doc bson.M) (interface{}, error) {
	return s.parts.InsertOne(ctx, doc)
}

func (s *PartService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	n, err := s.parts.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// AttachImage records the stored object and its public URL on the part.
func (s *PartService) AttachImage(ctx context.Context, id, url, object string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := s.parts.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$set": bson.M{"image_url": url, "image_object": object}}, false)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Image returns the part with its image fields typed. ErrNotFound also
// covers a part that exists but has no image attached.
func (s *PartService) Image(ctx context.Context, id string) (models.Part, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Part{}, ErrInvalidID
	}
	var part models.Part
	if err := s.parts.FindOne(ctx, bson.M{"_id": objID}, &part); err != nil {
		return models.Part{}, err
	}
	if part.ImageObject == "" {
		return models.Part{}, store.ErrNotFound
	}
	return part, nil
}
