// Package store is the document-store adapter. Handlers and services depend
// on the Collection interface only, so tests swap the MongoDB implementation
// for the in-memory fake in storetest.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound reports that a by-key lookup, update, or delete matched no
// document.
var ErrNotFound = errors.New("document not found")

// ErrCascadeIncomplete reports that a multi-step delete removed some but not
// all of its targets, leaving the collections inconsistent.
var ErrCascadeIncomplete = errors.New("cascade delete incomplete")

// Pagination selects one zero-based page of a find result. A nil *Pagination
// means the full result set; page 0 with a positive size is a real request
// for the first page.
type Pagination struct {
	Page int64
	Size int64
}

// UpdateResult mirrors the store's native update outcome, which several
// routes return verbatim to the client.
type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount" bson:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount" bson:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty" bson:"upsertedId,omitempty"`
}

// Collection is the operation set every handler maps onto. Filters and
// documents are plain bson maps; the adapter does not interpret them.
type Collection interface {
	Find(ctx context.Context, filter bson.M, page *Pagination) ([]bson.M, error)
	// FindOne decodes the first matching document into out, which must be
	// a pointer (typically *bson.M or a model struct). ErrNotFound when
	// nothing matches.
	FindOne(ctx context.Context, filter bson.M, out interface{}) error
	Count(ctx context.Context, filter bson.M) (int64, error)
	InsertOne(ctx context.Context, doc bson.M) (interface{}, error)
	UpdateOne(ctx context.Context, filter, update bson.M, upsert bool) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
}

// Runner executes fn atomically when the backing store supports it.
type Runner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
