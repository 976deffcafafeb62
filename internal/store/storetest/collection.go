// Package storetest provides an in-memory store.Collection for package
// tests, covering the filter and update shapes the handlers actually use:
// field-equality filters, $set updates, and upserts.
package storetest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bikeverse/api/internal/store"
)

type Collection struct {
	mu   sync.Mutex
	docs []bson.M

	// FailWith, when set, is returned by every operation. Used to force
	// store failures in error-path tests.
	FailWith error
}

func New(docs ...bson.M) *Collection {
	c := &Collection{}
	for _, d := range docs {
		c.docs = append(c.docs, withID(d))
	}
	return c
}

// Docs returns a snapshot of the stored documents.
func (c *Collection) Docs() []bson.M {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]bson.M, len(c.docs))
	copy(out, c.docs)
	return out
}

func (c *Collection) Find(_ context.Context, filter bson.M, page *store.Pagination) ([]bson.M, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailWith != nil {
		return nil, c.FailWith
	}

	matched := []bson.M{}
	for _, d := range c.docs {
		if matches(d, filter) {
			matched = append(matched, d)
		}
	}
	if page == nil {
		return matched, nil
	}

	skip := page.Page * page.Size
	if skip >= int64(len(matched)) {
		return []bson.M{}, nil
	}
	end := skip + page.Size
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[skip:end], nil
}

func (c *Collection) FindOne(_ context.Context, filter bson.M, out interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailWith != nil {
		return c.FailWith
	}

	for _, d := range c.docs {
		if matches(d, filter) {
			raw, err := bson.Marshal(d)
			if err != nil {
				return err
			}
			return bson.Unmarshal(raw, out)
		}
	}
	return store.ErrNotFound
}

func (c *Collection) Count(_ context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailWith != nil {
		return 0, c.FailWith
	}

	var n int64
	for _, d := range c.docs {
		if matches(d, filter) {
			n++
		}
	}
	return n, nil
}

func (c *Collection) InsertOne(_ context.Context, doc bson.M) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailWith != nil {
		return nil, c.FailWith
	}

	doc = withID(doc)
	c.docs = append(c.docs, doc)
	return doc["_id"], nil
}

func (c *Collection) UpdateOne(_ context.Context, filter, update bson.M, upsert bool) (*store.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailWith != nil {
		return nil, c.FailWith
	}

	set, _ := update["$set"].(bson.M)
	for _, d := range c.docs {
		if matches(d, filter) {
			for k, v := range set {
				d[k] = v
			}
			return &store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	if !upsert {
		return &store.UpdateResult{}, nil
	}

	doc := bson.M{}
	for k, v := range filter {
		doc[k] = v
	}
	for k, v := range set {
		doc[k] = v
	}
	doc = withID(doc)
	c.docs = append(c.docs, doc)
	return &store.UpdateResult{UpsertedID: doc["_id"]}, nil
}

func (c *Collection) DeleteOne(_ context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailWith != nil {
		return 0, c.FailWith
	}

	for i, d := range c.docs {
		if matches(d, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *Collection) DeleteMany(_ context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailWith != nil {
		return 0, c.FailWith
	}

	kept := c.docs[:0]
	var n int64
	for _, d := range c.docs {
		if matches(d, filter) {
			n++
			continue
		}
		kept = append(kept, d)
	}
	c.docs = kept
	return n, nil
}

// Runner executes the function directly; the fake has no transactions.
type Runner struct{}

func (Runner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func withID(doc bson.M) bson.M {
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	return doc
}
