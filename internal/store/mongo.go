package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection adapts one *mongo.Collection to the Collection interface.
type MongoCollection struct {
	coll *mongo.Collection
}

func NewMongoCollection(coll *mongo.Collection) *MongoCollection {
	return &MongoCollection{coll: coll}
}

func (m *MongoCollection) Find(ctx context.Context, filter bson.M, page *Pagination) ([]bson.M, error) {
	opts := options.Find()
	if page != nil {
		opts.SetSkip(page.Page * page.Size)
		opts.SetLimit(page.Size)
	}

	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *MongoCollection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	err := m.coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *MongoCollection) Count(ctx context.Context, filter bson.M) (int64, error) {
	return m.coll.CountDocuments(ctx, filter)
}

func (m *MongoCollection) InsertOne(ctx context.Context, doc bson.M) (interface{}, error) {
	res, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (m *MongoCollection) UpdateOne(ctx context.Context, filter, update bson.M, upsert bool) (*UpdateResult, error) {
	res, err := m.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return nil, err
	}
	return &UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (m *MongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := m.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *MongoCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	res, err := m.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// MongoRunner runs a function inside a session transaction. Standalone
// deployments reject transactions, in which case the function is re-run
// without one and callers fall back to the documented two-step behavior.
type MongoRunner struct {
	client *mongo.Client
}

func NewMongoRunner(client *mongo.Client) *MongoRunner {
	return &MongoRunner{client: client}
}

func (r *MongoRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && transactionsUnsupported(err) {
		return fn(ctx)
	}
	return err
}

// transactionsUnsupported matches the IllegalOperation error standalone
// mongod servers return for transaction attempts.
func transactionsUnsupported(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(20)
}
