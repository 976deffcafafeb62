package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bikeverse/api/internal/store"
	"github.com/bikeverse/api/internal/store/storetest"
)

func newUserService(users, orders *storetest.Collection) *UserService {
	return NewUserService(users, orders, storetest.Runner{})
}

func TestUserUpsertCreatesOnce(t *testing.T) {
	users := storetest.New()
	svc := newUserService(users, storetest.New())

	res, err := svc.Upsert(context.Background(), "new@x.com", bson.M{"email": "new@x.com", "name": "A"})
	require.NoError(t, err)
	assert.NotNil(t, res.UpsertedID)
	require.Len(t, users.Docs(), 1)
	assert.Equal(t, "A", users.Docs()[0]["name"])

	// A second login overwrites instead of duplicating.
	_, err = svc.Upsert(context.Background(), "new@x.com", bson.M{"email": "new@x.com", "name": "B"})
	require.NoError(t, err)
	require.Len(t, users.Docs(), 1)
	assert.Equal(t, "B", users.Docs()[0]["name"])
}

func TestUserUpdateRequiresExisting(t *testing.T) {
	users := storetest.New(bson.M{"email": "a@x.com", "name": "A"})
	svc := newUserService(users, storetest.New())

	res, err := svc.Update(context.Background(), "a@x.com", bson.M{"name": "A2"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)

	_, err = svc.Update(context.Background(), "ghost@x.com", bson.M{"name": "X"})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Len(t, users.Docs(), 1)
}

func TestUserIsAdmin(t *testing.T) {
	users := storetest.New()
	svc := newUserService(users, storetest.New())

	// Unknown user is not an admin rather than an error.
	isAdmin, err := svc.IsAdmin(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	_, err = svc.Upsert(context.Background(), "a@x.com", bson.M{"email": "a@x.com"})
	require.NoError(t, err)

	isAdmin, err = svc.IsAdmin(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	_, err = svc.MakeAdmin(context.Background(), "a@x.com")
	require.NoError(t, err)

	isAdmin, err = svc.IsAdmin(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestUserMakeAdminMissing(t *testing.T) {
	svc := newUserService(storetest.New(), storetest.New())

	_, err := svc.MakeAdmin(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserRemoveCascades(t *testing.T) {
	users := storetest.New(bson.M{"email": "x@x.com"}, bson.M{"email": "other@x.com"})
	orders := storetest.New(
		bson.M{"email": "x@x.com", "item": "hub"},
		bson.M{"email": "x@x.com", "item": "rim"},
		bson.M{"email": "other@x.com", "item": "chain"},
	)
	svc := newUserService(users, orders)

	require.NoError(t, svc.Remove(context.Background(), "x@x.com"))

	require.Len(t, users.Docs(), 1)
	assert.Equal(t, "other@x.com", users.Docs()[0]["email"])
	require.Len(t, orders.Docs(), 1)
	assert.Equal(t, "other@x.com", orders.Docs()[0]["email"])
}

func TestUserRemoveMissing(t *testing.T) {
	svc := newUserService(storetest.New(), storetest.New())

	assert.ErrorIs(t, svc.Remove(context.Background(), "ghost@x.com"), store.ErrNotFound)
}

func TestUserRemovePartialFailure(t *testing.T) {
	users := storetest.New(bson.M{"email": "x@x.com"})
	orders := storetest.New(bson.M{"email": "x@x.com", "item": "hub"})
	orders.FailWith = errors.New("connection reset")
	svc := newUserService(users, orders)

	err := svc.Remove(context.Background(), "x@x.com")
	assert.ErrorIs(t, err, store.ErrCascadeIncomplete)
}
