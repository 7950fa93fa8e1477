package registry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/greyhound/greyhound/pkg/tenant"
	"github.com/greyhound/greyhound/svc/registry"
)

type fakeCollection struct {
	doc       any
	err       error
	insertErr error
	filter    any
	inserted  any
}

func (c *fakeCollection) FindOne(_ context.Context, filter any, _ ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	c.filter = filter
	doc := c.doc
	if doc == nil {
		doc = bson.D{}
	}
	return mongo.NewSingleResultFromDocument(doc, c.err, nil)
}

func (c *fakeCollection) InsertOne(_ context.Context, document any, _ ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	c.inserted = document
	if c.insertErr != nil {
		return nil, c.insertErr
	}
	return &mongo.InsertOneResult{}, nil
}

func TestMongoRegistryLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		coll := &fakeCollection{doc: bson.D{
			{Key: "_id", Value: id.String()},
			{Key: "slug", Value: "tenant"},
			{Key: "name", Value: "Tenant"},
			{Key: "created_at", Value: created},
		}}

		got, err := registry.NewMongoRegistry(coll).Lookup(ctx, "tenant")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "tenant", got.Slug)
		assert.Equal(t, "Tenant", got.Name)
		assert.True(t, created.Equal(got.CreatedAt))
		assert.Equal(t, bson.D{{Key: "slug", Value: "tenant"}}, coll.filter)
	})

	t.Run("no documents", func(t *testing.T) {
		t.Parallel()
		coll := &fakeCollection{err: mongo.ErrNoDocuments}

		_, err := registry.NewMongoRegistry(coll).Lookup(ctx, "zezinho")
		assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		coll := &fakeCollection{doc: bson.D{{Key: "_id", Value: "nope"}, {Key: "slug", Value: "tenant"}}}

		_, err := registry.NewMongoRegistry(coll).Lookup(ctx, "tenant")
		assert.Error(t, err)
		assert.False(t, tenant.IsNotFound(err))
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		down := errors.New("server selection timeout")
		coll := &fakeCollection{err: down}

		_, err := registry.NewMongoRegistry(coll).Lookup(ctx, "tenant")
		assert.ErrorIs(t, err, down)
	})
}

func TestMongoRegistryCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tn := tenant.Tenant{ID: uuid.New(), Slug: "acme", Name: "ACME"}

	coll := &fakeCollection{}
	require.NoError(t, registry.NewMongoRegistry(coll).Create(ctx, tn))
	assert.NotNil(t, coll.inserted)

	invalid := &fakeCollection{}
	assert.ErrorIs(t, registry.NewMongoRegistry(invalid).Create(ctx, tenant.Tenant{Slug: ""}), tenant.ErrInvalidSlug)
	assert.Nil(t, invalid.inserted)

	failing := &fakeCollection{insertErr: errors.New("write failed")}
	assert.Error(t, registry.NewMongoRegistry(failing).Create(ctx, tn))
}
