package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/greyhound/greyhound/pkg/tenant"
)

// TenantsCollection is the default collection name.
const TenantsCollection = "tenants"

// collection is the part of *mongo.Collection the registry needs.
type collection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
}

type tenantDocument struct {
	ID        string    `bson:"_id"`
	Slug      string    `bson:"slug"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
}

// MongoRegistry reads tenants from a MongoDB collection.
type MongoRegistry struct {
	coll collection
}

// NewMongoRegistry returns a registry reading coll.
func NewMongoRegistry(coll collection) *MongoRegistry {
	return &MongoRegistry{coll: coll}
}

// EnsureIndexes creates the unique slug index.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("tenants_slug_unique"),
	})
	if err != nil {
		return fmt.Errorf("create tenants slug index: %w", err)
	}
	return nil
}

// Lookup returns tenant.ErrTenantNotFound when no document has slug.
func (r *MongoRegistry) Lookup(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var doc tenantDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("find tenant %q: %w", slug, err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("tenant %q has malformed id: %w", slug, err)
	}
	return &tenant.Tenant{ID: id, Slug: doc.Slug, Name: doc.Name, CreatedAt: doc.CreatedAt}, nil
}

// Create inserts t. A taken slug yields ErrDuplicateSlug.
func (r *MongoRegistry) Create(ctx context.Context, t tenant.Tenant) error {
	if !tenant.ValidSlug(t.Slug) {
		return fmt.Errorf("%w: %q", tenant.ErrInvalidSlug, t.Slug)
	}
	_, err := r.coll.InsertOne(ctx, tenantDocument{
		ID:        t.ID.String(),
		Slug:      t.Slug,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %q", ErrDuplicateSlug, t.Slug)
		}
		return fmt.Errorf("insert tenant %q: %w", t.Slug, err)
	}
	return nil
}
