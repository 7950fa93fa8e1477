package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tenant is a customer organisation addressed by the first segment of the
// request path. Business data owned by the tenant lives elsewhere and is
// keyed by ID.
type Tenant struct {
	ID        uuid.UUID `json:"id" yaml:"id" bson:"id"`
	Slug      string    `json:"slug" yaml:"slug" bson:"slug"`
	Name      string    `json:"name" yaml:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at" bson:"created_at"`
}

// Registry looks tenants up by slug.
type Registry interface {
	// Lookup returns the tenant whose slug matches exactly.
	// Returns ErrTenantNotFound if there is none.
	Lookup(ctx context.Context, slug string) (*Tenant, error)
}

// RegistryFunc is an adapter to allow the use of ordinary functions as a Registry.
type RegistryFunc func(ctx context.Context, slug string) (*Tenant, error)

// Lookup calls f(ctx, slug).
func (f RegistryFunc) Lookup(ctx context.Context, slug string) (*Tenant, error) {
	return f(ctx, slug)
}

// PathFor returns rest prefixed with the tenant segment, so that links
// rendered by downstream views survive the path rewrite done by the middleware.
// PathFor(t, "/saldo/") for tenant "acme" is "/acme/saldo/".
func PathFor(t *Tenant, rest string) string {
	if t == nil {
		return rest
	}
	if rest == "" {
		return "/" + t.Slug
	}
	if rest[0] != '/' {
		rest = "/" + rest
	}
	return "/" + t.Slug + rest
}
