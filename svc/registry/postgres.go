package registry

import (
	"context"
	"fmt"

	"github.com/greyhound/greyhound/pkg/pg"
	"github.com/greyhound/greyhound/pkg/tenant"
)

const (
	selectTenantBySlug = `SELECT id, slug, name, created_at FROM tenants WHERE slug = $1`
	insertTenant       = `INSERT INTO tenants (id, slug, name, created_at) VALUES ($1, $2, $3, $4)`
)

// PostgresRegistry reads tenants from the tenants table.
type PostgresRegistry struct {
	db pg.Querier
}

// NewPostgresRegistry returns a registry backed by db.
func NewPostgresRegistry(db pg.Querier) *PostgresRegistry {
	return &PostgresRegistry{db: db}
}

// Lookup returns tenant.ErrTenantNotFound when no row has slug.
func (r *PostgresRegistry) Lookup(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var t tenant.Tenant
	err := r.db.QueryRow(ctx, selectTenantBySlug, slug).Scan(&t.ID, &t.Slug, &t.Name, &t.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("select tenant %q: %w", slug, err)
	}
	return &t, nil
}

// Create inserts t. A taken slug yields ErrDuplicateSlug.
func (r *PostgresRegistry) Create(ctx context.Context, t tenant.Tenant) error {
	if !tenant.ValidSlug(t.Slug) {
		return fmt.Errorf("%w: %q", tenant.ErrInvalidSlug, t.Slug)
	}
	if _, err := r.db.Exec(ctx, insertTenant, t.ID, t.Slug, t.Name, t.CreatedAt); err != nil {
		if pg.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %q", ErrDuplicateSlug, t.Slug)
		}
		return fmt.Errorf("insert tenant %q: %w", t.Slug, err)
	}
	return nil
}
