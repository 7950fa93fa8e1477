package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/greyhound/greyhound/pkg/tenant"
)

// MemoryRegistry keeps tenants in process memory. It backs development
// setups and tests.
type MemoryRegistry struct {
	mu      sync.RWMutex
	tenants map[string]tenant.Tenant
}

// NewMemoryRegistry returns a registry holding tenants. Later duplicates of a
// slug replace earlier ones.
func NewMemoryRegistry(tenants ...tenant.Tenant) *MemoryRegistry {
	r := &MemoryRegistry{tenants: make(map[string]tenant.Tenant, len(tenants))}
	for _, t := range tenants {
		r.tenants[t.Slug] = t
	}
	return r
}

// Lookup returns a copy of the stored tenant so callers cannot mutate the registry.
func (r *MemoryRegistry) Lookup(_ context.Context, slug string) (*tenant.Tenant, error) {
	r.mu.RLock()
	t, ok := r.tenants[slug]
	r.mu.RUnlock()
	if !ok {
		return nil, tenant.ErrTenantNotFound
	}
	return &t, nil
}

// Add stores t. It fails with ErrDuplicateSlug if the slug is taken.
func (r *MemoryRegistry) Add(t tenant.Tenant) error {
	if !tenant.ValidSlug(t.Slug) {
		return fmt.Errorf("%w: %q", tenant.ErrInvalidSlug, t.Slug)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tenants[t.Slug]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSlug, t.Slug)
	}
	r.tenants[t.Slug] = t
	return nil
}

// Remove deletes the tenant with slug and reports whether it existed.
func (r *MemoryRegistry) Remove(slug string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tenants[slug]
	delete(r.tenants, slug)
	return ok
}

// Len reports the number of stored tenants.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tenants)
}

type fixtureFile struct {
	Tenants []fixture `yaml:"tenants"`
}

type fixture struct {
	ID        string    `yaml:"id"`
	Slug      string    `yaml:"slug"`
	Name      string    `yaml:"name"`
	CreatedAt time.Time `yaml:"created_at"`
}

// LoadFixtures adds the tenants listed in a YAML document:
//
//	tenants:
//	  - slug: tenant
//	    name: Tenant
//	  - id: 0b7e6f5c-3f0e-4a7e-9d59-8a0f6a1f4c11
//	    slug: acme
//	    name: ACME
//
// A missing id is generated, a missing created_at defaults to now. Loading
// stops at the first invalid or duplicate entry.
func (r *MemoryRegistry) LoadFixtures(rd io.Reader) (int, error) {
	var file fixtureFile
	if err := yaml.NewDecoder(rd).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, errors.Join(ErrInvalidFixtures, err)
	}

	now := time.Now().UTC()
	for i, f := range file.Tenants {
		t := tenant.Tenant{Slug: f.Slug, Name: f.Name, CreatedAt: f.CreatedAt}
		if f.ID == "" {
			t.ID = uuid.New()
		} else {
			id, err := uuid.Parse(f.ID)
			if err != nil {
				return i, errors.Join(ErrInvalidFixtures, fmt.Errorf("tenant %q: %w", f.Slug, err))
			}
			t.ID = id
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if err := r.Add(t); err != nil {
			return i, errors.Join(ErrInvalidFixtures, err)
		}
	}
	return len(file.Tenants), nil
}
