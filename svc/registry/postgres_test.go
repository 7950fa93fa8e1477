package registry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/greyhound/greyhound/pkg/tenant"
	"github.com/greyhound/greyhound/svc/registry"
)

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

type mockQuerier struct {
	mock.Mock
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return m.Called(ctx, sql, args).Get(0).(pgx.Row)
}

func (m *mockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(ctx, sql, args)
	return pgconn.NewCommandTag("INSERT 0 1"), called.Error(0)
}

func tenantRow(t tenant.Tenant) pgx.Row {
	return rowFunc(func(dest ...any) error {
		*dest[0].(*uuid.UUID) = t.ID
		*dest[1].(*string) = t.Slug
		*dest[2].(*string) = t.Name
		*dest[3].(*time.Time) = t.CreatedAt
		return nil
	})
}

func TestPostgresRegistryLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	want := tenant.Tenant{ID: uuid.New(), Slug: "tenant", Name: "Tenant", CreatedAt: time.Now().UTC()}

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		db := &mockQuerier{}
		db.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{"tenant"}).Return(tenantRow(want))

		got, err := registry.NewPostgresRegistry(db).Lookup(ctx, "tenant")
		require.NoError(t, err)
		assert.Equal(t, want, *got)
		db.AssertExpectations(t)
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		db := &mockQuerier{}
		db.On("QueryRow", ctx, mock.Anything, []any{"zezinho"}).
			Return(rowFunc(func(...any) error { return pgx.ErrNoRows }))

		got, err := registry.NewPostgresRegistry(db).Lookup(ctx, "zezinho")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
	})

	t.Run("driver failure", func(t *testing.T) {
		t.Parallel()
		down := errors.New("connection reset")
		db := &mockQuerier{}
		db.On("QueryRow", ctx, mock.Anything, mock.Anything).
			Return(rowFunc(func(...any) error { return down }))

		_, err := registry.NewPostgresRegistry(db).Lookup(ctx, "tenant")
		assert.ErrorIs(t, err, down)
		assert.False(t, tenant.IsNotFound(err))
	})
}

func TestPostgresRegistryCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tn := tenant.Tenant{ID: uuid.New(), Slug: "acme", Name: "ACME", CreatedAt: time.Now()}

	t.Run("inserted", func(t *testing.T) {
		t.Parallel()
		db := &mockQuerier{}
		db.On("Exec", ctx, mock.Anything, []any{tn.ID, tn.Slug, tn.Name, tn.CreatedAt}).Return(nil)

		require.NoError(t, registry.NewPostgresRegistry(db).Create(ctx, tn))
		db.AssertExpectations(t)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		t.Parallel()
		db := &mockQuerier{}
		db.On("Exec", ctx, mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		err := registry.NewPostgresRegistry(db).Create(ctx, tn)
		assert.ErrorIs(t, err, registry.ErrDuplicateSlug)
	})

	t.Run("invalid slug", func(t *testing.T) {
		t.Parallel()
		db := &mockQuerier{}
		err := registry.NewPostgresRegistry(db).Create(ctx, tenant.Tenant{Slug: "a/b"})
		assert.ErrorIs(t, err, tenant.ErrInvalidSlug)
		db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
	})
}
