package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhound/greyhound/svc/ledger"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := ledger.NewMemoryStore()
	withOps, withoutOps := uuid.New(), uuid.New()

	for _, amount := range []float64{2.5, 7.5, 5, -5} {
		require.NoError(t, store.Record(ctx, ledger.Operation{TenantID: withOps, Amount: amount}))
	}

	sum, err := store.Balance(ctx, withOps)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, sum, 1e-9)

	sum, err = store.Balance(ctx, withoutOps)
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestMemoryStoreRejectsMissingTenant(t *testing.T) {
	t.Parallel()
	err := ledger.NewMemoryStore().Record(context.Background(), ledger.Operation{Amount: 1})
	assert.ErrorIs(t, err, ledger.ErrInvalidOperation)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := ledger.NewMemoryStore()
	id := uuid.New()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Record(ctx, ledger.Operation{TenantID: id, Amount: 1}))
		}()
	}
	wg.Wait()

	sum, err := store.Balance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 100.0, sum)
}

type row func(dest ...any) error

func (r row) Scan(dest ...any) error { return r(dest...) }

type fakeDB struct {
	sql     string
	args    []any
	scan    func(dest ...any) error
	execErr error
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.sql, db.args = sql, args
	return row(db.scan)
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.sql, db.args = sql, args
	return pgconn.CommandTag{}, db.execErr
}

func TestPostgresStoreBalance(t *testing.T) {
	t.Parallel()
	id := uuid.New()

	db := &fakeDB{scan: func(dest ...any) error {
		*dest[0].(*float64) = 10
		return nil
	}}
	sum, err := ledger.NewPostgresStore(db).Balance(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 10.0, sum)
	assert.Contains(t, db.sql, "COALESCE(SUM(amount), 0)")
	assert.Equal(t, []any{id}, db.args)

	failing := &fakeDB{scan: func(...any) error { return errors.New("timeout") }}
	_, err = ledger.NewPostgresStore(failing).Balance(context.Background(), id)
	assert.Error(t, err)
}

func TestPostgresStoreRecord(t *testing.T) {
	t.Parallel()
	id := uuid.New()

	db := &fakeDB{}
	require.NoError(t, ledger.NewPostgresStore(db).Record(context.Background(), ledger.Operation{TenantID: id, Amount: 3}))
	require.Len(t, db.args, 4)
	assert.NotEqual(t, uuid.Nil, db.args[0])
	assert.Equal(t, id, db.args[1])

	orphan := &fakeDB{execErr: &pgconn.PgError{Code: "23503"}}
	err := ledger.NewPostgresStore(orphan).Record(context.Background(), ledger.Operation{TenantID: id, Amount: 3})
	assert.ErrorIs(t, err, ledger.ErrInvalidOperation)
}
