package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/greyhound/greyhound/pkg/pg"
)

const (
	selectBalance   = `SELECT COALESCE(SUM(amount), 0) FROM operations WHERE tenant_id = $1`
	insertOperation = `INSERT INTO operations (id, tenant_id, amount, created_at) VALUES ($1, $2, $3, $4)`
)

// PostgresStore books operations in the operations table.
type PostgresStore struct {
	db pg.Querier
}

// NewPostgresStore returns a store backed by db.
func NewPostgresStore(db pg.Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

// Balance sums the operations of tenantID in SQL.
func (s *PostgresStore) Balance(ctx context.Context, tenantID uuid.UUID) (float64, error) {
	var sum float64
	if err := s.db.QueryRow(ctx, selectBalance, tenantID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum operations of tenant %s: %w", tenantID, err)
	}
	return sum, nil
}

// Record inserts op. A tenant missing from the tenants table yields
// ErrInvalidOperation.
func (s *PostgresStore) Record(ctx context.Context, op Operation) error {
	if err := validate(&op); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, insertOperation, op.ID, op.TenantID, op.Amount, op.CreatedAt); err != nil {
		if pg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("%w: unknown tenant %s", ErrInvalidOperation, op.TenantID)
		}
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}
