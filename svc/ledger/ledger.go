package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidOperation is returned for operations without a tenant id or booked
// for a tenant the store does not know.
var ErrInvalidOperation = errors.New("invalid ledger operation")

// Operation is a signed amount booked for a tenant. The balance of a tenant
// is the sum of its operations.
type Operation struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Store reads and books operations.
type Store interface {
	// Balance sums the tenant's operations; it is 0 for a tenant without any.
	Balance(ctx context.Context, tenantID uuid.UUID) (float64, error)
	Record(ctx context.Context, op Operation) error
}

func validate(op *Operation) error {
	if op.TenantID == uuid.Nil {
		return errors.Join(ErrInvalidOperation, errors.New("tenant id is required"))
	}
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now().UTC()
	}
	return nil
}
