package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps operations in process memory, grouped by tenant.
type MemoryStore struct {
	mu  sync.RWMutex
	ops map[uuid.UUID][]Operation
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ops: make(map[uuid.UUID][]Operation)}
}

// Balance sums the operations of tenantID. An unknown tenant has a zero balance.
func (s *MemoryStore) Balance(_ context.Context, tenantID uuid.UUID) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, op := range s.ops[tenantID] {
		sum += op.Amount
	}
	return sum, nil
}

// Record validates op and appends it to its tenant.
func (s *MemoryStore) Record(_ context.Context, op Operation) error {
	if err := validate(&op); err != nil {
		return err
	}
	s.mu.Lock()
	s.ops[op.TenantID] = append(s.ops[op.TenantID], op)
	s.mu.Unlock()
	return nil
}
