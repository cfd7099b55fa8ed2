package memory

import (
	"context"
	"sync"
)

// TransactionManager implements domain.TransactionManager with a single
// mutex. Every write sequence runs alone, which is the global serialization
// point required around validate-then-append. Read-only queries bypass it.
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// WithTransaction runs fn while holding the write mutex. There is nothing to
// roll back: callers append at most one statement, and only after every
// validation has passed.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return fn(ctx)
}
