package memory

import (
	"context"
	"sync"

	"martstore/internal/repositories"
)

// transactor serializes order flows with a mutex, standing in for the
// row locks the pgx Transactor takes. Writes are applied directly; the
// services only write after all validation has passed, so there is
// nothing to roll back on failure.
type transactor struct {
	mu sync.Mutex
}

func NewTransactor() repositories.Transactor {
	return &transactor{}
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
