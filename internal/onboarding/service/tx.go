package service

import "context"

// Tx provides a transactional boundary for the relational writes of an
// approval. Implementations wrap a database transaction and hand it to fn
// through the context; in-memory tests run fn directly.
type Tx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTx runs fn without a transaction. In-memory stores need no boundary.
type NopTx struct{}

func (NopTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
