package main

import (
	"context"
	"database/sql"
	"time"

	dErrors "innflow/pkg/domain-errors"
	txcontext "innflow/pkg/platform/tx"
)

const defaultOnboardingTxTimeout = 5 * time.Second

type onboardingPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newOnboardingPostgresTx(db *sql.DB) *onboardingPostgresTx {
	return &onboardingPostgresTx{db: db}
}

func (t *onboardingPostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultOnboardingTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return nil
}
