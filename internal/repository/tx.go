package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner is the transaction executor every multi-statement workflow runs
// on: begin, run the callback on one connection, commit when it returns nil,
// roll back and return the original error otherwise. The connection is always
// released back to the pool by database/sql on every exit path. No retries —
// a transient connection error fails the whole operation.
type TxRunner interface {
	RunTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxRunner struct{ db *gorm.DB }

// NewTxRunner wraps a gorm handle. A nil db runs the callback directly with a
// nil tx, which lets stub-repository unit tests drive transactional services.
func NewTxRunner(db *gorm.DB) TxRunner { return &gormTxRunner{db: db} }

func (r *gormTxRunner) RunTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if r.db == nil {
		return fn(nil)
	}
	return r.db.WithContext(ctx).Transaction(fn)
}
