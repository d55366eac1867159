package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// WithTx runs fn inside a transaction on one pooled connection. The deferred
// rollback covers every exit path, panics included; after a successful commit
// it is a no-op.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
