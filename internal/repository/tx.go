package repository

import (
    "context"
    "database/sql"
)

// TxRunner executes a function inside a single database transaction,
// committing on success and rolling back on error or panic.  The booking
// service runs every state transition through it so the booking-status
// write and the table-status write land atomically.
type TxRunner struct {
    DB *sql.DB
}

// NewTxRunner returns a TxRunner bound to the given database.
func NewTxRunner(db *sql.DB) *TxRunner { return &TxRunner{DB: db} }

// RunTx begins a transaction, invokes fn with it, and commits when fn
// returns nil.  Any error from fn aborts the transaction and is returned
// unchanged so sentinel comparisons keep working across the boundary.
func (r *TxRunner) RunTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
    tx, err := r.DB.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    if err := fn(tx); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}
