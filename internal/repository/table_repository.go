package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// TableRepo provides CRUD operations for restaurant tables plus the
// status writes the booking service issues inside its transactions.
type TableRepo struct {
    db *sql.DB
}

// NewTableRepo returns a new TableRepo bound to the given database.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

// Create inserts a new table and returns the generated id.  A duplicate
// table number maps to ErrTableNumberExists.
func (r *TableRepo) Create(ctx context.Context, t *model.Table) (uint64, error) {
    const q = `INSERT INTO tables (table_number, capacity, status) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, t.Number, t.Capacity, t.Status)
    if err != nil {
        if isDuplicateKey(err) {
            return 0, ErrTableNumberExists
        }
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    t.ID = uint64(id)
    return t.ID, nil
}

// GetByID returns a single table or ErrTableNotFound.
func (r *TableRepo) GetByID(ctx context.Context, id uint64) (*model.Table, error) {
    const q = `SELECT id, table_number, capacity, status, created_at FROM tables WHERE id = ?`
    t, err := scanTable(r.db.QueryRowContext(ctx, q, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrTableNotFound
    }
    return t, err
}

// GetTx is GetByID inside an existing transaction.  The booking service
// reads the table row under the same transaction that mutates it.
func (r *TableRepo) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Table, error) {
    const q = `SELECT id, table_number, capacity, status, created_at FROM tables WHERE id = ?`
    t, err := scanTable(tx.QueryRowContext(ctx, q, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrTableNotFound
    }
    return t, err
}

// List returns tables ordered by table number.  When status is non-empty
// only tables in that status are returned.
func (r *TableRepo) List(ctx context.Context, status string) ([]model.Table, error) {
    q := `SELECT id, table_number, capacity, status, created_at FROM tables`
    args := []any{}
    if status != "" {
        q += ` WHERE status = ?`
        args = append(args, status)
    }
    q += ` ORDER BY table_number`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Table, 0)
    for rows.Next() {
        var t model.Table
        if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    return out, rows.Err()
}

// Update overwrites the table's number, capacity and status.  Writing the
// status here is the explicit operator override; normal status changes
// flow through UpdateStatusTx as part of a booking transition.
func (r *TableRepo) Update(ctx context.Context, t *model.Table) error {
    const q = `UPDATE tables SET table_number = ?, capacity = ?, status = ? WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, t.Number, t.Capacity, t.Status, t.ID)
    if err != nil && isDuplicateKey(err) {
        return ErrTableNumberExists
    }
    return err
}

// UpdateStatusTx writes only the status column inside an existing
// transaction.  Every booking state transition pairs this with its
// booking-status write so the two commit or roll back together.
func (r *TableRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
    const q = `UPDATE tables SET status = ? WHERE id = ?`
    _, err := tx.ExecContext(ctx, q, status, id)
    return err
}

// Delete removes a table.  Dependent bookings are removed by the
// ON DELETE CASCADE foreign key.
func (r *TableRepo) Delete(ctx context.Context, id uint64) error {
    const q = `DELETE FROM tables WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, id)
    return err
}

func scanTable(row rowScanner) (*model.Table, error) {
    var t model.Table
    if err := row.Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.CreatedAt); err != nil {
        return nil, err
    }
    return &t, nil
}

// isDuplicateKey detects MySQL error 1062 (duplicate entry) without
// importing driver internals.
func isDuplicateKey(err error) bool {
    return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
