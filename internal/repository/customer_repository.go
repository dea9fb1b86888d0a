package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// CustomerRepo provides CRUD operations for customers.  Field validation
// happens in the model layer before anything reaches this repository;
// here rows are written as given.
type CustomerRepo struct {
    db *sql.DB
}

// NewCustomerRepo returns a new CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Create inserts a new customer and returns the generated id.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) (uint64, error) {
    const q = `INSERT INTO customers (name, phone, email) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, c.Name, c.Phone, c.Email)
    if err != nil {
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    c.ID = uint64(id)
    return c.ID, nil
}

// GetByID returns a single customer or ErrCustomerNotFound.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
    const q = `SELECT id, name, phone, email, created_at FROM customers WHERE id = ?`
    c, err := scanCustomer(r.db.QueryRowContext(ctx, q, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrCustomerNotFound
    }
    return c, err
}

// GetTx is GetByID inside an existing transaction.
func (r *CustomerRepo) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Customer, error) {
    const q = `SELECT id, name, phone, email, created_at FROM customers WHERE id = ?`
    c, err := scanCustomer(tx.QueryRowContext(ctx, q, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrCustomerNotFound
    }
    return c, err
}

// List returns all customers, newest first.  An empty slice is returned
// when the table is empty.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
    const q = `SELECT id, name, phone, email, created_at FROM customers ORDER BY id DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Customer, 0)
    for rows.Next() {
        var c model.Customer
        var email sql.NullString
        if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &email, &c.CreatedAt); err != nil {
            return nil, err
        }
        c.Email = email.String
        out = append(out, c)
    }
    return out, rows.Err()
}

// Update overwrites the customer's name, phone and email.
func (r *CustomerRepo) Update(ctx context.Context, c *model.Customer) error {
    const q = `UPDATE customers SET name = ?, phone = ?, email = ? WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, c.Name, c.Phone, c.Email, c.ID)
    return err
}

// Delete removes a customer.  Their bookings go with them via the
// ON DELETE CASCADE foreign key.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
    const q = `DELETE FROM customers WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, id)
    return err
}

type rowScanner interface {
    Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*model.Customer, error) {
    var c model.Customer
    var email sql.NullString
    if err := row.Scan(&c.ID, &c.Name, &c.Phone, &email, &c.CreatedAt); err != nil {
        return nil, err
    }
    c.Email = email.String
    return &c, nil
}
