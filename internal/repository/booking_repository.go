package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// BookingRepo provides CRUD operations for bookings and the denormalized
// detail reads used by listings and reports.  Status writes happen only
// through the Tx variants so they stay inside the transition transaction
// the booking service opens.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookingDetail is a booking row joined with its customer and table.  It
// is the shape listings and reports work with.
type BookingDetail struct {
    ID           uint64 `json:"id"`
    CustomerID   uint64 `json:"customer_id"`
    CustomerName string `json:"customer_name"`
    Phone        string `json:"phone"`
    TableID      uint64 `json:"table_id"`
    TableNumber  int    `json:"table_number"`
    Capacity     int    `json:"capacity"`
    ReservedAt   string `json:"reserved_at"`
    PartySize    int    `json:"party_size"`
    Status       string `json:"status"`
    Notes        string `json:"notes,omitempty"`
}

// BookingFilter narrows detail reads.  Zero values mean "no filter".
// FromDate and ToDate are YYYY-MM-DD strings compared inclusively against
// the date portion of reserved_at.
type BookingFilter struct {
    ID       uint64
    Status   string
    FromDate string
    ToDate   string
}

// CreateTx inserts a new booking within an existing transaction and
// populates the generated id on the provided record.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
    const q = `INSERT INTO bookings (customer_id, table_id, reserved_at, party_size, status, notes)
               VALUES (?, ?, ?, ?, ?, ?)`
    res, err := tx.ExecContext(ctx, q, b.CustomerID, b.TableID, b.ReservedAt, b.PartySize, b.Status, b.Notes)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    return nil
}

// GetByID returns a single booking or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    return getBooking(ctx, r.db, id)
}

// GetTx is GetByID inside an existing transaction.
func (r *BookingRepo) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Booking, error) {
    return getBooking(ctx, tx, id)
}

type querier interface {
    QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getBooking(ctx context.Context, q querier, id uint64) (*model.Booking, error) {
    const sel = `SELECT id, customer_id, table_id, reserved_at, party_size, status, notes, created_at
                 FROM bookings WHERE id = ?`
    var b model.Booking
    var reservedAt time.Time
    var notes sql.NullString
    err := q.QueryRowContext(ctx, sel, id).Scan(
        &b.ID, &b.CustomerID, &b.TableID, &reservedAt, &b.PartySize, &b.Status, &notes, &b.CreatedAt,
    )
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrBookingNotFound
    }
    if err != nil {
        return nil, err
    }
    b.ReservedAt = reservedAt.Format(model.TimeLayout)
    b.Notes = notes.String
    return &b, nil
}

// UpdateTx overwrites the booking's reservation time, party size and
// notes within an existing transaction.  Status is deliberately excluded;
// it only moves through UpdateStatusTx.
func (r *BookingRepo) UpdateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
    const q = `UPDATE bookings SET reserved_at = ?, party_size = ?, notes = ? WHERE id = ?`
    _, err := tx.ExecContext(ctx, q, b.ReservedAt, b.PartySize, b.Notes, b.ID)
    return err
}

// UpdateStatusTx writes only the status column inside an existing
// transaction.
func (r *BookingRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
    const q = `UPDATE bookings SET status = ? WHERE id = ?`
    _, err := tx.ExecContext(ctx, q, status, id)
    return err
}

// DeleteTx removes a booking within an existing transaction.
func (r *BookingRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
    const q = `DELETE FROM bookings WHERE id = ?`
    _, err := tx.ExecContext(ctx, q, id)
    return err
}

// GetDetail returns the denormalized row for a single booking or
// ErrBookingNotFound.
func (r *BookingRepo) GetDetail(ctx context.Context, id uint64) (*BookingDetail, error) {
    details, err := r.ListDetails(ctx, BookingFilter{ID: id})
    if err != nil {
        return nil, err
    }
    if len(details) == 0 {
        return nil, ErrBookingNotFound
    }
    return &details[0], nil
}

// ListDetails returns booking rows joined with customer name/phone and
// table number/capacity, newest reservation first.  The filter narrows by
// id, status or an inclusive date range over the date portion of
// reserved_at.
func (r *BookingRepo) ListDetails(ctx context.Context, f BookingFilter) ([]BookingDetail, error) {
    q, args := buildDetailQuery(f)
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]BookingDetail, 0)
    for rows.Next() {
        var d BookingDetail
        var reservedAt time.Time
        var notes sql.NullString
        if err := rows.Scan(
            &d.ID, &d.CustomerID, &reservedAt, &d.PartySize, &d.Status, &notes,
            &d.CustomerName, &d.Phone, &d.TableID, &d.TableNumber, &d.Capacity,
        ); err != nil {
            return nil, err
        }
        d.ReservedAt = reservedAt.Format(model.TimeLayout)
        d.Notes = notes.String
        out = append(out, d)
    }
    return out, rows.Err()
}

// buildDetailQuery assembles the join query and its arguments for the
// given filter.  Kept separate so the filter logic is testable without a
// live database.
func buildDetailQuery(f BookingFilter) (string, []any) {
    q := `SELECT b.id, b.customer_id, b.reserved_at, b.party_size, b.status, b.notes,
                 c.name, c.phone, t.id, t.table_number, t.capacity
          FROM bookings b
          JOIN customers c ON c.id = b.customer_id
          JOIN tables t ON t.id = b.table_id
          WHERE 1=1`
    args := []any{}
    if f.ID != 0 {
        q += ` AND b.id = ?`
        args = append(args, f.ID)
    }
    if f.Status != "" {
        q += ` AND b.status = ?`
        args = append(args, f.Status)
    }
    if f.FromDate != "" {
        q += ` AND DATE(b.reserved_at) >= ?`
        args = append(args, f.FromDate)
    }
    if f.ToDate != "" {
        q += ` AND DATE(b.reserved_at) <= ?`
        args = append(args, f.ToDate)
    }
    q += ` ORDER BY b.reserved_at DESC`
    return q, args
}
