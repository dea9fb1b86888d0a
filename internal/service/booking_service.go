// Package service implements the booking state machine.  It is the only
// place booking and table statuses change together: every transition
// runs the booking-status write and the table-status write inside one
// transaction, so a crash can never leave a table claiming a booking
// that no longer holds it.
package service

import (
    "context"
    "database/sql"
    "errors"
    "log"
    "time"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
    "github.com/iliyamo/restaurant-table-reservation/internal/queue"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// ErrTableUnavailable is returned when a booking targets a table that is
// reserved or occupied.
var ErrTableUnavailable = errors.New("table is not available")

// ErrCapacityExceeded is returned when the party does not fit the table.
var ErrCapacityExceeded = errors.New("party size exceeds table capacity")

// ErrIllegalTransition is returned when the booking's current status does
// not permit the requested transition, e.g. confirming a cancelled
// booking.  Completed and cancelled are terminal.
var ErrIllegalTransition = errors.New("illegal status transition")

// ValidationError carries the first failing rule's message from an
// entity validator.  It is a soft failure: handlers answer 400 with the
// message and the operation is simply not performed.
type ValidationError struct {
    Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// TxRunner executes a function inside one database transaction.
type TxRunner interface {
    RunTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// CustomerStore is the slice of the customer repository the booking
// service needs.
type CustomerStore interface {
    GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Customer, error)
}

// TableStore is the slice of the table repository the booking service
// needs.
type TableStore interface {
    GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Table, error)
    UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error
}

// BookingStore is the slice of the booking repository the booking
// service needs.
type BookingStore interface {
    CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error
    GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Booking, error)
    UpdateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error
    UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error
    DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error
    GetDetail(ctx context.Context, id uint64) (*repository.BookingDetail, error)
}

// EventPublisher publishes domain events.  Publishing is best-effort.
type EventPublisher interface {
    PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error
}

// TableInvalidator drops cached table listings after a status write.
type TableInvalidator interface {
    Invalidate(ctx context.Context)
}

// BookingService orchestrates entity validation, persistence and the
// table-status side effects of the booking lifecycle.
type BookingService struct {
    tx        TxRunner
    customers CustomerStore
    tables    TableStore
    bookings  BookingStore
    publisher EventPublisher
    cache     TableInvalidator
}

// NewBookingService wires the service.  publisher and cache may be nil;
// the corresponding side effects are then skipped.
func NewBookingService(tx TxRunner, customers CustomerStore, tables TableStore, bookings BookingStore, publisher EventPublisher, cache TableInvalidator) *BookingService {
    if tx == nil || customers == nil || tables == nil || bookings == nil {
        panic("nil store passed to NewBookingService")
    }
    return &BookingService{
        tx:        tx,
        customers: customers,
        tables:    tables,
        bookings:  bookings,
        publisher: publisher,
        cache:     cache,
    }
}

// Create validates the candidate booking and persists it as pending,
// reserving its table in the same transaction.  The booking must target
// an existing customer and an available table with enough capacity.
// On success b carries the generated id.
func (s *BookingService) Create(ctx context.Context, b *model.Booking) error {
    if b.Status == "" {
        b.Status = model.BookingPending
    }
    if b.ReservedAt == "" {
        b.ReservedAt = time.Now().Format(model.TimeLayout)
    }
    if ok, msg := b.Validate(); !ok {
        return &ValidationError{Msg: msg}
    }
    err := s.tx.RunTx(ctx, func(tx *sql.Tx) error {
        if _, err := s.customers.GetTx(ctx, tx, b.CustomerID); err != nil {
            return err
        }
        table, err := s.tables.GetTx(ctx, tx, b.TableID)
        if err != nil {
            return err
        }
        if !table.IsAvailable() {
            return ErrTableUnavailable
        }
        if b.PartySize > table.Capacity {
            return ErrCapacityExceeded
        }
        b.Status = model.BookingPending
        if err := s.bookings.CreateTx(ctx, tx, b); err != nil {
            return err
        }
        return s.tables.UpdateStatusTx(ctx, tx, b.TableID, model.TableReserved)
    })
    if err != nil {
        return err
    }
    s.invalidateTables(ctx)
    return nil
}

// Confirm moves a pending booking to confirmed and its table to
// occupied.  After the transaction commits, a booking.confirmed event is
// published; a publish failure is logged, never surfaced.
func (s *BookingService) Confirm(ctx context.Context, id uint64) error {
    if err := s.transition(ctx, id, model.BookingConfirmed, model.TableOccupied, model.BookingPending); err != nil {
        return err
    }
    s.invalidateTables(ctx)
    s.publishConfirmed(ctx, id)
    return nil
}

// Complete moves a confirmed booking to completed and frees its table.
func (s *BookingService) Complete(ctx context.Context, id uint64) error {
    if err := s.transition(ctx, id, model.BookingCompleted, model.TableAvailable, model.BookingConfirmed); err != nil {
        return err
    }
    s.invalidateTables(ctx)
    return nil
}

// Cancel moves a pending or confirmed booking to cancelled and frees its
// table.  Terminal bookings cannot be cancelled.
func (s *BookingService) Cancel(ctx context.Context, id uint64) error {
    if err := s.transition(ctx, id, model.BookingCancelled, model.TableAvailable, model.BookingPending, model.BookingConfirmed); err != nil {
        return err
    }
    s.invalidateTables(ctx)
    return nil
}

// Delete removes a booking in any status.  A pending or confirmed
// booking still holds its table, so the table is freed first within the
// same transaction.
func (s *BookingService) Delete(ctx context.Context, id uint64) error {
    err := s.tx.RunTx(ctx, func(tx *sql.Tx) error {
        b, err := s.bookings.GetTx(ctx, tx, id)
        if err != nil {
            return err
        }
        if b.Status == model.BookingPending || b.Status == model.BookingConfirmed {
            if err := s.tables.UpdateStatusTx(ctx, tx, b.TableID, model.TableAvailable); err != nil {
                return err
            }
        }
        return s.bookings.DeleteTx(ctx, tx, id)
    })
    if err != nil {
        return err
    }
    s.invalidateTables(ctx)
    return nil
}

// UpdateDetails rewrites a booking's reservation time, party size and
// notes.  A blank reservedAt keeps the stored time; the column is NOT
// NULL so an empty value must never reach it.  The status and the
// referenced customer/table are untouched; the new party size must
// still fit the booked table.
func (s *BookingService) UpdateDetails(ctx context.Context, id uint64, reservedAt string, partySize int, notes string) error {
    return s.tx.RunTx(ctx, func(tx *sql.Tx) error {
        b, err := s.bookings.GetTx(ctx, tx, id)
        if err != nil {
            return err
        }
        if reservedAt != "" {
            b.ReservedAt = reservedAt
        }
        b.PartySize = partySize
        b.Notes = notes
        if ok, msg := b.Validate(); !ok {
            return &ValidationError{Msg: msg}
        }
        table, err := s.tables.GetTx(ctx, tx, b.TableID)
        if err != nil {
            return err
        }
        if b.PartySize > table.Capacity {
            return ErrCapacityExceeded
        }
        return s.bookings.UpdateTx(ctx, tx, b)
    })
}

// transition applies one guarded state change: the booking must
// currently be in one of the allowed source states, then its status and
// its table's status are written together.
func (s *BookingService) transition(ctx context.Context, id uint64, bookingStatus, tableStatus string, from ...string) error {
    return s.tx.RunTx(ctx, func(tx *sql.Tx) error {
        b, err := s.bookings.GetTx(ctx, tx, id)
        if err != nil {
            return err
        }
        allowed := false
        for _, f := range from {
            if b.Status == f {
                allowed = true
                break
            }
        }
        if !allowed {
            return ErrIllegalTransition
        }
        if err := s.bookings.UpdateStatusTx(ctx, tx, id, bookingStatus); err != nil {
            return err
        }
        return s.tables.UpdateStatusTx(ctx, tx, b.TableID, tableStatus)
    })
}

func (s *BookingService) invalidateTables(ctx context.Context) {
    if s.cache != nil {
        s.cache.Invalidate(ctx)
    }
}

func (s *BookingService) publishConfirmed(ctx context.Context, id uint64) {
    if s.publisher == nil {
        return
    }
    d, err := s.bookings.GetDetail(ctx, id)
    if err != nil {
        log.Printf("booking %d confirmed but event detail load failed: %v", id, err)
        return
    }
    ev := queue.BookingConfirmedEvent{
        BookingID:    d.ID,
        CustomerName: d.CustomerName,
        Phone:        d.Phone,
        TableNumber:  d.TableNumber,
        PartySize:    d.PartySize,
        ReservedAt:   d.ReservedAt,
        Notes:        d.Notes,
        ConfirmedAt:  time.Now().UTC().Format(time.RFC3339),
    }
    if err := s.publisher.PublishBookingConfirmed(ctx, ev); err != nil {
        log.Printf("booking %d confirmed but event publish failed: %v", id, err)
    }
}
