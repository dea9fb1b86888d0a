package service

import (
    "context"
    "database/sql"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
    "github.com/iliyamo/restaurant-table-reservation/internal/queue"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// fakeTxRunner calls fn directly with a nil transaction.  The in-memory
// stores below ignore the tx argument, so the service's transactional
// choreography can be exercised without a database.
type fakeTxRunner struct{}

func (fakeTxRunner) RunTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
    return fn(nil)
}

type fakeCustomerStore struct {
    customers map[uint64]*model.Customer
}

func (s *fakeCustomerStore) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Customer, error) {
    c, ok := s.customers[id]
    if !ok {
        return nil, repository.ErrCustomerNotFound
    }
    return c, nil
}

type fakeTableStore struct {
    tables map[uint64]*model.Table
}

func (s *fakeTableStore) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Table, error) {
    t, ok := s.tables[id]
    if !ok {
        return nil, repository.ErrTableNotFound
    }
    cp := *t
    return &cp, nil
}

func (s *fakeTableStore) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
    t, ok := s.tables[id]
    if !ok {
        return repository.ErrTableNotFound
    }
    t.Status = status
    return nil
}

type fakeBookingStore struct {
    bookings map[uint64]*model.Booking
    nextID   uint64
}

func (s *fakeBookingStore) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
    s.nextID++
    b.ID = s.nextID
    cp := *b
    s.bookings[b.ID] = &cp
    return nil
}

func (s *fakeBookingStore) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Booking, error) {
    b, ok := s.bookings[id]
    if !ok {
        return nil, repository.ErrBookingNotFound
    }
    cp := *b
    return &cp, nil
}

func (s *fakeBookingStore) UpdateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
    cur, ok := s.bookings[b.ID]
    if !ok {
        return repository.ErrBookingNotFound
    }
    cur.ReservedAt = b.ReservedAt
    cur.PartySize = b.PartySize
    cur.Notes = b.Notes
    return nil
}

func (s *fakeBookingStore) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
    b, ok := s.bookings[id]
    if !ok {
        return repository.ErrBookingNotFound
    }
    b.Status = status
    return nil
}

func (s *fakeBookingStore) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
    if _, ok := s.bookings[id]; !ok {
        return repository.ErrBookingNotFound
    }
    delete(s.bookings, id)
    return nil
}

func (s *fakeBookingStore) GetDetail(ctx context.Context, id uint64) (*repository.BookingDetail, error) {
    b, ok := s.bookings[id]
    if !ok {
        return nil, repository.ErrBookingNotFound
    }
    return &repository.BookingDetail{
        ID:         b.ID,
        CustomerID: b.CustomerID,
        TableID:    b.TableID,
        ReservedAt: b.ReservedAt,
        PartySize:  b.PartySize,
        Status:     b.Status,
        Notes:      b.Notes,
    }, nil
}

type fakePublisher struct {
    events []queue.BookingConfirmedEvent
    err    error
}

func (p *fakePublisher) PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error {
    if p.err != nil {
        return p.err
    }
    p.events = append(p.events, event)
    return nil
}

type fakeInvalidator struct {
    calls int
}

func (i *fakeInvalidator) Invalidate(ctx context.Context) { i.calls++ }

type fixture struct {
    svc       *BookingService
    customers *fakeCustomerStore
    tables    *fakeTableStore
    bookings  *fakeBookingStore
    publisher *fakePublisher
    cache     *fakeInvalidator
}

func newFixture() *fixture {
    f := &fixture{
        customers: &fakeCustomerStore{customers: map[uint64]*model.Customer{
            1: {ID: 1, Name: "Budi", Phone: "081234567890"},
        }},
        tables: &fakeTableStore{tables: map[uint64]*model.Table{
            1: {ID: 1, Number: 5, Capacity: 4, Status: model.TableAvailable},
        }},
        bookings:  &fakeBookingStore{bookings: map[uint64]*model.Booking{}},
        publisher: &fakePublisher{},
        cache:     &fakeInvalidator{},
    }
    f.svc = NewBookingService(fakeTxRunner{}, f.customers, f.tables, f.bookings, f.publisher, f.cache)
    return f
}

func (f *fixture) createPending(t *testing.T) *model.Booking {
    t.Helper()
    b := &model.Booking{CustomerID: 1, TableID: 1, ReservedAt: "2026-09-01 19:00:00", PartySize: 2}
    require.NoError(t, f.svc.Create(context.Background(), b))
    return b
}

func TestCreateReservesTable(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)

    assert.Equal(t, uint64(1), b.ID)
    assert.Equal(t, model.BookingPending, b.Status)
    assert.Equal(t, model.TableReserved, f.tables.tables[1].Status)
    assert.Equal(t, 1, f.cache.calls)
}

func TestCreateRejectsUnavailableTable(t *testing.T) {
    f := newFixture()
    f.tables.tables[1].Status = model.TableOccupied

    b := &model.Booking{CustomerID: 1, TableID: 1, ReservedAt: "2026-09-01 19:00:00", PartySize: 2}
    err := f.svc.Create(context.Background(), b)

    assert.ErrorIs(t, err, ErrTableUnavailable)
    assert.Empty(t, f.bookings.bookings)
}

func TestCreateRejectsOversizeParty(t *testing.T) {
    f := newFixture()

    b := &model.Booking{CustomerID: 1, TableID: 1, ReservedAt: "2026-09-01 19:00:00", PartySize: 5}
    err := f.svc.Create(context.Background(), b)

    assert.ErrorIs(t, err, ErrCapacityExceeded)
    assert.Empty(t, f.bookings.bookings)
    assert.Equal(t, model.TableAvailable, f.tables.tables[1].Status)
}

func TestCreateRejectsUnknownCustomer(t *testing.T) {
    f := newFixture()

    b := &model.Booking{CustomerID: 99, TableID: 1, ReservedAt: "2026-09-01 19:00:00", PartySize: 2}
    err := f.svc.Create(context.Background(), b)

    assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
}

func TestCreateReturnsValidationError(t *testing.T) {
    f := newFixture()

    b := &model.Booking{CustomerID: 1, TableID: 1, ReservedAt: "whenever", PartySize: 2}
    err := f.svc.Create(context.Background(), b)

    var verr *ValidationError
    require.True(t, errors.As(err, &verr))
    assert.Equal(t, "invalid reservation time (use: YYYY-MM-DD HH:MM:SS)", verr.Msg)
}

func TestConfirmOccupiesTableAndPublishes(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)

    require.NoError(t, f.svc.Confirm(context.Background(), b.ID))

    assert.Equal(t, model.BookingConfirmed, f.bookings.bookings[b.ID].Status)
    assert.Equal(t, model.TableOccupied, f.tables.tables[1].Status)
    require.Len(t, f.publisher.events, 1)
    assert.Equal(t, b.ID, f.publisher.events[0].BookingID)
    assert.Equal(t, 2, f.publisher.events[0].PartySize)
}

func TestConfirmSurvivesPublishFailure(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)
    f.publisher.err = errors.New("broker down")

    require.NoError(t, f.svc.Confirm(context.Background(), b.ID))
    assert.Equal(t, model.BookingConfirmed, f.bookings.bookings[b.ID].Status)
}

func TestCompleteFreesTable(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)
    require.NoError(t, f.svc.Confirm(context.Background(), b.ID))

    require.NoError(t, f.svc.Complete(context.Background(), b.ID))

    assert.Equal(t, model.BookingCompleted, f.bookings.bookings[b.ID].Status)
    assert.Equal(t, model.TableAvailable, f.tables.tables[1].Status)
}

func TestCompleteRequiresConfirmed(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)

    err := f.svc.Complete(context.Background(), b.ID)

    assert.ErrorIs(t, err, ErrIllegalTransition)
    assert.Equal(t, model.BookingPending, f.bookings.bookings[b.ID].Status)
    assert.Equal(t, model.TableReserved, f.tables.tables[1].Status)
}

func TestCancelFromPendingFreesTable(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)

    require.NoError(t, f.svc.Cancel(context.Background(), b.ID))

    assert.Equal(t, model.BookingCancelled, f.bookings.bookings[b.ID].Status)
    assert.Equal(t, model.TableAvailable, f.tables.tables[1].Status)
}

func TestCancelFromConfirmedFreesTable(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)
    require.NoError(t, f.svc.Confirm(context.Background(), b.ID))

    require.NoError(t, f.svc.Cancel(context.Background(), b.ID))

    assert.Equal(t, model.BookingCancelled, f.bookings.bookings[b.ID].Status)
    assert.Equal(t, model.TableAvailable, f.tables.tables[1].Status)
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)
    require.NoError(t, f.svc.Cancel(context.Background(), b.ID))

    assert.ErrorIs(t, f.svc.Confirm(context.Background(), b.ID), ErrIllegalTransition)
    assert.ErrorIs(t, f.svc.Complete(context.Background(), b.ID), ErrIllegalTransition)
    assert.ErrorIs(t, f.svc.Cancel(context.Background(), b.ID), ErrIllegalTransition)
    assert.Equal(t, model.BookingCancelled, f.bookings.bookings[b.ID].Status)
}

func TestDeleteActiveBookingFreesTable(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)

    require.NoError(t, f.svc.Delete(context.Background(), b.ID))

    assert.Empty(t, f.bookings.bookings)
    assert.Equal(t, model.TableAvailable, f.tables.tables[1].Status)
}

func TestDeleteTerminalBookingLeavesTableAlone(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)
    require.NoError(t, f.svc.Cancel(context.Background(), b.ID))

    // Another booking has since reserved the table.
    f.tables.tables[1].Status = model.TableReserved

    require.NoError(t, f.svc.Delete(context.Background(), b.ID))
    assert.Equal(t, model.TableReserved, f.tables.tables[1].Status)
}

func TestUpdateDetailsRewritesFields(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)

    require.NoError(t, f.svc.UpdateDetails(context.Background(), b.ID, "2026-09-02 20:00:00", 4, "window seat"))

    got := f.bookings.bookings[b.ID]
    assert.Equal(t, "2026-09-02 20:00:00", got.ReservedAt)
    assert.Equal(t, 4, got.PartySize)
    assert.Equal(t, "window seat", got.Notes)
    assert.Equal(t, model.BookingPending, got.Status)
}

func TestUpdateDetailsRejectsOversizeParty(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)

    err := f.svc.UpdateDetails(context.Background(), b.ID, "2026-09-02 20:00:00", 5, "")

    assert.ErrorIs(t, err, ErrCapacityExceeded)
    assert.Equal(t, 2, f.bookings.bookings[b.ID].PartySize)
}

func TestUpdateDetailsKeepsStoredTimeWhenBlank(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)

    require.NoError(t, f.svc.UpdateDetails(context.Background(), b.ID, "", 3, "birthday"))

    got := f.bookings.bookings[b.ID]
    assert.Equal(t, "2026-09-01 19:00:00", got.ReservedAt)
    assert.Equal(t, 3, got.PartySize)
    assert.Equal(t, "birthday", got.Notes)
}

func TestUpdateDetailsValidates(t *testing.T) {
    f := newFixture()
    b := f.createPending(t)

    err := f.svc.UpdateDetails(context.Background(), b.ID, "2026-09-02 20:00:00", 0, "")

    var verr *ValidationError
    require.True(t, errors.As(err, &verr))
    assert.Equal(t, "party size must be greater than 0", verr.Msg)
}

func TestMissingBookingSurfacesNotFound(t *testing.T) {
    f := newFixture()
    assert.ErrorIs(t, f.svc.Confirm(context.Background(), 42), repository.ErrBookingNotFound)
    assert.ErrorIs(t, f.svc.Delete(context.Background(), 42), repository.ErrBookingNotFound)
}
