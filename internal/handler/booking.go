package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
    "github.com/iliyamo/restaurant-table-reservation/internal/service"
)

// BookingHandler exposes the booking lifecycle over HTTP.  All state
// changes go through the BookingService; the repository is used directly
// only for reads.
type BookingHandler struct {
    Svc      *service.BookingService
    Bookings *repository.BookingRepo
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *service.BookingService, bookings *repository.BookingRepo) *BookingHandler {
    if svc == nil || bookings == nil {
        panic("nil dependency passed to NewBookingHandler")
    }
    return &BookingHandler{Svc: svc, Bookings: bookings}
}

type bookingCreateReq struct {
    CustomerID uint64 `json:"customer_id"`
    TableID    uint64 `json:"table_id"`
    ReservedAt string `json:"reserved_at"`
    PartySize  int    `json:"party_size"`
    Notes      string `json:"notes"`
}

type bookingUpdateReq struct {
    ReservedAt string `json:"reserved_at"`
    PartySize  int    `json:"party_size"`
    Notes      string `json:"notes"`
}

// Create handles POST /v1/bookings.  The booking starts out pending and
// its table moves to reserved.
func (h *BookingHandler) Create(c echo.Context) error {
    var req bookingCreateReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    b := model.Booking{
        CustomerID: req.CustomerID,
        TableID:    req.TableID,
        ReservedAt: req.ReservedAt,
        PartySize:  req.PartySize,
        Notes:      req.Notes,
    }
    ctx := c.Request().Context()
    if err := h.Svc.Create(ctx, &b); err != nil {
        return bookingError(c, err, "failed to create booking")
    }
    d, err := h.Bookings.GetDetail(ctx, b.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
    }
    return c.JSON(http.StatusCreated, d)
}

// List handles GET /v1/bookings with optional ?status=, ?from= and ?to=
// filters.  Dates are calendar days, inclusive on both ends.
func (h *BookingHandler) List(c echo.Context) error {
    f, errMsg := bookingFilterFromQuery(c)
    if errMsg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": errMsg})
    }
    rows, err := h.Bookings.ListDetails(c.Request().Context(), f)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": rows})
}

// Get handles GET /v1/bookings/:id, returning the joined detail row.
func (h *BookingHandler) Get(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    d, err := h.Bookings.GetDetail(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch booking"})
    }
    return c.JSON(http.StatusOK, d)
}

// Update handles PUT /v1/bookings/:id.  Only the reservation time, party
// size and notes can change; status moves through the action endpoints.
func (h *BookingHandler) Update(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    var req bookingUpdateReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    ctx := c.Request().Context()
    if err := h.Svc.UpdateDetails(ctx, id, req.ReservedAt, req.PartySize, req.Notes); err != nil {
        return bookingError(c, err, "failed to update booking")
    }
    d, err := h.Bookings.GetDetail(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
    }
    return c.JSON(http.StatusOK, d)
}

// Confirm handles POST /v1/bookings/:id/confirm.
func (h *BookingHandler) Confirm(c echo.Context) error {
    return h.action(c, h.Svc.Confirm, "failed to confirm booking")
}

// Complete handles POST /v1/bookings/:id/complete.
func (h *BookingHandler) Complete(c echo.Context) error {
    return h.action(c, h.Svc.Complete, "failed to complete booking")
}

// Cancel handles POST /v1/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c echo.Context) error {
    return h.action(c, h.Svc.Cancel, "failed to cancel booking")
}

// Delete handles DELETE /v1/bookings/:id.
func (h *BookingHandler) Delete(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
        return bookingError(c, err, "failed to delete booking")
    }
    return c.NoContent(http.StatusNoContent)
}

// action runs one lifecycle transition and returns the refreshed detail
// row on success.
func (h *BookingHandler) action(c echo.Context, fn func(ctx context.Context, id uint64) error, failMsg string) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    ctx := c.Request().Context()
    if err := fn(ctx, id); err != nil {
        return bookingError(c, err, failMsg)
    }
    d, err := h.Bookings.GetDetail(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
    }
    return c.JSON(http.StatusOK, d)
}

// bookingFilterFromQuery builds the list filter from query params and
// returns a message for the first invalid one.
func bookingFilterFromQuery(c echo.Context) (repository.BookingFilter, string) {
    var f repository.BookingFilter
    if s := c.QueryParam("status"); s != "" {
        if !model.ValidBookingStatus(s) {
            return f, "status must be one of: pending, confirmed, completed, cancelled"
        }
        f.Status = s
    }
    if from := c.QueryParam("from"); from != "" {
        if !validDate(from) {
            return f, "from must be a date in YYYY-MM-DD format"
        }
        f.FromDate = from
    }
    if to := c.QueryParam("to"); to != "" {
        if !validDate(to) {
            return f, "to must be a date in YYYY-MM-DD format"
        }
        f.ToDate = to
    }
    return f, ""
}

func validDate(s string) bool {
    _, err := time.Parse("2006-01-02", s)
    return err == nil
}

// bookingError maps service and repository errors to HTTP responses.
// Validation failures are 400, missing entities 404, state conflicts
// 409 and everything else 500.
func bookingError(c echo.Context, err error, fallback string) error {
    var verr *service.ValidationError
    switch {
    case errors.As(err, &verr):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Msg})
    case errors.Is(err, repository.ErrBookingNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
    case errors.Is(err, repository.ErrCustomerNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
    case errors.Is(err, repository.ErrTableNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
    case errors.Is(err, service.ErrTableUnavailable):
        return c.JSON(http.StatusConflict, echo.Map{"error": "table is not available"})
    case errors.Is(err, service.ErrCapacityExceeded):
        return c.JSON(http.StatusConflict, echo.Map{"error": "party size exceeds table capacity"})
    case errors.Is(err, service.ErrIllegalTransition):
        return c.JSON(http.StatusConflict, echo.Map{"error": "illegal status transition"})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
    }
}
