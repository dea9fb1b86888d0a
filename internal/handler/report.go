package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/report"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// ReportHandler serves the booking report: the filtered detail rows plus
// aggregated statistics over them.
type ReportHandler struct {
    Repo *repository.BookingRepo
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(bookings *repository.BookingRepo) *ReportHandler {
    if bookings == nil {
        panic("nil repository passed to NewReportHandler")
    }
    return &ReportHandler{Repo: bookings}
}

type reportResp struct {
    Rows  []repository.BookingDetail `json:"rows"`
    Stats *report.Stats              `json:"stats"`
}

// Bookings handles GET /v1/reports/bookings with the same ?status=,
// ?from= and ?to= filters as the booking listing.  Stats is null when no
// rows match.
func (h *ReportHandler) Bookings(c echo.Context) error {
    f, errMsg := bookingFilterFromQuery(c)
    if errMsg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": errMsg})
    }
    rows, err := h.Repo.ListDetails(c.Request().Context(), f)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
    }
    return c.JSON(http.StatusOK, reportResp{Rows: rows, Stats: report.Aggregate(rows)})
}
