package model

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestBookingValidate(t *testing.T) {
    valid := Booking{
        CustomerID: 1,
        TableID:    2,
        ReservedAt: "2026-09-01 19:30:00",
        PartySize:  4,
        Status:     BookingPending,
    }

    tests := []struct {
        name    string
        mutate  func(b *Booking)
        wantOK  bool
        wantMsg string
    }{
        {
            name:   "valid",
            mutate: func(b *Booking) {},
            wantOK: true,
        },
        {
            name:    "missing customer",
            mutate:  func(b *Booking) { b.CustomerID = 0 },
            wantOK:  false,
            wantMsg: "customer id is required",
        },
        {
            name:    "missing table",
            mutate:  func(b *Booking) { b.TableID = 0 },
            wantOK:  false,
            wantMsg: "table id is required",
        },
        {
            name:    "zero party",
            mutate:  func(b *Booking) { b.PartySize = 0 },
            wantOK:  false,
            wantMsg: "party size must be greater than 0",
        },
        {
            name:    "party above range",
            mutate:  func(b *Booking) { b.PartySize = 21 },
            wantOK:  false,
            wantMsg: "party size must not exceed 20",
        },
        {
            name:    "malformed reservation time",
            mutate:  func(b *Booking) { b.ReservedAt = "next friday" },
            wantOK:  false,
            wantMsg: "invalid reservation time (use: YYYY-MM-DD HH:MM:SS)",
        },
        {
            name:    "date without time",
            mutate:  func(b *Booking) { b.ReservedAt = "2026-09-01" },
            wantOK:  false,
            wantMsg: "invalid reservation time (use: YYYY-MM-DD HH:MM:SS)",
        },
        {
            name:    "unknown status",
            mutate:  func(b *Booking) { b.Status = "waiting" },
            wantOK:  false,
            wantMsg: "status must be one of: pending, confirmed, completed, cancelled",
        },
        {
            name:    "notes too long",
            mutate:  func(b *Booking) { b.Notes = strings.Repeat("x", 501) },
            wantOK:  false,
            wantMsg: "notes must not exceed 500 characters",
        },
        {
            name:   "notes at limit",
            mutate: func(b *Booking) { b.Notes = strings.Repeat("x", 500) },
            wantOK: true,
        },
        {
            name:   "empty reservation time passes the validator",
            mutate: func(b *Booking) { b.ReservedAt = "" },
            wantOK: true,
        },
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            b := valid
            tt.mutate(&b)
            ok, msg := b.Validate()
            assert.Equal(t, tt.wantOK, ok)
            assert.Equal(t, tt.wantMsg, msg)
        })
    }
}

func TestValidBookingStatus(t *testing.T) {
    for _, s := range []string{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled} {
        assert.True(t, ValidBookingStatus(s), s)
    }
    assert.False(t, ValidBookingStatus("available"))
    assert.False(t, ValidBookingStatus(""))
}

func TestBookingString(t *testing.T) {
    b := Booking{ID: 3, CustomerID: 1, TableID: 2, ReservedAt: "2026-09-01 19:30:00", PartySize: 4, Status: BookingPending}
    assert.Equal(t, "Booking #3 | customer 1 | table 2 | 2026-09-01 19:30:00 | 4 guests | pending", b.String())
}
