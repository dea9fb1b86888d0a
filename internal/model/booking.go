package model

import (
    "fmt"
    "time"
    "unicode/utf8"
)

// Booking status values.  The lifecycle is pending -> confirmed ->
// completed, with cancellation possible from pending or confirmed.
// Completed and cancelled are terminal.
const (
    BookingPending   = "pending"
    BookingConfirmed = "confirmed"
    BookingCompleted = "completed"
    BookingCancelled = "cancelled"
)

// TimeLayout is the wire format for reservation timestamps, matching the
// DATETIME column representation.
const TimeLayout = "2006-01-02 15:04:05"

// Booking records a customer's reservation of a single table at a given
// time.  The party size must fit the referenced table's capacity at
// creation time.
//
// Fields:
//  ID         – primary key identifier.
//  CustomerID – customer who made the booking.
//  TableID    – table being reserved.
//  ReservedAt – reservation timestamp in TimeLayout format.
//  PartySize  – number of guests (1-20).
//  Status     – state of the booking (pending, confirmed, completed, cancelled).
//  Notes      – optional free-text note, at most 500 characters.
//  CreatedAt  – creation timestamp.
type Booking struct {
    ID         uint64    // bookings.id
    CustomerID uint64    // bookings.customer_id
    TableID    uint64    // bookings.table_id
    ReservedAt string    // bookings.reserved_at
    PartySize  int       // bookings.party_size
    Status     string    // bookings.status
    Notes      string    // bookings.notes (may be empty)
    CreatedAt  time.Time // bookings.created_at
}

// ValidBookingStatus reports whether s is one of the recognized booking
// status values.
func ValidBookingStatus(s string) bool {
    switch s {
    case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
        return true
    }
    return false
}

// Validate checks the booking's fields and returns (false, message) for
// the first rule that fails, or (true, "") when all rules pass.  Whether
// the referenced table can actually take the party is the booking
// service's concern, not the validator's.
func (b *Booking) Validate() (bool, string) {
    if b.CustomerID == 0 {
        return false, "customer id is required"
    }
    if b.TableID == 0 {
        return false, "table id is required"
    }
    if b.PartySize <= 0 {
        return false, "party size must be greater than 0"
    }
    if b.PartySize > 20 {
        return false, "party size must not exceed 20"
    }
    if b.ReservedAt != "" {
        if _, err := time.Parse(TimeLayout, b.ReservedAt); err != nil {
            return false, "invalid reservation time (use: YYYY-MM-DD HH:MM:SS)"
        }
    }
    if !ValidBookingStatus(b.Status) {
        return false, "status must be one of: pending, confirmed, completed, cancelled"
    }
    if utf8.RuneCountInString(b.Notes) > 500 {
        return false, "notes must not exceed 500 characters"
    }
    return true, ""
}

// String renders the booking for plain-text output such as log lines.
func (b *Booking) String() string {
    return fmt.Sprintf("Booking #%d | customer %d | table %d | %s | %d guests | %s",
        b.ID, b.CustomerID, b.TableID, b.ReservedAt, b.PartySize, b.Status)
}
