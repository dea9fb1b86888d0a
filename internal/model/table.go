package model

import (
    "fmt"
    "time"
)

// Table status values.  A table's status mirrors the most recent active
// booking against it: reserved while a booking is pending, occupied while
// confirmed, available otherwise.  Only the booking service transitions
// these values; a direct table update is an explicit operator override.
const (
    TableAvailable = "available"
    TableOccupied  = "occupied"
    TableReserved  = "reserved"
)

// Table describes a physical table in the restaurant.  Tables are
// uniquely identified by their table number.
//
// Fields:
//  ID        – primary key identifier.
//  Number    – table number printed on the floor plan (1-999, unique).
//  Capacity  – maximum number of guests (1-20).
//  Status    – availability status (available, occupied, reserved).
//  CreatedAt – creation timestamp.
type Table struct {
    ID        uint64    // tables.id
    Number    int       // tables.table_number
    Capacity  int       // tables.capacity
    Status    string    // tables.status
    CreatedAt time.Time // tables.created_at
}

// ValidTableStatus reports whether s is one of the recognized table
// status values.
func ValidTableStatus(s string) bool {
    return s == TableAvailable || s == TableOccupied || s == TableReserved
}

// Validate checks the table's fields and returns (false, message) for the
// first rule that fails, or (true, "") when all rules pass.
func (t *Table) Validate() (bool, string) {
    if t.Number <= 0 {
        return false, "table number must be greater than 0"
    }
    if t.Number > 999 {
        return false, "table number must not exceed 999"
    }
    if t.Capacity <= 0 {
        return false, "capacity must be greater than 0"
    }
    if t.Capacity > 20 {
        return false, "capacity must not exceed 20 guests"
    }
    if !ValidTableStatus(t.Status) {
        return false, "status must be one of: available, occupied, reserved"
    }
    return true, ""
}

// IsAvailable reports whether the table can accept a new booking.
func (t *Table) IsAvailable() bool {
    return t.Status == TableAvailable
}

// String renders the table for plain-text output such as log lines.
func (t *Table) String() string {
    return fmt.Sprintf("Table #%d | seats %d | %s", t.Number, t.Capacity, t.Status)
}
