// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records confirmed bookings.
package queue

// BookingConfirmedEvent is published when a booking is confirmed.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingConfirmedEvent struct {
    BookingID    uint64 `json:"booking_id"`
    CustomerName string `json:"customer_name"`
    Phone        string `json:"phone"`
    TableNumber  int    `json:"table_number"`
    PartySize    int    `json:"party_size"`
    ReservedAt   string `json:"reserved_at"`
    Notes        string `json:"notes,omitempty"`
    ConfirmedAt  string `json:"confirmed_at"`
}
