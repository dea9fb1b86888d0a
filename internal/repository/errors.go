// Package repository implements the persistence gateway over MySQL.  Each
// repository wraps one table and exposes plain CRUD plus Tx variants for
// the writes that participate in booking state transitions.  Sentinel
// errors declared here let the service and handler layers distinguish
// failure scenarios with errors.Is instead of string matching.
package repository

import "errors"

// ErrCustomerNotFound is returned when a customer id does not exist.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrTableNotFound is returned when a table id does not exist.
var ErrTableNotFound = errors.New("table not found")

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrTableNumberExists is returned when creating or renumbering a table
// would collide with another table's unique number.
var ErrTableNumberExists = errors.New("table number already exists")
