// Package repository defines error values that are reused across
// multiple repositories. These sentinel values allow higher layers
// such as handlers to distinguish between different failure
// scenarios: ErrForbidden indicates that the current user is not
// authorized to operate on a resource owned by someone else, while
// ErrConflict signals that a guarded write found the row in a state
// that no longer permits the operation (e.g. deciding a booking that
// has already been decided).
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on
// a resource they do not own. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update or delete cannot proceed
// because of the row's current state, such as approving a booking
// that is no longer pending. Handlers should translate this into an
// HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrVenueNotFound is returned when a venue lookup matches no row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrBookingNotFound is returned when a booking lookup matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrEmailExists is returned by user creation when the email is
// already registered.
var ErrEmailExists = errors.New("email already exists")
