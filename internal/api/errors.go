// Package api is the data access layer of this service.  Where a typical
// deployment would talk to a database, this front end talks to the
// external booking API over HTTP; handlers depend on this package the way
// they would depend on a repository.  The sentinel values below let
// higher layers distinguish failure scenarios without string matching:
// a lookup miss is a different user experience from a transport failure
// even though both end up as a toast.
package api

import (
	"errors"
	"fmt"
)

// ErrBookingNotFound is returned by FindBooking when no booking in the
// server's list matches the requested identifier.  Handlers surface it
// as a not-found notice rather than a generic fetch failure.
var ErrBookingNotFound = errors.New("booking not found")

// Error carries a structured failure reported by the booking API.  The
// server returns validation failures as an HTTP error status with a JSON
// body {"detail": "..."}; Detail holds that message verbatim so the user
// sees exactly what the server said (e.g. "Seat L3 is already booked").
type Error struct {
	StatusCode int    // HTTP status returned by the API
	Detail     string // server-supplied message, may be empty
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("booking api: unexpected status %d", e.StatusCode)
}
