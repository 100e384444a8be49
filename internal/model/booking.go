package model

// Booking status values as reported by the booking API.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Passenger carries the traveller details submitted with a booking.  The
// validate tags mirror the server's own constraints so obviously bad
// input is rejected before a round trip is spent on it.
type Passenger struct {
	Name   string `json:"name" validate:"required"`                   // traveller name
	Age    int    `json:"age" validate:"gt=0,lte=100"`                // whole years, 1..100
	Gender string `json:"gender" validate:"oneof=male female other"`   // as accepted by the API
}

// BookingRequest is the payload for POST /book.  Seat identifiers are
// scoped to the travel date; meal identifiers reference the catalog.
type BookingRequest struct {
	SeatIDs   []int     `json:"seat_ids"` // selected seats, first-toggle order
	Date      string    `json:"date"`     // travel date, YYYY-MM-DD
	Passenger Passenger `json:"passenger"`
	MealIDs   []int     `json:"meal_ids"` // selected meals, may be empty
}

// Booking is a server-confirmed reservation record.  This service never
// constructs one on its own; it only displays bookings returned by the
// API and asks the API to cancel them.
//
// Fields:
//  BookingID   – short opaque identifier assigned by the server.
//  SeatIDs     – seats covered by the reservation.
//  Date        – travel date the seats were booked for.
//  Passenger   – traveller details as submitted.
//  Meals       – resolved meal records included in the booking.
//  TotalAmount – total charged, seats plus meals.
//  Status      – pending | confirmed | cancelled.
type Booking struct {
	BookingID   string    `json:"booking_id"`
	SeatIDs     []int     `json:"seat_ids"`
	Date        string    `json:"date"`
	Passenger   Passenger `json:"passenger"`
	Meals       []Meal    `json:"meals"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
}
