package model

// Seat type values as returned by the booking API.  A sleeper coach has
// two decks and every seat belongs to exactly one of them.
const (
	SeatTypeLower = "lower" // lower deck berth
	SeatTypeUpper = "upper" // upper deck berth
)

// Seat describes one bookable berth for a specific travel date.  The
// booking API owns the authoritative availability flag; a seat list is
// immutable on the client once fetched for a given date and must be
// re-fetched when the date changes because identifiers are date-scoped.
//
// Fields:
//  ID       – numeric identifier, unique within one travel date.
//  Number   – display label shown to the passenger (e.g. "L1", "U4").
//  Type     – deck the seat belongs to ("lower" or "upper").
//  Price    – fare for this berth in rupees.
//  IsBooked – true when the server has already sold the seat.
type Seat struct {
	ID       int     `json:"id"`        // seat identifier within the date
	Number   string  `json:"number"`    // display number
	Type     string  `json:"type"`      // deck: lower | upper
	Price    float64 `json:"price"`     // berth fare
	IsBooked bool    `json:"is_booked"` // sold flag owned by the server
}
