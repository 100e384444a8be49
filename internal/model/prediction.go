package model

// Prediction is the server-computed confirmation estimate for a booking.
// It is fetched once right after a booking is created and displayed
// verbatim; nothing in this service derives or recomputes it.
//
// Fields:
//  BookingID – booking the estimate belongs to.
//  Percent   – confirmation probability, 0..100.
//  RiskLevel – human readable band ("Low Risk", "Medium Risk", "High Risk").
type Prediction struct {
	BookingID string  `json:"booking_id"`
	Percent   float64 `json:"confirmation_probability_percent"`
	RiskLevel string  `json:"risk_level"`
}
