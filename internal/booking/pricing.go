package booking

import "github.com/sleeperbus/booking-web/internal/model"

// PriceQuote is the live total recomputed after every selection change.
// Amounts are in rupees, matching the catalog prices.
type PriceQuote struct {
	SeatTotal  float64 // sum of selected berth fares
	MealTotal  float64 // sum of selected meal prices present in the catalog
	GrandTotal float64 // SeatTotal + MealTotal
}

// Quote prices the current selection against the meal catalog.  A
// selected meal ID that is no longer in the catalog contributes zero;
// the catalog may have been refreshed since the meal was picked and a
// vanished entry must not sink the whole quote.  Callers should not
// render pricing at all while no seat is selected.
func Quote(sel *Selection, meals []model.Meal) PriceQuote {
	var q PriceQuote
	for _, seat := range sel.Seats() {
		q.SeatTotal += seat.Price
	}
	byID := make(map[int]float64, len(meals))
	for _, m := range meals {
		byID[m.ID] = m.Price
	}
	for _, id := range sel.MealIDs() {
		q.MealTotal += byID[id] // missing ID prices at 0
	}
	q.GrandTotal = q.SeatTotal + q.MealTotal
	return q
}
