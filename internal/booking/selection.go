// Package booking holds the pure in-progress selection logic: which
// seats and meals the passenger has picked and what they would pay.
// Nothing here performs I/O; the session layer owns a Selection and the
// handlers mutate it, so the rules stay testable without a server.
package booking

import "github.com/sleeperbus/booking-web/internal/model"

// Selection is the passenger's unsaved choice of seats and meals.  Seats
// keep first-toggle order because that is the order shown to the user;
// meal IDs behave as an ordered set with the same add/remove-by-id
// semantics.  A Selection is date-scoped: it must be reset whenever the
// travel date changes, since seat identifiers are only meaningful for
// the date they were fetched for.
type Selection struct {
	seats   []model.Seat
	mealIDs []int
}

// Toggle adds the seat to the selection, or removes it when a seat with
// the same ID is already selected.  Seats the server has flagged as
// booked can never enter the selection; toggling one is a no-op and
// Toggle reports false.
func (s *Selection) Toggle(seat model.Seat) bool {
	for i := range s.seats {
		if s.seats[i].ID == seat.ID {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return true
		}
	}
	if seat.IsBooked {
		return false
	}
	s.seats = append(s.seats, seat)
	return true
}

// ToggleMeal adds the meal ID, or removes it when already selected.
func (s *Selection) ToggleMeal(id int) {
	for i, m := range s.mealIDs {
		if m == id {
			s.mealIDs = append(s.mealIDs[:i], s.mealIDs[i+1:]...)
			return
		}
	}
	s.mealIDs = append(s.mealIDs, id)
}

// Reset clears both sets.  Called on date change and after a successful
// booking submission.
func (s *Selection) Reset() {
	s.seats = nil
	s.mealIDs = nil
}

// Prune reconciles the selection against a freshly fetched seat catalog:
// seats that no longer exist, or that the server has meanwhile booked,
// are dropped.  Order of the survivors is preserved.  It returns how
// many seats were removed.
func (s *Selection) Prune(catalog []model.Seat) int {
	if len(s.seats) == 0 {
		return 0
	}
	current := make(map[int]model.Seat, len(catalog))
	for _, seat := range catalog {
		current[seat.ID] = seat
	}
	kept := s.seats[:0]
	for _, seat := range s.seats {
		if fresh, ok := current[seat.ID]; ok && !fresh.IsBooked {
			kept = append(kept, fresh)
		}
	}
	removed := len(s.seats) - len(kept)
	s.seats = kept
	return removed
}

// Empty reports whether nothing is selected at all.
func (s *Selection) Empty() bool {
	return len(s.seats) == 0 && len(s.mealIDs) == 0
}

// Seats returns the selected seats in first-toggle order.  The returned
// slice is a copy; mutating it does not affect the selection.
func (s *Selection) Seats() []model.Seat {
	out := make([]model.Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

// SeatIDs returns the selected seat identifiers in first-toggle order.
func (s *Selection) SeatIDs() []int {
	ids := make([]int, len(s.seats))
	for i, seat := range s.seats {
		ids[i] = seat.ID
	}
	return ids
}

// SeatNumbers returns the display numbers in first-toggle order, for the
// "L1, U4" style summary in the booking panel.
func (s *Selection) SeatNumbers() []string {
	nums := make([]string, len(s.seats))
	for i, seat := range s.seats {
		nums[i] = seat.Number
	}
	return nums
}

// MealIDs returns the selected meal identifiers in toggle order.
func (s *Selection) MealIDs() []int {
	ids := make([]int, len(s.mealIDs))
	copy(ids, s.mealIDs)
	return ids
}

// HasSeat reports whether a seat with the given ID is selected.
func (s *Selection) HasSeat(id int) bool {
	for i := range s.seats {
		if s.seats[i].ID == id {
			return true
		}
	}
	return false
}

// HasMeal reports whether the meal ID is selected.
func (s *Selection) HasMeal(id int) bool {
	for _, m := range s.mealIDs {
		if m == id {
			return true
		}
	}
	return false
}
