// Package session owns all per-visitor mutable state.  Every visitor
// gets one State object owned by the Manager and passed explicitly to
// render and handler code, never reached through package variables.
package session

import (
	"sync"
	"time"

	"github.com/sleeperbus/booking-web/internal/booking"
	"github.com/sleeperbus/booking-web/internal/model"
)

// Notice kinds for the transient toast shown on the next render.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a one-shot user-facing message.  It is popped by the first
// render that sees it, which is the server-side analog of the browser
// toast that dismisses itself after a few seconds.
type Notice struct {
	Kind    string // NoticeSuccess or NoticeError
	Message string
}

// State is everything one visitor's booking UI needs between requests:
// the active travel date, the cached catalogs, the in-progress
// selection, the booking looked up in the manage flow, and the pending
// success view after a submission.  Handlers for the same session may
// run concurrently (a double-clicked form posts twice), so every access
// goes through the mutex.
type State struct {
	mu sync.Mutex

	date      string
	seats     []model.Seat
	meals     []model.Meal
	selection booking.Selection

	// seatGen guards against overlapping seat fetches: responses carry
	// the generation current when the fetch started and stale ones are
	// discarded, so a rapid date change can never apply out of order.
	seatGen uint64

	current *model.Booking // manage-flow lookup result, nil when hidden
	success *SuccessResult // pending success view, shown once
	notice  *Notice        // pending toast, shown once

	lastSeen time.Time
}

// SuccessResult pairs a created booking with its prediction for the
// one-time success view.
type SuccessResult struct {
	Booking    model.Booking
	Prediction *model.Prediction // nil when the prediction fetch failed
}

// NewState builds a State for the given initial travel date.
func NewState(date string) *State {
	return &State{date: date, lastSeen: time.Now()}
}

// Date returns the active travel date (YYYY-MM-DD).
func (s *State) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// SetDate switches the travel date and resets the selection.  Seat
// identifiers are date-scoped, so clearing before the new catalog is
// even requested is an invariant, not a courtesy.  It returns the fetch
// generation to use for the follow-up seat load.
func (s *State) SetDate(date string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if date != s.date {
		s.date = date
		s.selection.Reset()
	}
	s.seatGen++
	return s.seatGen
}

// BeginSeatFetch reserves a generation for a seat refresh on the current
// date (post-booking or post-cancel refreshes).
func (s *State) BeginSeatFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seatGen++
	return s.seatGen
}

// ApplySeats installs a fetched seat catalog if gen is still current and
// reports whether it was applied.  The surviving selection is pruned
// against the new catalog: seats that vanished or got booked elsewhere
// drop out explicitly instead of lingering as dangling references.
func (s *State) ApplySeats(gen uint64, seats []model.Seat) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.seatGen {
		return false
	}
	s.seats = seats
	s.selection.Prune(seats)
	return true
}

// Seats returns the current seat catalog.
func (s *State) Seats() []model.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats
}

// SetMeals installs the meal catalog.
func (s *State) SetMeals(meals []model.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meals = meals
}

// Meals returns the meal catalog.
func (s *State) Meals() []model.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meals
}

// ToggleSeat toggles the catalog seat with the given ID and reports
// whether anything changed.  Unknown IDs and booked seats are no-ops;
// the view never offers a toggle on a booked seat, but the reducer
// enforces the rule regardless of what a handcrafted request claims.
func (s *State) ToggleSeat(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seat := range s.seats {
		if seat.ID == id {
			return s.selection.Toggle(seat)
		}
	}
	return false
}

// ToggleMeal toggles a meal ID in the selection.
func (s *State) ToggleMeal(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.ToggleMeal(id)
}

// Selection returns a snapshot copy of the current selection.
func (s *State) Selection() booking.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	var snap booking.Selection
	for _, seat := range s.selection.Seats() {
		snap.Toggle(seat)
	}
	for _, id := range s.selection.MealIDs() {
		snap.ToggleMeal(id)
	}
	return snap
}

// ResetSelection clears the selection, e.g. after a successful booking.
func (s *State) ResetSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Reset()
}

// SetCurrentBooking stores the manage-flow lookup result; nil hides the
// detail view.
func (s *State) SetCurrentBooking(b *model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = b
}

// CurrentBooking returns the manage-flow lookup result, or nil.
func (s *State) CurrentBooking() *model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetSuccess stores the success view shown by the next page render.
func (s *State) SetSuccess(res *SuccessResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.success = res
}

// PopSuccess returns and clears the pending success view.
func (s *State) PopSuccess() *SuccessResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.success
	s.success = nil
	return res
}

// Notify queues a transient toast for the next render.
func (s *State) Notify(kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = &Notice{Kind: kind, Message: message}
}

// PopNotice returns and clears the pending toast.
func (s *State) PopNotice() *Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notice
	s.notice = nil
	return n
}

// touch refreshes the idle timer; idle reports how long the session has
// been unused.
func (s *State) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *State) idle(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
