package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sleeperbus/booking-web/internal/api"
	"github.com/sleeperbus/booking-web/internal/model"
	"github.com/sleeperbus/booking-web/internal/session"
	"github.com/sleeperbus/booking-web/internal/view"
)

// BookingHandler serves the passenger-facing booking flow: the seat map
// page, the selection toggles, the date switch and the submission.
// Every mutation follows redirect-after-post so a refresh never replays
// a booking, and every page render rebuilds the affected regions from
// session state rather than updating them incrementally.
type BookingHandler struct {
	API      BookingAPI
	Sessions *session.Manager
	validate *validator.Validate
}

// NewBookingHandler constructs a BookingHandler.  Both dependencies must
// be non-nil.
func NewBookingHandler(apiClient BookingAPI, sessions *session.Manager) *BookingHandler {
	if apiClient == nil || sessions == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{
		API:      apiClient,
		Sessions: sessions,
		validate: validator.New(),
	}
}

// Page handles GET /.  On a session's first visit it loads the meal
// catalog and the seat list for the default date.  A failed meal load is
// logged and otherwise ignored: booking works without meals when none
// are selected.  A failed seat load surfaces a transient notice and
// renders an empty map that the visitor can retry by reloading.
func (h *BookingHandler) Page(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	ctx := c.Request().Context()
	if st.Meals() == nil {
		if meals, err := h.API.ListMeals(ctx); err != nil {
			c.Logger().Errorf("meal catalog load failed: %v", err)
		} else {
			st.SetMeals(meals)
		}
	}
	if st.Seats() == nil {
		gen := st.BeginSeatFetch()
		if seats, err := h.API.ListSeats(ctx, st.Date()); err != nil {
			st.Notify(session.NoticeError, "Failed to load seats")
		} else {
			st.ApplySeats(gen, seats)
		}
	}
	sel := st.Selection()
	var success *view.SuccessView
	if res := st.PopSuccess(); res != nil {
		v := view.RenderSuccess(res.Booking, res.Prediction)
		success = &v
	}
	return c.Render(http.StatusOK, "booking", view.BookingPage{
		Theme:   theme(c),
		Date:    st.Date(),
		SeatMap: view.RenderSeatMap(st.Seats(), &sel),
		Meals:   view.RenderMeals(st.Meals(), &sel),
		Panel:   view.RenderBookingPanel(&sel, st.Meals()),
		Success: success,
		Toast:   toastFrom(st.PopNotice()),
	})
}

// ChangeDate handles POST /date.  Switching the date resets the
// selection before anything else happens, then fetches the new date's
// seat list under a fresh generation token.  When the fetch fails the
// previous catalog stays in place and the visitor gets a notice; a
// stale response from an older fetch can never overwrite a newer one.
func (h *BookingHandler) ChangeDate(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	date := c.FormValue("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		st.Notify(session.NoticeError, "Invalid travel date")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	gen := st.SetDate(date)
	if seats, err := h.API.ListSeats(c.Request().Context(), date); err != nil {
		st.Notify(session.NoticeError, "Failed to load seats")
	} else {
		st.ApplySeats(gen, seats)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// ToggleSeat handles POST /seats/toggle.  Unknown identifiers and seats
// the server has already booked are ignored: the page never offers a
// control for them, so such a request is stale or handcrafted.
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	id, err := strconv.Atoi(c.FormValue("seat_id"))
	if err == nil {
		st.ToggleSeat(id)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// ToggleMeal handles POST /meals/toggle.
func (h *BookingHandler) ToggleMeal(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	id, err := strconv.Atoi(c.FormValue("meal_id"))
	if err == nil {
		st.ToggleMeal(id)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// Submit handles POST /book.  With no seat selected it is a no-op: no
// request goes upstream.  On a server-reported failure the visitor sees
// the server's detail message verbatim and the selection is left
// untouched for another attempt.  On success the selection is cleared,
// the prediction is fetched for the one-time success view, and the seat
// list for the current date is refreshed so the just-booked seats render
// as unavailable.  Every path lands back on GET /, which always renders
// the submit control in its idle, enabled state.
func (h *BookingHandler) Submit(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	sel := st.Selection()
	if len(sel.Seats()) == 0 {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	age, _ := strconv.Atoi(c.FormValue("age"))
	passenger := model.Passenger{
		Name:   c.FormValue("name"),
		Age:    age,
		Gender: c.FormValue("gender"),
	}
	if err := h.validate.Struct(&passenger); err != nil {
		st.Notify(session.NoticeError, "Please fill in valid passenger details")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	ctx := c.Request().Context()
	req := model.BookingRequest{
		SeatIDs:   sel.SeatIDs(),
		Date:      st.Date(),
		Passenger: passenger,
		MealIDs:   sel.MealIDs(),
	}
	booking, err := h.API.CreateBooking(ctx, req)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			st.Notify(session.NoticeError, apiErr.Detail)
		} else {
			st.Notify(session.NoticeError, "Booking failed")
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	// The prediction is cosmetic; the booking stands even when the
	// estimate cannot be fetched.
	pred, err := h.API.GetPrediction(ctx, booking.BookingID)
	if err != nil {
		c.Logger().Warnf("prediction fetch failed for %s: %v", booking.BookingID, err)
		pred = nil
	}
	st.SetSuccess(&session.SuccessResult{Booking: *booking, Prediction: pred})
	st.ResetSelection()

	h.API.InvalidateSeats(ctx, st.Date())
	gen := st.BeginSeatFetch()
	if seats, err := h.API.ListSeats(ctx, st.Date()); err != nil {
		c.Logger().Errorf("seat refresh after booking failed: %v", err)
	} else {
		st.ApplySeats(gen, seats)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
