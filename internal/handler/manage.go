package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sleeperbus/booking-web/internal/api"
	"github.com/sleeperbus/booking-web/internal/session"
	"github.com/sleeperbus/booking-web/internal/view"
)

// ManageHandler serves the passenger-facing lookup/cancel flow, distinct
// from the admin dashboard.  A looked-up booking lives in session state
// until it is cancelled or replaced by another lookup.
type ManageHandler struct {
	API      BookingAPI
	Sessions *session.Manager
}

// NewManageHandler constructs a ManageHandler.
func NewManageHandler(apiClient BookingAPI, sessions *session.Manager) *ManageHandler {
	if apiClient == nil || sessions == nil {
		panic("nil dependency passed to NewManageHandler")
	}
	return &ManageHandler{API: apiClient, Sessions: sessions}
}

// Page handles GET /manage.
func (h *ManageHandler) Page(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	var detail *view.BookingDetailView
	query := ""
	if cur := st.CurrentBooking(); cur != nil {
		v := view.RenderBookingDetail(*cur)
		detail = &v
		query = cur.BookingID
	}
	return c.Render(http.StatusOK, "manage", view.ManagePage{
		Theme:  theme(c),
		Query:  query,
		Detail: detail,
		Toast:  toastFrom(st.PopNotice()),
	})
}

// Find handles POST /manage/find.  The booking API has no single-booking
// endpoint, so the lookup scans the full list with a case-insensitive
// match.  A miss is a different situation from a broken network and the
// log tells them apart, even though the visitor sees a toast either way.
func (h *ManageHandler) Find(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	id := strings.TrimSpace(c.FormValue("booking_id"))
	if id == "" {
		st.Notify(session.NoticeError, "Please enter a booking ID")
		return c.Redirect(http.StatusSeeOther, "/manage")
	}
	booking, err := h.API.FindBooking(c.Request().Context(), id)
	if err != nil {
		st.SetCurrentBooking(nil)
		if errors.Is(err, api.ErrBookingNotFound) {
			c.Logger().Infof("booking lookup miss: %q", id)
			st.Notify(session.NoticeError, "Booking not found")
		} else {
			c.Logger().Errorf("booking lookup failed: %v", err)
			st.Notify(session.NoticeError, "Error finding booking")
		}
		return c.Redirect(http.StatusSeeOther, "/manage")
	}
	st.SetCurrentBooking(booking)
	return c.Redirect(http.StatusSeeOther, "/manage")
}

// Cancel handles POST /manage/cancel.  The confirmation checkbox is the
// explicit consent step; without it the request is a no-op, not an
// error.  On failure the displayed booking stays in place.  On success
// the detail view and lookup input are cleared and the seat list is
// refreshed.  The cancelled booking's date must be captured before the
// reference is dropped.
func (h *ManageHandler) Cancel(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	cur := st.CurrentBooking()
	if cur == nil {
		return c.Redirect(http.StatusSeeOther, "/manage")
	}
	if c.FormValue("confirm") != "yes" {
		return c.Redirect(http.StatusSeeOther, "/manage")
	}

	ctx := c.Request().Context()
	if err := h.API.CancelBooking(ctx, cur.BookingID); err != nil {
		c.Logger().Errorf("cancellation failed for %s: %v", cur.BookingID, err)
		st.Notify(session.NoticeError, "Cancellation failed")
		return c.Redirect(http.StatusSeeOther, "/manage")
	}

	cancelledDate := cur.Date
	st.SetCurrentBooking(nil)
	st.Notify(session.NoticeSuccess, "Booking cancelled successfully")

	h.API.InvalidateSeats(ctx, cancelledDate)
	gen := st.BeginSeatFetch()
	if seats, err := h.API.ListSeats(ctx, st.Date()); err != nil {
		c.Logger().Errorf("seat refresh after cancel failed: %v", err)
	} else {
		st.ApplySeats(gen, seats)
	}
	return c.Redirect(http.StatusSeeOther, "/manage")
}
