package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sleeperbus/booking-web/internal/config"
	"github.com/sleeperbus/booking-web/internal/middleware"
	"github.com/sleeperbus/booking-web/internal/session"
	"github.com/sleeperbus/booking-web/internal/utils"
	"github.com/sleeperbus/booking-web/internal/view"
)

// AdminHandler serves the dashboard: sign-in, KPIs with the recent
// activity feed, the full bookings table and per-row cancellation.  The
// credential is a single configured email plus bcrypt hash; a successful
// sign-in issues a real signed JWT carried in the admin_token cookie.
type AdminHandler struct {
	Cfg      config.Config
	API      BookingAPI
	Sessions *session.Manager
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(cfg config.Config, apiClient BookingAPI, sessions *session.Manager) *AdminHandler {
	if apiClient == nil || sessions == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, API: apiClient, Sessions: sessions}
}

// LoginPage handles GET /admin/login.
func (h *AdminHandler) LoginPage(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	return c.Render(http.StatusOK, "admin_login", view.LoginPage{
		Theme: theme(c),
		Toast: toastFrom(st.PopNotice()),
	})
}

// Login handles POST /admin/login.  The email comparison is
// case-insensitive and the password check is a constant-time bcrypt
// compare; both must pass before a token is issued.  The bcrypt compare
// runs even for a wrong email so the two failure modes take the same
// time.
func (h *AdminHandler) Login(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	emailOK := email == strings.ToLower(h.Cfg.AdminEmail)
	passOK := utils.VerifyPassword(h.Cfg.AdminPassHash, password)
	if !emailOK || !passOK {
		st.Notify(session.NoticeError, "Invalid credentials")
		return c.Redirect(http.StatusSeeOther, "/admin/login")
	}

	tok, err := utils.NewAdminToken(h.Cfg.JWTSecret, email, h.Cfg.AccessTTLMin)
	if err != nil {
		c.Logger().Errorf("admin token issue failed: %v", err)
		st.Notify(session.NoticeError, "Sign-in failed, try again")
		return c.Redirect(http.StatusSeeOther, "/admin/login")
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookie,
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout handles POST /admin/logout by expiring the token cookie.
func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}

// Dashboard handles GET /admin.  It derives the booking-count KPI and
// the five most recent bookings from the full list; when the list cannot
// be fetched the dashboard renders empty with an error toast rather than
// failing the page.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	bookings, err := h.API.ListBookings(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("dashboard booking list failed: %v", err)
		st.Notify(session.NoticeError, "Failed to fetch data")
		bookings = nil
	}
	return c.Render(http.StatusOK, "admin_dashboard", view.DashboardPage{
		Theme:     theme(c),
		Dashboard: view.RenderDashboard(bookings),
		Toast:     toastFrom(st.PopNotice()),
	})
}

// Bookings handles GET /admin/bookings, rendering every booking in
// reverse creation order.
func (h *AdminHandler) Bookings(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	bookings, err := h.API.ListBookings(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("bookings table list failed: %v", err)
		st.Notify(session.NoticeError, "Failed to fetch data")
		bookings = nil
	}
	return c.Render(http.StatusOK, "admin_bookings", view.BookingsPage{
		Theme: theme(c),
		Table: view.RenderBookingsTable(bookings),
		Toast: toastFrom(st.PopNotice()),
	})
}

// CancelBooking handles POST /admin/bookings/:id/cancel.  The confirm
// checkbox plays the role of the browser confirm() dialog; declining is
// a silent no-op.  On success the table redirect reloads fresh data and
// the cancelled date's cached seat list is dropped so booking visitors
// see the freed seats immediately.
func (h *AdminHandler) CancelBooking(c echo.Context) error {
	st := h.Sessions.Acquire(c)
	id := c.Param("id")
	if id == "" || c.FormValue("confirm") != "yes" {
		return c.Redirect(http.StatusSeeOther, "/admin/bookings")
	}
	ctx := c.Request().Context()

	// The date must be resolved before the cancel; afterwards the
	// booking may already be gone from the list.
	date := ""
	if b, err := h.API.FindBooking(ctx, id); err == nil {
		date = b.Date
	}

	if err := h.API.CancelBooking(ctx, id); err != nil {
		c.Logger().Errorf("admin cancellation failed for %s: %v", id, err)
		st.Notify(session.NoticeError, "Failed to delete booking")
		return c.Redirect(http.StatusSeeOther, "/admin/bookings")
	}
	if date != "" {
		h.API.InvalidateSeats(ctx, date)
	}
	st.Notify(session.NoticeSuccess, "Booking cancelled")
	return c.Redirect(http.StatusSeeOther, "/admin/bookings")
}
