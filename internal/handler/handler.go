package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sleeperbus/booking-web/internal/model"
	"github.com/sleeperbus/booking-web/internal/session"
	"github.com/sleeperbus/booking-web/internal/view"
)

// BookingAPI is the slice of the api package the handlers depend on.
// The concrete implementation is *api.CachedCatalog; tests substitute a
// fake so handler behavior can be pinned without a live booking server.
type BookingAPI interface {
	ListSeats(ctx context.Context, date string) ([]model.Seat, error)
	ListMeals(ctx context.Context) ([]model.Meal, error)
	CreateBooking(ctx context.Context, req model.BookingRequest) (*model.Booking, error)
	GetPrediction(ctx context.Context, bookingID string) (*model.Prediction, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
	FindBooking(ctx context.Context, id string) (*model.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	InvalidateSeats(ctx context.Context, date string)
}

// ThemeCookie persists the visitor's light/dark preference.
const ThemeCookie = "theme"

// theme reads the visitor's theme preference, defaulting to light.
func theme(c echo.Context) string {
	if cookie, err := c.Cookie(ThemeCookie); err == nil && cookie.Value == "dark" {
		return "dark"
	}
	return "light"
}

// toastFrom converts a popped session notice into its view form.
func toastFrom(n *session.Notice) *view.Toast {
	if n == nil {
		return nil
	}
	return &view.Toast{Kind: n.Kind, Message: n.Message}
}

// ToggleTheme handles POST /theme.  It flips the theme cookie and sends
// the visitor back where they came from.  Only a local path from the
// Referer is honored; anything cross-origin falls back to the home page
// so the endpoint cannot redirect off-site.
func ToggleTheme(c echo.Context) error {
	next := "dark"
	if theme(c) == "dark" {
		next = "light"
	}
	c.SetCookie(&http.Cookie{
		Name:     ThemeCookie,
		Value:    next,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, localPath(c))
}

// localPath reduces the request's Referer to a same-origin path,
// defaulting to "/".
func localPath(c echo.Context) string {
	u, err := url.Parse(c.Request().Referer())
	if err != nil {
		return "/"
	}
	if u.Host != "" && u.Host != c.Request().Host {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.Path
}
