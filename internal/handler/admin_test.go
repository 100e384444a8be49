package handler_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sleeperbus/booking-web/internal/api"
	"github.com/sleeperbus/booking-web/internal/middleware"
	"github.com/sleeperbus/booking-web/internal/model"
)

func adminLogin(t *testing.T, h *harness) {
	t.Helper()
	rec := h.post("/admin/login", url.Values{"email": {"admin@sleeper.com"}, "password": {"admin123"}})
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("login redirect = %q, want /admin", loc)
	}
	if _, ok := h.cookies[middleware.AdminCookie]; !ok {
		t.Fatal("admin token cookie not set after login")
	}
}

func manyBookings(n int) []model.Booking {
	out := make([]model.Booking, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, model.Booking{
			BookingID:   fmt.Sprintf("bk-%02d", i),
			SeatIDs:     []int{i},
			Date:        "2026-09-01",
			Passenger:   model.Passenger{Name: "Asha", Age: 28, Gender: "female"},
			TotalAmount: 800,
			Status:      model.StatusConfirmed,
		})
	}
	return out
}

func TestAdminRequiresLogin(t *testing.T) {
	h := newHarness(&fakeAPI{})
	rec := h.get("/admin")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("unauthenticated /admin status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("redirect = %q, want /admin/login", loc)
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	h := newHarness(&fakeAPI{})

	for name, form := range map[string]url.Values{
		"wrong password": {"email": {"admin@sleeper.com"}, "password": {"nope"}},
		"wrong email":    {"email": {"intruder@sleeper.com"}, "password": {"admin123"}},
	} {
		rec := h.post("/admin/login", form)
		if loc := rec.Header().Get("Location"); loc != "/admin/login" {
			t.Errorf("%s: redirect = %q, want /admin/login", name, loc)
		}
		if _, ok := h.cookies[middleware.AdminCookie]; ok {
			t.Fatalf("%s: token cookie issued for bad credentials", name)
		}
	}
	if !strings.Contains(h.get("/admin/login").Body.String(), "Invalid credentials") {
		t.Error("credential failure toast missing")
	}
}

func TestAdminLoginIssuesSignedToken(t *testing.T) {
	h := newHarness(&fakeAPI{})
	adminLogin(t, h)

	raw := h.cookies[middleware.AdminCookie].Value
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["role"] != "ADMIN" || claims["sub"] != "admin@sleeper.com" {
		t.Errorf("claims = %v", claims)
	}
}

func TestAdminEmailCaseInsensitive(t *testing.T) {
	h := newHarness(&fakeAPI{})
	rec := h.post("/admin/login", url.Values{"email": {"Admin@Sleeper.COM"}, "password": {"admin123"}})
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("mixed-case email rejected, redirect = %q", loc)
	}
}

func TestDashboardShowsRecentFive(t *testing.T) {
	f := &fakeAPI{bookings: manyBookings(7)}
	h := newHarness(f)
	adminLogin(t, h)

	body := h.get("/admin").Body.String()
	if !strings.Contains(body, "Bookings <strong>7</strong>") {
		t.Error("booking count KPI missing")
	}
	for _, id := range []string{"bk-07", "bk-06", "bk-05", "bk-04", "bk-03"} {
		if !strings.Contains(body, "#"+id) {
			t.Errorf("recent activity missing %s", id)
		}
	}
	for _, id := range []string{"bk-02", "bk-01"} {
		if strings.Contains(body, "#"+id) {
			t.Errorf("recent activity includes %s beyond the last five", id)
		}
	}
	if strings.Index(body, "#bk-07") > strings.Index(body, "#bk-06") {
		t.Error("recent activity not in reverse creation order")
	}
}

func TestDashboardListFailure(t *testing.T) {
	f := &fakeAPI{listErr: &api.Error{StatusCode: 502}}
	h := newHarness(f)
	adminLogin(t, h)

	rec := h.get("/admin")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d on list failure", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Failed to fetch data") {
		t.Error("fetch failure toast missing")
	}
	if !strings.Contains(body, "Bookings <strong>0</strong>") {
		t.Error("dashboard should render empty on failure")
	}
}

func TestAdminBookingsTable(t *testing.T) {
	f := &fakeAPI{bookings: manyBookings(3)}
	h := newHarness(f)
	adminLogin(t, h)

	body := h.get("/admin/bookings").Body.String()
	for _, id := range []string{"bk-01", "bk-02", "bk-03"} {
		if !strings.Contains(body, id) {
			t.Errorf("table missing %s", id)
		}
	}
	if strings.Index(body, "bk-03") > strings.Index(body, "bk-01") {
		t.Error("table not in reverse creation order")
	}
	if !strings.Contains(body, "₹800") {
		t.Error("amount column missing")
	}
}

func TestAdminCancelBooking(t *testing.T) {
	f := &fakeAPI{bookings: manyBookings(2)}
	h := newHarness(f)
	adminLogin(t, h)

	h.post("/admin/bookings/bk-02/cancel", url.Values{}) // no confirm
	if len(f.cancelled) != 0 {
		t.Fatal("cancel ran without confirmation")
	}

	h.post("/admin/bookings/bk-02/cancel", url.Values{"confirm": {"yes"}})
	if len(f.cancelled) != 1 || f.cancelled[0] != "bk-02" {
		t.Fatalf("cancelled = %v", f.cancelled)
	}
	// The cancelled booking's date must be evicted from the seat cache
	// so the booking page shows the freed seats right away.
	if len(f.invalidated) != 1 || f.invalidated[0] != "2026-09-01" {
		t.Errorf("cache invalidations = %v, want the cancelled date", f.invalidated)
	}
	if !strings.Contains(h.get("/admin/bookings").Body.String(), "Booking cancelled") {
		t.Error("cancellation toast missing")
	}
}

func TestAdminCancelFailure(t *testing.T) {
	f := &fakeAPI{bookings: manyBookings(1), cancelErr: &api.Error{StatusCode: 502}}
	h := newHarness(f)
	adminLogin(t, h)

	h.post("/admin/bookings/bk-01/cancel", url.Values{"confirm": {"yes"}})
	if !strings.Contains(h.get("/admin/bookings").Body.String(), "Failed to delete booking") {
		t.Error("cancel failure toast missing")
	}
}

func TestAdminLogout(t *testing.T) {
	h := newHarness(&fakeAPI{})
	adminLogin(t, h)

	h.post("/admin/logout", nil)
	rec := h.get("/admin")
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("post-logout /admin redirect = %q, want /admin/login", loc)
	}
}
