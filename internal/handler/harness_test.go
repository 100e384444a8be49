package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/sleeperbus/booking-web/internal/api"
	"github.com/sleeperbus/booking-web/internal/config"
	"github.com/sleeperbus/booking-web/internal/handler"
	"github.com/sleeperbus/booking-web/internal/model"
	"github.com/sleeperbus/booking-web/internal/router"
	"github.com/sleeperbus/booking-web/internal/session"
	"github.com/sleeperbus/booking-web/internal/utils"
	"github.com/sleeperbus/booking-web/internal/view"
)

// fakeAPI implements BookingAPI in memory and records every upstream
// interaction so tests can assert what did and did not go over the wire.
type fakeAPI struct {
	seats      []model.Seat
	seatsErr   error
	meals      []model.Meal
	mealsErr   error
	bookings   []model.Booking
	listErr    error
	created    *model.Booking
	createErr  error
	prediction *model.Prediction
	predErr    error
	cancelErr  error

	seatDates   []string // dates requested via ListSeats, in order
	createCalls int
	cancelled   []string
	invalidated []string
}

func (f *fakeAPI) ListSeats(_ context.Context, date string) ([]model.Seat, error) {
	f.seatDates = append(f.seatDates, date)
	if f.seatsErr != nil {
		return nil, f.seatsErr
	}
	return f.seats, nil
}

func (f *fakeAPI) ListMeals(context.Context) ([]model.Meal, error) {
	if f.mealsErr != nil {
		return nil, f.mealsErr
	}
	return f.meals, nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, req model.BookingRequest) (*model.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	b := f.created
	if b == nil {
		b = &model.Booking{BookingID: "ab12cd34", SeatIDs: req.SeatIDs, Date: req.Date, Passenger: req.Passenger, Status: model.StatusConfirmed}
	}
	return b, nil
}

func (f *fakeAPI) GetPrediction(context.Context, string) (*model.Prediction, error) {
	if f.predErr != nil {
		return nil, f.predErr
	}
	return f.prediction, nil
}

func (f *fakeAPI) ListBookings(context.Context) ([]model.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

func (f *fakeAPI) FindBooking(_ context.Context, id string) (*model.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	for i := range f.bookings {
		if strings.EqualFold(f.bookings[i].BookingID, id) {
			return &f.bookings[i], nil
		}
	}
	return nil, api.ErrBookingNotFound
}

func (f *fakeAPI) CancelBooking(_ context.Context, id string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeAPI) InvalidateSeats(_ context.Context, date string) {
	f.invalidated = append(f.invalidated, date)
}

// harness runs the full route table against a fakeAPI, carrying cookies
// between requests the way a browser would.
type harness struct {
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

// passthrough stands in for the redis rate limiter in tests.
func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error { return next(c) }
}

func testConfig() config.Config {
	// MinCost keeps the hashing round trip cheap in tests.
	hash, err := utils.HashPassword("admin123", bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return config.Config{
		Env:           "test",
		Port:          "0",
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@sleeper.com",
		AdminPassHash: hash,
		AccessTTLMin:  30,
		SessionTTL:    time.Hour,
	}
}

func newHarness(f *fakeAPI) *harness {
	e := echo.New()
	e.Renderer = view.NewRenderer()
	sessions := session.NewManager(time.Hour, func() string { return "2026-09-01" })
	cfg := testConfig()

	router.RegisterRoutes(e)
	router.RegisterBooking(e, handler.NewBookingHandler(f, sessions), passthrough)
	router.RegisterManage(e, handler.NewManageHandler(f, sessions), passthrough)
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, f, sessions), cfg.JWTSecret, passthrough)

	return &harness{e: e, cookies: make(map[string]*http.Cookie)}
}

func (h *harness) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Accept", "text/html")
	for _, c := range h.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		h.cookies[c.Name] = c
	}
	return rec
}

func (h *harness) get(target string) *httptest.ResponseRecorder {
	return h.do(http.MethodGet, target, nil)
}

func (h *harness) post(target string, form url.Values) *httptest.ResponseRecorder {
	return h.do(http.MethodPost, target, form)
}

func defaultSeats() []model.Seat {
	return []model.Seat{
		{ID: 1, Number: "L1", Type: model.SeatTypeLower, Price: 800},
		{ID: 2, Number: "L2", Type: model.SeatTypeLower, Price: 800, IsBooked: true},
		{ID: 11, Number: "U1", Type: model.SeatTypeUpper, Price: 650},
	}
}

func defaultMeals() []model.Meal {
	return []model.Meal{
		{ID: 1, Name: "Veg Thali", Type: model.MealTypeVeg, Price: 150},
		{ID: 2, Name: "Chicken Biryani", Type: model.MealTypeNonVeg, Price: 250},
	}
}

func passengerForm() url.Values {
	return url.Values{
		"name":   {"Asha"},
		"age":    {"28"},
		"gender": {"female"},
	}
}
