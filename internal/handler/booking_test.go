package handler_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/sleeperbus/booking-web/internal/api"
	"github.com/sleeperbus/booking-web/internal/model"
)

func TestPageRendersSeatMapAndMeals(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals()}
	h := newHarness(f)

	rec := h.get("/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"L1", "U1", "Veg Thali", "VEG", "Select a seat to begin"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if len(f.seatDates) != 1 || f.seatDates[0] != "2026-09-01" {
		t.Errorf("seat fetches = %v", f.seatDates)
	}
}

func TestPageMealFailureIsNonFatal(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), mealsErr: &api.Error{StatusCode: 500}}
	h := newHarness(f)
	rec := h.get("/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, meal failure must not break the page", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "L1") {
		t.Error("seat map missing after meal load failure")
	}
}

func TestToggleSeatShowsPricing(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals()}
	h := newHarness(f)
	h.get("/")
	h.post("/seats/toggle", url.Values{"seat_id": {"1"}})

	body := h.get("/").Body.String()
	if !strings.Contains(body, "Seats: L1") {
		t.Error("seat summary missing")
	}
	if !strings.Contains(body, "₹800") {
		t.Error("seat total missing")
	}
}

func TestToggleBookedSeatIsNoOp(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals()}
	h := newHarness(f)
	h.get("/")
	h.post("/seats/toggle", url.Values{"seat_id": {"2"}}) // booked seat

	body := h.get("/").Body.String()
	if !strings.Contains(body, "Select a seat to begin") {
		t.Error("booked seat toggle changed the selection")
	}
}

func TestChangeDateResetsSelection(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals()}
	h := newHarness(f)
	h.get("/")
	h.post("/seats/toggle", url.Values{"seat_id": {"1"}})
	h.post("/date", url.Values{"date": {"2026-09-05"}})

	if got := f.seatDates[len(f.seatDates)-1]; got != "2026-09-05" {
		t.Errorf("last seat fetch for %q, want the new date", got)
	}
	body := h.get("/").Body.String()
	if !strings.Contains(body, "Select a seat to begin") {
		t.Error("selection survived the date change")
	}
	// A submit right after the date change must not reach upstream.
	h.post("/book", passengerForm())
	if f.createCalls != 0 {
		t.Errorf("createCalls = %d after reset, want 0", f.createCalls)
	}
}

func TestChangeDateFetchFailureKeepsCatalog(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals()}
	h := newHarness(f)
	h.get("/")

	f.seatsErr = &api.Error{StatusCode: 502}
	h.post("/date", url.Values{"date": {"2026-09-05"}})

	body := h.get("/").Body.String()
	if !strings.Contains(body, "Failed to load seats") {
		t.Error("no failure notice shown")
	}
	if !strings.Contains(body, "L1") {
		t.Error("prior catalog discarded on fetch failure")
	}
}

func TestSubmitEmptySelectionIsNoOp(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals()}
	h := newHarness(f)
	h.get("/")

	rec := h.post("/book", passengerForm())
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if f.createCalls != 0 {
		t.Fatalf("createCalls = %d, want 0 for empty selection", f.createCalls)
	}
}

func TestSubmitInvalidPassengerRejectedLocally(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals()}
	h := newHarness(f)
	h.get("/")
	h.post("/seats/toggle", url.Values{"seat_id": {"1"}})

	bad := passengerForm()
	bad.Set("age", "300")
	h.post("/book", bad)
	if f.createCalls != 0 {
		t.Fatalf("invalid passenger reached upstream (%d calls)", f.createCalls)
	}
}

func TestSubmitValidPassengerReachesUpstream(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals()}
	h := newHarness(f)
	h.get("/")
	h.post("/seats/toggle", url.Values{"seat_id": {"1"}})

	// Valid details, including the age boundary, must pass validation
	// and produce exactly one booking request.
	form := passengerForm()
	form.Set("age", "100")
	rec := h.post("/book", form)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if f.createCalls != 1 {
		t.Fatalf("createCalls = %d, want 1", f.createCalls)
	}
}

func TestSubmitServerErrorKeepsSelection(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals()}
	h := newHarness(f)
	h.get("/")
	h.post("/seats/toggle", url.Values{"seat_id": {"1"}})

	f.createErr = &api.Error{StatusCode: http.StatusBadRequest, Detail: "Seat already booked"}
	h.post("/book", passengerForm())
	if f.createCalls != 1 {
		t.Fatalf("createCalls = %d, want 1", f.createCalls)
	}

	body := h.get("/").Body.String()
	if !strings.Contains(body, "Seat already booked") {
		t.Error("server detail message not surfaced verbatim")
	}
	if !strings.Contains(body, "Seats: L1") {
		t.Error("selection lost after failed submit")
	}

	// The selection is intact, so a retry issues another request.
	h.post("/book", passengerForm())
	if f.createCalls != 2 {
		t.Errorf("retry did not reach upstream (createCalls = %d)", f.createCalls)
	}
}

func TestSubmitSuccess(t *testing.T) {
	f := &fakeAPI{
		seats:      defaultSeats(),
		meals:      defaultMeals(),
		prediction: &model.Prediction{BookingID: "ab12cd34", Percent: 87.5, RiskLevel: "Low Risk"},
	}
	h := newHarness(f)
	h.get("/")
	h.post("/seats/toggle", url.Values{"seat_id": {"1"}})
	h.post("/meals/toggle", url.Values{"meal_id": {"2"}})

	fetchesBefore := len(f.seatDates)
	h.post("/book", passengerForm())
	if f.createCalls != 1 {
		t.Fatalf("createCalls = %d", f.createCalls)
	}
	if len(f.invalidated) == 0 || f.invalidated[0] != "2026-09-01" {
		t.Errorf("seat cache not invalidated for the booked date: %v", f.invalidated)
	}
	if len(f.seatDates) != fetchesBefore+1 {
		t.Errorf("seat list not refreshed after booking")
	}

	body := h.get("/").Body.String()
	if !strings.Contains(body, "ab12cd34") || !strings.Contains(body, "87.5%") || !strings.Contains(body, "Low Risk") {
		t.Error("success view incomplete")
	}
	if !strings.Contains(body, "Select a seat to begin") {
		t.Error("selection not cleared after success")
	}

	// The success view is one-shot.
	if strings.Contains(h.get("/").Body.String(), "Booking confirmed") {
		t.Error("success view shown twice")
	}
}

func TestSubmitSuccessWithoutPrediction(t *testing.T) {
	f := &fakeAPI{seats: defaultSeats(), meals: defaultMeals(), predErr: &api.Error{StatusCode: 500}}
	h := newHarness(f)
	h.get("/")
	h.post("/seats/toggle", url.Values{"seat_id": {"1"}})
	h.post("/book", passengerForm())

	body := h.get("/").Body.String()
	if !strings.Contains(body, "ab12cd34") {
		t.Error("booking confirmation missing when prediction failed")
	}
	if strings.Contains(body, "Confirmation chance") {
		t.Error("prediction line rendered without a prediction")
	}
}
