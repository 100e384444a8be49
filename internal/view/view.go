// Package view projects session state into plain view-description
// structs.  Nothing in this file knows about HTML: the structs say what
// the page shows, and the adapter in html.go decides how.  Keeping the
// projection pure means the seat map, pricing and dashboard rules are
// testable without a browser or a template engine.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sleeperbus/booking-web/internal/booking"
	"github.com/sleeperbus/booking-web/internal/model"
)

// SeatCell is one seat in the rendered map.  Selectable is false for
// booked seats: the UI must not attach a toggle to them at all, the
// reducer's own guard is only the second line of defence.
type SeatCell struct {
	ID         int
	Number     string
	Price      float64
	Booked     bool
	Selected   bool
	Selectable bool
}

// SeatMapView splits the coach into its two berth rails.
type SeatMapView struct {
	Lower []SeatCell
	Upper []SeatCell
}

// MealItem is one catalog entry with its selection state.  TypeTag is
// the category upper-cased for display ("VEG", "NON_VEG", "SNACK").
type MealItem struct {
	ID       int
	Name     string
	TypeTag  string
	Price    float64
	Selected bool
}

// PricingView is the live total panel.  It exists only while at least
// one seat is selected; callers receive nil otherwise and render nothing.
type PricingView struct {
	SeatTotal  float64
	MealTotal  float64
	GrandTotal float64
}

// BookingPanelView drives the right-hand panel: the empty-state hint or
// the passenger form with the seat summary and live pricing.
type BookingPanelView struct {
	Empty       bool
	SeatSummary string // selected numbers joined ", " in first-toggle order
	Pricing     *PricingView
}

// SuccessView is the one-time confirmation shown after a booking is
// created.  Prediction fields are blank when the estimate could not be
// fetched; the booking itself still succeeded.
type SuccessView struct {
	BookingID   string
	PercentText string // e.g. "87.5%"
	RiskLevel   string
}

// BookingDetailView is the manage-flow lookup result.
type BookingDetailView struct {
	BookingID string
	Passenger string
	Date      string
}

// BookingRow is one line of an admin table.
type BookingRow struct {
	BookingID   string
	Passenger   string
	Demo        string // "female, 28" demographics line
	Date        string
	SeatCount   int
	AmountText  string
	Status      string
	StatusClass string
}

// DashboardView carries the admin KPIs and the recent activity feed.
type DashboardView struct {
	TotalBookings int
	Recent        []BookingRow // five most recent, most recent first
}

// BookingsTableView lists every booking, newest first.
type BookingsTableView struct {
	Rows []BookingRow
}

// RenderSeatMap projects the catalog and selection into deck rails.
func RenderSeatMap(seats []model.Seat, sel *booking.Selection) SeatMapView {
	var v SeatMapView
	for _, seat := range seats {
		cell := SeatCell{
			ID:         seat.ID,
			Number:     seat.Number,
			Price:      seat.Price,
			Booked:     seat.IsBooked,
			Selected:   sel.HasSeat(seat.ID),
			Selectable: !seat.IsBooked,
		}
		if seat.Type == model.SeatTypeUpper {
			v.Upper = append(v.Upper, cell)
		} else {
			v.Lower = append(v.Lower, cell)
		}
	}
	return v
}

// RenderMeals projects the meal catalog with selection marks.
func RenderMeals(meals []model.Meal, sel *booking.Selection) []MealItem {
	items := make([]MealItem, 0, len(meals))
	for _, m := range meals {
		items = append(items, MealItem{
			ID:       m.ID,
			Name:     m.Name,
			TypeTag:  strings.ToUpper(m.Type),
			Price:    m.Price,
			Selected: sel.HasMeal(m.ID),
		})
	}
	return items
}

// RenderPricing computes the live totals, or nil while no seat is
// selected so the pricing UI stays hidden.
func RenderPricing(sel *booking.Selection, meals []model.Meal) *PricingView {
	if len(sel.Seats()) == 0 {
		return nil
	}
	q := booking.Quote(sel, meals)
	return &PricingView{SeatTotal: q.SeatTotal, MealTotal: q.MealTotal, GrandTotal: q.GrandTotal}
}

// RenderBookingPanel builds the booking panel from the selection.
func RenderBookingPanel(sel *booking.Selection, meals []model.Meal) BookingPanelView {
	seats := sel.Seats()
	if len(seats) == 0 {
		return BookingPanelView{Empty: true}
	}
	return BookingPanelView{
		SeatSummary: strings.Join(sel.SeatNumbers(), ", "),
		Pricing:     RenderPricing(sel, meals),
	}
}

// RenderSuccess builds the confirmation view for a created booking.
func RenderSuccess(b model.Booking, p *model.Prediction) SuccessView {
	v := SuccessView{BookingID: b.BookingID}
	if p != nil {
		v.PercentText = formatNumber(p.Percent) + "%"
		v.RiskLevel = p.RiskLevel
	}
	return v
}

// RenderBookingDetail builds the manage-flow detail view.
func RenderBookingDetail(b model.Booking) BookingDetailView {
	return BookingDetailView{
		BookingID: b.BookingID,
		Passenger: b.Passenger.Name,
		Date:      b.Date,
	}
}

// RenderDashboard derives the booking-count KPI and the activity feed:
// the five most recently created bookings, most recent first.  The API
// returns bookings in creation order, so the feed is the reversed tail.
func RenderDashboard(bookings []model.Booking) DashboardView {
	v := DashboardView{TotalBookings: len(bookings)}
	for i := len(bookings) - 1; i >= 0 && len(v.Recent) < 5; i-- {
		v.Recent = append(v.Recent, bookingRow(bookings[i]))
	}
	return v
}

// RenderBookingsTable lists every booking in reverse creation order.
func RenderBookingsTable(bookings []model.Booking) BookingsTableView {
	v := BookingsTableView{Rows: make([]BookingRow, 0, len(bookings))}
	for i := len(bookings) - 1; i >= 0; i-- {
		v.Rows = append(v.Rows, bookingRow(bookings[i]))
	}
	return v
}

func bookingRow(b model.Booking) BookingRow {
	return BookingRow{
		BookingID:   b.BookingID,
		Passenger:   b.Passenger.Name,
		Demo:        fmt.Sprintf("%s, %d", b.Passenger.Gender, b.Passenger.Age),
		Date:        b.Date,
		SeatCount:   len(b.SeatIDs),
		AmountText:  "₹" + formatNumber(b.TotalAmount),
		Status:      b.Status,
		StatusClass: statusClass(b.Status),
	}
}

// statusClass maps a booking status onto its badge style.
func statusClass(status string) string {
	switch status {
	case model.StatusConfirmed:
		return "status-confirmed"
	case model.StatusCancelled:
		return "status-canceled"
	default:
		return "status-pending"
	}
}

// formatNumber prints an amount the way the catalog does: no trailing
// zeros, no forced decimals ("650", "87.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
