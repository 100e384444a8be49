package view

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Toast is the rendered form of a transient session notice.
type Toast struct {
	Kind    string
	Message string
}

// BookingPage is the full booking screen passed to the "booking" template.
type BookingPage struct {
	Theme   string
	Date    string
	SeatMap SeatMapView
	Meals   []MealItem
	Panel   BookingPanelView
	Success *SuccessView
	Toast   *Toast
}

// ManagePage is the lookup/cancel screen.
type ManagePage struct {
	Theme  string
	Query  string
	Detail *BookingDetailView
	Toast  *Toast
}

// LoginPage is the admin sign-in screen.
type LoginPage struct {
	Theme string
	Toast *Toast
}

// DashboardPage is the admin landing screen.
type DashboardPage struct {
	Theme     string
	Dashboard DashboardView
	Toast     *Toast
}

// BookingsPage is the admin bookings table screen.
type BookingsPage struct {
	Theme string
	Table BookingsTableView
	Toast *Toast
}

// Renderer implements echo.Renderer over the embedded templates, so the
// HTML binding stays a thin adapter that handlers plug in via
// e.Renderer.  Swapping it out (e.g. for JSON views in tests) does not
// touch any render logic.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.  Parsing happens once at
// startup and panics on a malformed template, the same fail-fast rule as
// a missing env var.
func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("pages").Parse(pages))}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

// pages holds every screen.  Markup is deliberately sparse: structure
// and form wiring only, styling lives in static assets.
const pages = `
{{define "layout_head"}}<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head><meta charset="utf-8"><title>Sleeper Booking</title><link rel="stylesheet" href="/static/style.css"></head>
<body>
<header>
  <nav><a href="/">Book</a> <a href="/manage">Manage Booking</a></nav>
  <form method="post" action="/theme"><button type="submit" class="theme-toggle">{{if eq .Theme "dark"}}Light{{else}}Dark{{end}} mode</button></form>
</header>
{{with .Toast}}<div class="toast {{.Kind}}" role="status">{{.Message}}</div>{{end}}
{{end}}

{{define "layout_foot"}}</body></html>{{end}}

{{define "seat_rail"}}
{{range .}}
  {{if .Selectable}}
  <form method="post" action="/seats/toggle" class="seat-form">
    <button name="seat_id" value="{{.ID}}" class="seat{{if .Selected}} selected{{end}}" title="₹{{.Price}}">{{.Number}}</button>
  </form>
  {{else}}
  <span class="seat booked">{{.Number}}</span>
  {{end}}
{{end}}
{{end}}

{{define "booking"}}{{template "layout_head" .}}
<section class="date-picker">
  <form method="post" action="/date">
    <label>Travel date <input type="date" name="date" value="{{.Date}}" required></label>
    <button type="submit">Change</button>
  </form>
</section>
<section class="seat-map">
  <h2>Lower deck</h2><div class="rail">{{template "seat_rail" .SeatMap.Lower}}</div>
  <h2>Upper deck</h2><div class="rail">{{template "seat_rail" .SeatMap.Upper}}</div>
</section>
<section class="meals">
  <h2>Meals</h2>
  {{range .Meals}}
  <form method="post" action="/meals/toggle" class="meal-item{{if .Selected}} active{{end}}">
    <button name="meal_id" value="{{.ID}}">{{.Name}} <small>{{.TypeTag}} · ₹{{.Price}}</small>{{if .Selected}} ✓{{end}}</button>
  </form>
  {{end}}
</section>
<section class="panel">
  {{if .Panel.Empty}}
  <p class="empty-state">Select a seat to begin.</p>
  {{else}}
  <p class="seat-summary">Seats: {{.Panel.SeatSummary}}</p>
  {{with .Panel.Pricing}}
  <dl class="pricing">
    <dt>Seats</dt><dd>₹{{.SeatTotal}}</dd>
    <dt>Meals</dt><dd>₹{{.MealTotal}}</dd>
    <dt>Total</dt><dd>₹{{.GrandTotal}}</dd>
  </dl>
  {{end}}
  <form method="post" action="/book" class="passenger-form">
    <label>Name <input name="name" required></label>
    <label>Age <input name="age" type="number" min="1" max="100" required></label>
    <label>Gender
      <select name="gender"><option value="male">Male</option><option value="female">Female</option><option value="other">Other</option></select>
    </label>
    <button type="submit" class="book-btn">Book now</button>
  </form>
  {{end}}
</section>
{{with .Success}}
<div class="success-modal">
  <h2>Booking confirmed</h2>
  <p>Booking ID: <strong>{{.BookingID}}</strong></p>
  {{if .PercentText}}<p>Confirmation chance: {{.PercentText}} ({{.RiskLevel}})</p>{{end}}
  <a href="/">Close</a>
</div>
{{end}}
{{template "layout_foot" .}}{{end}}

{{define "manage"}}{{template "layout_head" .}}
<section class="manage">
  <h2>Manage booking</h2>
  <form method="post" action="/manage/find">
    <input name="booking_id" value="{{.Query}}" placeholder="Booking ID" required>
    <button type="submit">Find Booking</button>
  </form>
  {{with .Detail}}
  <div class="booking-details">
    <p>ID: {{.BookingID}}</p>
    <p>Passenger: {{.Passenger}}</p>
    <p>Date: {{.Date}}</p>
    <form method="post" action="/manage/cancel">
      <label><input type="checkbox" name="confirm" value="yes"> I understand this cannot be undone</label>
      <button type="submit" class="danger">Cancel Booking</button>
    </form>
  </div>
  {{end}}
</section>
{{template "layout_foot" .}}{{end}}

{{define "admin_login"}}{{template "layout_head" .}}
<section class="admin-login">
  <h2>Admin sign in</h2>
  <form method="post" action="/admin/login">
    <label>Email <input name="email" type="email" required></label>
    <label>Password <input name="password" type="password" required></label>
    <button type="submit">Sign in</button>
  </form>
</section>
{{template "layout_foot" .}}{{end}}

{{define "admin_dashboard"}}{{template "layout_head" .}}
<section class="admin">
  <nav><a href="/admin">Dashboard</a> <a href="/admin/bookings">Bookings</a> <form method="post" action="/admin/logout"><button>Sign out</button></form></nav>
  <h2>Dashboard</h2>
  <div class="kpi">Bookings <strong>{{.Dashboard.TotalBookings}}</strong></div>
  <h3>Recent activity</h3>
  <table><tbody>
  {{range .Dashboard.Recent}}
    <tr><td>#{{.BookingID}}</td><td>{{.Passenger}}<br><small>{{.Demo}}</small></td><td>{{.Date}}</td><td>{{.AmountText}}</td><td><span class="status-badge {{.StatusClass}}">{{.Status}}</span></td></tr>
  {{end}}
  </tbody></table>
</section>
{{template "layout_foot" .}}{{end}}

{{define "admin_bookings"}}{{template "layout_head" .}}
<section class="admin">
  <nav><a href="/admin">Dashboard</a> <a href="/admin/bookings">Bookings</a> <form method="post" action="/admin/logout"><button>Sign out</button></form></nav>
  <h2>Bookings</h2>
  <table><tbody>
  {{if not .Table.Rows}}<tr><td>No bookings found</td></tr>{{end}}
  {{range .Table.Rows}}
    <tr>
      <td>#{{.BookingID}}</td><td>{{.Passenger}}</td><td>{{.Date}}</td><td>{{.SeatCount}} seats</td><td>{{.AmountText}}</td>
      <td><span class="status-badge {{.StatusClass}}">{{.Status}}</span></td>
      <td>
        <form method="post" action="/admin/bookings/{{.BookingID}}/cancel">
          <label><input type="checkbox" name="confirm" value="yes"> sure?</label>
          <button class="danger">Delete</button>
        </form>
      </td>
    </tr>
  {{end}}
  </tbody></table>
</section>
{{template "layout_foot" .}}{{end}}
`
