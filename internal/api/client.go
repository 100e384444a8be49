package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sleeperbus/booking-web/internal/model"
)

// Client calls the external booking API.  It performs no retries: every
// failure is terminal for the user action that triggered it, and the user
// retries manually.  All methods take a context so an abandoned page load
// cancels its upstream request.
type Client struct {
	base string       // API base URL without trailing slash
	hc   *http.Client // underlying HTTP client with a request timeout
}

// NewClient constructs a Client for the given base URL.  The timeout
// bounds every request including body read; zero means no timeout.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

// ListSeats fetches the seat list for one travel date.  Seat identifiers
// and the is_booked flags are only meaningful for that date.
func (c *Client) ListSeats(ctx context.Context, date string) ([]model.Seat, error) {
	var seats []model.Seat
	u := c.base + "/seats?date=" + url.QueryEscape(date)
	if err := c.getJSON(ctx, u, &seats); err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	return seats, nil
}

// ListMeals fetches the meal catalog.  The catalog is not date-scoped and
// is typically fetched once at session start.
func (c *Client) ListMeals(ctx context.Context) ([]model.Meal, error) {
	var meals []model.Meal
	if err := c.getJSON(ctx, c.base+"/meals", &meals); err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// CreateBooking submits a booking request.  On a non-2xx response the
// returned error is an *Error carrying the server's detail message, so
// callers can show it to the user verbatim.
func (c *Client) CreateBooking(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode booking request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/book", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}
	var booking model.Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("decode booking: %w", err)
	}
	return &booking, nil
}

// GetPrediction fetches the confirmation estimate for a freshly created
// booking.
func (c *Client) GetPrediction(ctx context.Context, bookingID string) (*model.Prediction, error) {
	var pred model.Prediction
	u := c.base + "/prediction/" + url.PathEscape(bookingID)
	if err := c.getJSON(ctx, u, &pred); err != nil {
		return nil, fmt.Errorf("get prediction: %w", err)
	}
	return &pred, nil
}

// ListBookings fetches every booking the server knows about, in creation
// order.  Both the manage lookup and the admin views read from this list.
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.getJSON(ctx, c.base+"/bookings", &bookings); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// FindBooking locates a single booking by identifier.  The API exposes no
// single-resource endpoint, so this fetches the full list and matches
// case-insensitively on the client.  A miss returns ErrBookingNotFound,
// which callers must keep distinguishable from transport failures.
func (c *Client) FindBooking(ctx context.Context, id string) (*model.Booking, error) {
	bookings, err := c.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if strings.EqualFold(bookings[i].BookingID, id) {
			return &bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

// CancelBooking asks the server to cancel a booking and free its seats.
// Only the success/failure status matters to callers.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	u := c.base + "/cancel/" + url.PathEscape(bookingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// getJSON performs a GET and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeAPIError turns a non-2xx response into an *Error, extracting the
// server's {"detail": ...} message when the body carries one.
func decodeAPIError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
