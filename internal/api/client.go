// Package api is the HTTP client for the DriveShare marketplace.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"driveshare/internal/ctxlog"
	"driveshare/internal/domain"
	"driveshare/internal/session"
)

// RequestIDHeader carries a per-request id for server side correlation
const RequestIDHeader = "X-Request-ID"

// Error is a non-success response from the marketplace.
// Message holds the body's "error" field and is empty when there was none.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("marketplace returned %d", e.Status)
	}
	return fmt.Sprintf("marketplace returned %d: %s", e.Status, e.Message)
}

// AsError unwraps err into an application error, if it is one
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Options configures a Client
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
	// Transport overrides the HTTP transport, mainly for tests
	Transport http.RoundTripper
}

// Client talks to the marketplace REST endpoints
type Client struct {
	http   *resty.Client
	tokens session.Store
	logger *slog.Logger
}

// New creates a client that reads the bearer token from tokens on every request
func New(tokens session.Store, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	if opts.Transport != nil {
		rc.SetTransport(opts.Transport)
	}

	c := &Client{http: rc, tokens: tokens, logger: logger}
	rc.OnBeforeRequest(c.beforeRequest)
	rc.OnAfterResponse(c.afterResponse)
	return c
}

// beforeRequest attaches the stored credential and a request id
func (c *Client) beforeRequest(_ *resty.Client, r *resty.Request) error {
	if token, ok := c.tokens.Token(); ok {
		r.SetAuthToken(token)
	}
	id := uuid.NewString()
	r.SetHeader(RequestIDHeader, id)
	r.SetContext(ctxlog.WithLogger(r.Context(), c.logger.With("request_id", id)))
	return nil
}

func (c *Client) afterResponse(_ *resty.Client, resp *resty.Response) error {
	ctxlog.FromContext(resp.Request.Context()).Debug("marketplace response",
		"method", resp.Request.Method,
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"elapsed", resp.Time())
	return nil
}

// do executes r and decodes a successful body into out (when out is non-nil)
func (c *Client) do(ctx context.Context, method, path string, r *resty.Request, out any) error {
	resp, err := r.SetContext(ctx).Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if !resp.IsSuccess() {
		return &Error{
			Status:  resp.StatusCode(),
			Message: gjson.GetBytes(resp.Body(), "error").String(),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return nil
}

// Login exchanges credentials for an access token
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/login", c.http.R().SetBody(creds), &out)
	return out, err
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, reg Registration) (MessageResult, error) {
	var out MessageResult
	err := c.do(ctx, http.MethodPost, "/register", c.http.R().SetBody(reg), &out)
	return out, err
}

// UserInfo returns the profile behind the stored token
func (c *Client) UserInfo(ctx context.Context) (domain.UserInfo, error) {
	var out domain.UserInfo
	err := c.do(ctx, http.MethodGet, "/user/info", c.http.R(), &out)
	return out, err
}

// SearchCars lists cars, filtered by location when it is not empty
func (c *Client) SearchCars(ctx context.Context, location string) ([]domain.Car, error) {
	r := c.http.R()
	if location != "" {
		r.SetQueryParam("location", location)
	}
	var out []domain.Car
	err := c.do(ctx, http.MethodGet, "/cars", r, &out)
	return out, err
}

// ListCar publishes a new car listing
func (c *Client) ListCar(ctx context.Context, car NewCar) (MessageResult, error) {
	var out MessageResult
	err := c.do(ctx, http.MethodPost, "/cars", c.http.R().SetBody(car), &out)
	return out, err
}

// CreateBooking books a car for a date range
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (BookingResult, error) {
	var out BookingResult
	err := c.do(ctx, http.MethodPost, "/bookings", c.http.R().SetBody(req), &out)
	return out, err
}

// MyBookings lists the current user's bookings
func (c *Client) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := c.do(ctx, http.MethodGet, "/mybookings", c.http.R(), &out)
	return out, err
}

// PayBooking pays for a booking
func (c *Client) PayBooking(ctx context.Context, bookingID string) (PaymentResult, error) {
	var out PaymentResult
	r := c.http.R().SetPathParam("id", bookingID)
	err := c.do(ctx, http.MethodPost, "/bookings/{id}/pay", r, &out)
	return out, err
}

// SendMessage sends a message to another user by email
func (c *Client) SendMessage(ctx context.Context, msg OutgoingMessage) (MessageResult, error) {
	var out MessageResult
	err := c.do(ctx, http.MethodPost, "/messages", c.http.R().SetBody(msg), &out)
	return out, err
}

// Inbox lists messages received by userID
func (c *Client) Inbox(ctx context.Context, userID int) ([]domain.Message, error) {
	var out []domain.Message
	r := c.http.R().SetPathParam("id", strconv.Itoa(userID))
	err := c.do(ctx, http.MethodGet, "/users/{id}/messages", r, &out)
	return out, err
}
