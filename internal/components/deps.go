// Package components holds the UI components of the DriveShare client.
//
// Every component registers itself with the session's mediator, subscribes
// to the events it reacts to and publishes events in response to user
// actions or marketplace responses. Components never call each other.
// Screen state lives in an explicit state struct per component; the parts
// of the screen a component needs to poke at (form fields) are injected.
package components

import (
	"context"
	"log/slog"
	"time"

	"driveshare/internal/api"
	"driveshare/internal/domain"
	"driveshare/internal/mediator"
	"driveshare/internal/session"
)

// Registered component names
const (
	NameNavigation     = "navigation"
	NameAuth           = "auth"
	NameCarSearch      = "carSearch"
	NameBooking        = "booking"
	NameMyBookings     = "myBookings"
	NameNotification   = "notification"
	NamePayment        = "payment"
	NameCarListing     = "carListing"
	NameMessaging      = "messaging"
	NameInbox          = "inbox"
	NameProfileDisplay = "profileDisplay"
)

// Generic texts for transport failures
const (
	networkRetryText      = "Network error. Please try again."
	networkPaymentText    = "Network error during payment."
	networkCarListingText = "Network error while listing car."
	networkMessagingText  = "Network error while sending message."
)

// Marketplace is the subset of the marketplace API the components use
type Marketplace interface {
	Login(ctx context.Context, creds api.Credentials) (api.LoginResult, error)
	Register(ctx context.Context, reg api.Registration) (api.MessageResult, error)
	UserInfo(ctx context.Context) (domain.UserInfo, error)
	SearchCars(ctx context.Context, location string) ([]domain.Car, error)
	ListCar(ctx context.Context, car api.NewCar) (api.MessageResult, error)
	CreateBooking(ctx context.Context, req api.BookingRequest) (api.BookingResult, error)
	MyBookings(ctx context.Context) ([]domain.Booking, error)
	PayBooking(ctx context.Context, bookingID string) (api.PaymentResult, error)
	SendMessage(ctx context.Context, msg api.OutgoingMessage) (api.MessageResult, error)
	Inbox(ctx context.Context, userID int) ([]domain.Message, error)
}

// Loop runs blocking work away from the UI goroutine. The function that
// work returns is the continuation; the loop runs it back on the UI
// goroutine, which is the only place component state changes and events
// are published.
type Loop interface {
	Go(work func(ctx context.Context) func())
}

// ImmediateLoop runs work and its continuation inline on the caller's goroutine
type ImmediateLoop struct {
	Ctx context.Context
}

func (l ImmediateLoop) Go(work func(ctx context.Context) func()) {
	ctx := l.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if cont := work(ctx); cont != nil {
		cont()
	}
}

// Deps are the collaborators handed to every component at construction
type Deps struct {
	Mediator *mediator.Mediator
	API      Marketplace
	Loop     Loop
	Forms    Forms
	Tokens   session.Store
	Logger   *slog.Logger
	Now      func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Loop == nil {
		d.Loop = ImmediateLoop{}
	}
	return d
}

// notify publishes a notification event
func (d Deps) notify(severity domain.Severity, message string) {
	d.Mediator.Notify(domain.Notification{Severity: severity, Message: message})
}

// resetForm clears a form, logging when no form binding was injected
func (d Deps) resetForm(logger *slog.Logger, form FormID) {
	if d.Forms == nil {
		logger.Warn("form binding missing; cannot reset", "form", string(form))
		return
	}
	d.Forms.Reset(form)
}

// failureText picks what the user sees for a failed call: the server's
// error field, fallback when the server gave none, or network for
// transport failures.
func failureText(err error, fallback, network string) string {
	if apiErr, ok := api.AsError(err); ok {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	return network
}
