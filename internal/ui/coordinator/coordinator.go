package coordinator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"driveshare/internal/api"
	"driveshare/internal/components"
	"driveshare/internal/domain"
	"driveshare/internal/mediator"
	"driveshare/internal/session"
)

// Options are the collaborators shared by every component
type Options struct {
	API             components.Marketplace
	Tokens          session.Store
	Forms           components.Forms
	Loop            components.Loop
	Logger          *slog.Logger
	NotificationTTL time.Duration
	Now             func() time.Time
}

// Coordinator owns the session's mediator and all UI components
type Coordinator struct {
	Mediator *mediator.Mediator

	// Components
	Navigation     *components.Navigation
	Auth           *components.Auth
	CarSearch      *components.CarSearch
	Booking        *components.Booking
	Notification   *components.Notification
	Payment        *components.Payment
	CarListing     *components.CarListing
	MyBookings     *components.MyBookings
	Messaging      *components.Messaging
	Inbox          *components.Inbox
	ProfileDisplay *components.ProfileDisplay

	deps   components.Deps
	logger *slog.Logger
}

// New creates the mediator and every component
func New(opts Options) *Coordinator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	med := mediator.New(mediator.WithLogger(logger))

	d := components.Deps{
		Mediator: med,
		API:      opts.API,
		Loop:     opts.Loop,
		Forms:    opts.Forms,
		Tokens:   opts.Tokens,
		Logger:   logger,
		Now:      now,
	}
	if d.Loop == nil {
		d.Loop = components.ImmediateLoop{}
	}

	c := &Coordinator{
		Mediator: med,
		deps:     d,
		logger:   logger,
	}

	// Same order as the page used to build them
	c.Navigation = components.NewNavigation(d)
	c.Auth = components.NewAuth(d)
	c.CarSearch = components.NewCarSearch(d)
	c.Booking = components.NewBooking(d)
	c.Notification = components.NewNotification(d, opts.NotificationTTL)
	c.Payment = components.NewPayment(d)
	c.CarListing = components.NewCarListing(d)
	c.MyBookings = components.NewMyBookings(d)
	c.Messaging = components.NewMessaging(d)
	c.Inbox = components.NewInbox(d)
	c.ProfileDisplay = components.NewProfileDisplay(d)

	c.subscribeToEvents()

	return c
}

// subscribeToEvents sets up the session level handlers
func (c *Coordinator) subscribeToEvents() {
	// A fresh login knows the user id but not the profile; load it
	mediator.Handle(c.Mediator, func(domain.UserLoggedIn) {
		c.LoadUserInfo()
	})
}

// Start restores a stored session, if any
func (c *Coordinator) Start() {
	if token, ok := c.deps.Tokens.Token(); ok {
		if session.Expired(token, c.deps.Now()) {
			c.logger.Info("stored token expired; dropping it")
			c.expire()
		} else {
			c.LoadUserInfo()
		}
	}
	c.logger.Info("DriveShare UI initialized.")
}

// LoadUserInfo fetches the profile behind the stored token and announces it
func (c *Coordinator) LoadUserInfo() {
	if _, err := session.Require(c.deps.Tokens); err != nil {
		c.logger.Debug("skipping user info", "error", err)
		return
	}

	c.deps.Loop.Go(func(ctx context.Context) func() {
		info, err := c.deps.API.UserInfo(ctx)
		return func() {
			var apiErr *api.Error
			switch {
			case errors.As(err, &apiErr):
				c.logger.Warn("stored token rejected", "status", apiErr.Status)
				c.expire()
			case err != nil:
				c.logger.Error("failed to load user info", "error", err)
			default:
				c.Mediator.Notify(domain.UserInfoLoaded{Info: info})
			}
		}
	})
}

// expire drops the stored token through the auth component
func (c *Coordinator) expire() {
	type expirer interface{ Expire() }
	if comp, ok := c.Mediator.GetComponent(components.NameAuth); ok {
		if auth, ok := comp.(expirer); ok {
			auth.Expire()
			return
		}
	}
	if err := c.deps.Tokens.Clear(); err != nil {
		c.logger.Error("failed to clear token", "error", err)
	}
}

// Tick prunes expired notifications and reports whether any went away
func (c *Coordinator) Tick(now time.Time) bool {
	return c.Notification.Prune(now)
}
