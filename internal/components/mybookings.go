package components

import (
	"context"
	"log/slog"
	"strconv"

	"driveshare/internal/domain"
	"driveshare/internal/mediator"
)

// NoBookingsText is shown when the user has no bookings
const NoBookingsText = "You have no bookings yet."

// MyBookingsState holds the user's bookings
type MyBookingsState struct {
	Bookings []domain.Booking
	Loaded   bool
}

// MyBookings lists the current user's bookings
type MyBookings struct {
	deps   Deps
	logger *slog.Logger
	state  MyBookingsState
	// session is bumped on logout; fetches started before it are discarded
	session int
}

// NewMyBookings creates and registers the bookings list component
func NewMyBookings(d Deps) *MyBookings {
	d = d.withDefaults()
	m := &MyBookings{deps: d, logger: d.Logger.With("component", NameMyBookings)}
	d.Mediator.RegisterComponent(NameMyBookings, m)

	mediator.Handle(d.Mediator, func(e domain.TabChanged) {
		if e.Tab == domain.TabBookings {
			m.Fetch()
		}
	})
	mediator.Handle(d.Mediator, func(domain.UserLoggedOut) {
		m.state = MyBookingsState{}
		m.session++
	})
	return m
}

// State returns a copy of the bookings state
func (m *MyBookings) State() MyBookingsState {
	bookings := make([]domain.Booking, len(m.state.Bookings))
	copy(bookings, m.state.Bookings)
	return MyBookingsState{Bookings: bookings, Loaded: m.state.Loaded}
}

// Fetch loads the bookings
func (m *MyBookings) Fetch() {
	session := m.session
	m.deps.Loop.Go(func(ctx context.Context) func() {
		bookings, err := m.deps.API.MyBookings(ctx)
		return func() {
			if session != m.session {
				m.logger.Debug("dropping bookings of a previous session")
				return
			}
			if err != nil {
				m.logger.Error("failed to fetch my bookings", "error", err)
				return
			}
			m.logger.Debug("fetched my bookings", "count", len(bookings))
			m.state.Bookings = bookings
			m.state.Loaded = true
		}
	})
}

// Pay asks for a booking to be paid
func (m *MyBookings) Pay(bookingID int) {
	m.deps.Mediator.Notify(domain.PaymentRequested{BookingID: strconv.Itoa(bookingID)})
}
