package components

import (
	"context"
	"log/slog"

	"driveshare/internal/api"
	"driveshare/internal/domain"
	"driveshare/internal/mediator"
)

// BookingState tracks the booking dialog
type BookingState struct {
	ModalOpen bool
	CarID     string
}

// Booking turns booking requests into bookings
type Booking struct {
	deps   Deps
	logger *slog.Logger
	state  BookingState
}

// NewBooking creates and registers the booking component
func NewBooking(d Deps) *Booking {
	d = d.withDefaults()
	b := &Booking{deps: d, logger: d.Logger.With("component", NameBooking)}
	d.Mediator.RegisterComponent(NameBooking, b)

	mediator.Handle(d.Mediator, func(e domain.BookingRequested) {
		b.ShowForm(e.CarID)
	})
	return b
}

// State returns a copy of the booking state
func (b *Booking) State() BookingState {
	return b.state
}

// ShowForm opens the booking dialog for carID
func (b *Booking) ShowForm(carID string) {
	b.state.ModalOpen = true
	b.state.CarID = carID
	if b.deps.Forms == nil {
		b.logger.Warn("form binding missing; car id not filled in", "car_id", carID)
		return
	}
	b.deps.Forms.SetValue(FormBooking, FieldCarID, carID)
}

// CloseForm closes the booking dialog
func (b *Booking) CloseForm() {
	b.state.ModalOpen = false
}

// Submit sends the booking form
func (b *Booking) Submit(req api.BookingRequest) {
	b.deps.Loop.Go(func(ctx context.Context) func() {
		res, err := b.deps.API.CreateBooking(ctx, req)
		return func() {
			if err != nil {
				b.logger.Info("booking failed", "car_id", req.CarID, "error", err)
				b.deps.Mediator.Notify(domain.BookingError{
					Message: failureText(err, "Booking failed", networkRetryText),
				})
				return
			}
			b.deps.Mediator.Notify(domain.BookingCreated{BookingID: res.BookingID, Message: res.Message})
			b.CloseForm()
		}
	})
}
