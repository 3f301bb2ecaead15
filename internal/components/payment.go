package components

import (
	"context"
	"log/slog"

	"driveshare/internal/domain"
	"driveshare/internal/mediator"
)

// Payment pays for bookings on request
type Payment struct {
	deps   Deps
	logger *slog.Logger
}

// NewPayment creates and registers the payment component
func NewPayment(d Deps) *Payment {
	d = d.withDefaults()
	p := &Payment{deps: d, logger: d.Logger.With("component", NamePayment)}
	d.Mediator.RegisterComponent(NamePayment, p)

	mediator.Handle(d.Mediator, func(e domain.PaymentRequested) {
		p.Process(e.BookingID)
	})
	return p
}

// Process pays for bookingID
func (p *Payment) Process(bookingID string) {
	p.deps.Loop.Go(func(ctx context.Context) func() {
		res, err := p.deps.API.PayBooking(ctx, bookingID)
		return func() {
			if err != nil {
				p.logger.Info("payment failed", "booking_id", bookingID, "error", err)
				p.deps.Mediator.Notify(domain.PaymentError{
					Message: failureText(err, "Payment failed", networkPaymentText),
				})
				return
			}
			p.deps.Mediator.Notify(domain.PaymentCompleted{Message: res.Message, NewBalance: res.NewBalance})
		}
	})
}
