package components

import (
	"fmt"
	"time"

	"driveshare/internal/domain"
	"driveshare/internal/mediator"
)

// DefaultToastTTL is how long a notification stays on screen
const DefaultToastTTL = 5 * time.Second

// Toast is one on-screen notification
type Toast struct {
	Severity  domain.Severity
	Message   string
	ExpiresAt time.Time
}

// Notification shows transient messages for booking, payment and
// general notification events
type Notification struct {
	deps   Deps
	ttl    time.Duration
	toasts []Toast
}

// NewNotification creates and registers the notification component.
// A ttl of zero uses DefaultToastTTL.
func NewNotification(d Deps, ttl time.Duration) *Notification {
	d = d.withDefaults()
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	n := &Notification{deps: d, ttl: ttl}
	d.Mediator.RegisterComponent(NameNotification, n)

	mediator.Handle(d.Mediator, func(e domain.BookingCreated) {
		n.Show(domain.SeveritySuccess, fmt.Sprintf("Booking created successfully! Booking ID: %d", e.BookingID))
	})
	mediator.Handle(d.Mediator, func(e domain.BookingError) {
		n.Show(domain.SeverityError, "Booking error: "+e.Message)
	})
	mediator.Handle(d.Mediator, func(domain.PaymentCompleted) {
		n.Show(domain.SeveritySuccess, "Payment completed successfully!")
	})
	mediator.Handle(d.Mediator, func(e domain.PaymentError) {
		n.Show(domain.SeverityError, "Payment error: "+e.Message)
	})
	mediator.Handle(d.Mediator, func(e domain.Notification) {
		n.Show(e.Severity, e.Message)
	})
	return n
}

// Show adds a toast
func (n *Notification) Show(severity domain.Severity, message string) {
	n.toasts = append(n.toasts, Toast{
		Severity:  severity,
		Message:   message,
		ExpiresAt: n.deps.Now().Add(n.ttl),
	})
}

// Prune drops toasts that expired before now and reports whether any went
func (n *Notification) Prune(now time.Time) bool {
	kept := n.toasts[:0]
	for _, t := range n.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(n.toasts)
	n.toasts = kept
	return removed
}

// Toasts returns the visible toasts, oldest first
func (n *Notification) Toasts() []Toast {
	out := make([]Toast, len(n.toasts))
	copy(out, n.toasts)
	return out
}
