package components

import (
	"context"
	"log/slog"

	"driveshare/internal/api"
	"driveshare/internal/domain"
)

// Messaging sends messages to other users
type Messaging struct {
	deps   Deps
	logger *slog.Logger
}

// NewMessaging creates and registers the messaging component
func NewMessaging(d Deps) *Messaging {
	d = d.withDefaults()
	m := &Messaging{deps: d, logger: d.Logger.With("component", NameMessaging)}
	d.Mediator.RegisterComponent(NameMessaging, m)
	return m
}

// Submit sends the compose form
func (m *Messaging) Submit(msg api.OutgoingMessage) {
	m.deps.Loop.Go(func(ctx context.Context) func() {
		res, err := m.deps.API.SendMessage(ctx, msg)
		return func() {
			if err != nil {
				m.logger.Error("failed to send message", "receiver", msg.ReceiverEmail, "error", err)
				m.deps.notify(domain.SeverityError, failureText(err, "Message send failed", networkMessagingText))
				return
			}
			m.logger.Debug("message sent", "receiver", msg.ReceiverEmail)
			text := res.Message
			if text == "" {
				text = "Message sent successfully"
			}
			m.deps.notify(domain.SeveritySuccess, text)
			m.deps.resetForm(m.logger, FormMessage)
		}
	})
}
