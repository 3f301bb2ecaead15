package components

import (
	"context"
	"log/slog"

	"driveshare/internal/domain"
	"driveshare/internal/mediator"
)

// NoMessagesText is shown when the inbox is empty
const NoMessagesText = "No inbound messages yet."

// InboxState holds the inbound messages of the current user
type InboxState struct {
	UserID   int
	Messages []domain.Message
	Loaded   bool
}

// Inbox lists messages sent to the current user
type Inbox struct {
	deps   Deps
	logger *slog.Logger
	state  InboxState
	// session is bumped on logout; fetches started before it are discarded
	session int
}

// NewInbox creates and registers the inbox component
func NewInbox(d Deps) *Inbox {
	d = d.withDefaults()
	in := &Inbox{deps: d, logger: d.Logger.With("component", NameInbox)}
	d.Mediator.RegisterComponent(NameInbox, in)

	mediator.Handle(d.Mediator, func(e domain.UserInfoLoaded) {
		in.state.UserID = e.Info.ID
	})
	mediator.Handle(d.Mediator, func(e domain.TabChanged) {
		if e.Tab == domain.TabMessages {
			in.Fetch()
		}
	})
	mediator.Handle(d.Mediator, func(domain.UserLoggedOut) {
		in.state = InboxState{}
		in.session++
	})
	return in
}

// State returns a copy of the inbox state
func (in *Inbox) State() InboxState {
	msgs := make([]domain.Message, len(in.state.Messages))
	copy(msgs, in.state.Messages)
	return InboxState{UserID: in.state.UserID, Messages: msgs, Loaded: in.state.Loaded}
}

// Fetch loads the inbox. Nothing is requested until the user id is known.
func (in *Inbox) Fetch() {
	userID := in.state.UserID
	if userID == 0 {
		in.logger.Warn("no current user id; can't fetch messages yet")
		return
	}

	session := in.session
	in.deps.Loop.Go(func(ctx context.Context) func() {
		msgs, err := in.deps.API.Inbox(ctx, userID)
		return func() {
			if session != in.session || userID != in.state.UserID {
				in.logger.Debug("dropping messages of a previous session", "user_id", userID)
				return
			}
			if err != nil {
				in.logger.Error("failed to fetch messages", "user_id", userID, "error", err)
				return
			}
			in.logger.Debug("fetched inbound messages", "count", len(msgs))
			in.state.Messages = msgs
			in.state.Loaded = true
		}
	})
}
