package components

import (
	"driveshare/internal/domain"
	"driveshare/internal/mediator"
)

// ProfileState is the profile card
type ProfileState struct {
	Username string
	Email    string
}

// ProfileDisplay shows the logged in user's profile
type ProfileDisplay struct {
	state ProfileState
}

// NewProfileDisplay creates and registers the profile component
func NewProfileDisplay(d Deps) *ProfileDisplay {
	d = d.withDefaults()
	p := &ProfileDisplay{}
	d.Mediator.RegisterComponent(NameProfileDisplay, p)

	mediator.Handle(d.Mediator, func(e domain.UserInfoLoaded) {
		p.state = ProfileState{Username: e.Info.Username, Email: e.Info.Email}
	})
	mediator.Handle(d.Mediator, func(domain.UserLoggedOut) {
		p.state = ProfileState{}
	})
	return p
}

// State returns the profile card
func (p *ProfileDisplay) State() ProfileState {
	return p.state
}
