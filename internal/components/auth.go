package components

import (
	"context"
	"log/slog"

	"driveshare/internal/api"
	"driveshare/internal/domain"
)

// Modal identifies which auth dialog is open
type Modal string

const (
	ModalNone     Modal = ""
	ModalLogin    Modal = "login"
	ModalRegister Modal = "register"
)

// AuthState is what the auth component shows
type AuthState struct {
	LoggedIn            bool
	Modal               Modal
	LoginLinkVisible    bool
	RegisterLinkVisible bool
	ProfileTabVisible   bool
}

// Auth handles login, registration and logout
type Auth struct {
	deps   Deps
	logger *slog.Logger
	state  AuthState
}

// NewAuth creates and registers the auth component. The initial logged in
// state follows whether a token is stored.
func NewAuth(d Deps) *Auth {
	d = d.withDefaults()
	a := &Auth{deps: d, logger: d.Logger.With("component", NameAuth)}
	d.Mediator.RegisterComponent(NameAuth, a)

	_, hasToken := d.Tokens.Token()
	a.updateUIState(hasToken)
	return a
}

// State returns a copy of the auth state
func (a *Auth) State() AuthState {
	return a.state
}

// Login submits the login form
func (a *Auth) Login(creds api.Credentials) {
	a.deps.Loop.Go(func(ctx context.Context) func() {
		res, err := a.deps.API.Login(ctx, creds)
		return func() {
			if err != nil {
				a.logger.Info("login failed", "error", err)
				a.deps.notify(domain.SeverityError, failureText(err, "Login failed", networkRetryText))
				return
			}
			if err := a.deps.Tokens.SetToken(res.AccessToken); err != nil {
				a.logger.Error("failed to store token", "error", err)
			}
			a.updateUIState(true)
			a.CloseModals()
			a.deps.Mediator.Notify(domain.UserLoggedIn{UserID: res.UserID})
			a.deps.notify(domain.SeveritySuccess, "Login successful!")
		}
	})
}

// Register submits the registration form
func (a *Auth) Register(reg api.Registration) {
	a.deps.Loop.Go(func(ctx context.Context) func() {
		_, err := a.deps.API.Register(ctx, reg)
		return func() {
			if err != nil {
				a.logger.Info("registration failed", "error", err)
				a.deps.notify(domain.SeverityError, failureText(err, "Registration failed", networkRetryText))
				return
			}
			a.deps.notify(domain.SeveritySuccess, "Registration successful! Please login.")
			a.ShowModal(ModalLogin)
			a.deps.resetForm(a.logger, FormRegister)
		}
	})
}

// Logout drops the stored token
func (a *Auth) Logout() {
	if err := a.deps.Tokens.Clear(); err != nil {
		a.logger.Error("failed to clear token", "error", err)
	}
	a.updateUIState(false)
	a.deps.Mediator.Notify(domain.UserLoggedOut{})
	a.deps.notify(domain.SeveritySuccess, "Logged out successfully")
}

// Expire drops a token the marketplace rejected, without telling the user
func (a *Auth) Expire() {
	if err := a.deps.Tokens.Clear(); err != nil {
		a.logger.Error("failed to clear token", "error", err)
	}
	if !a.state.LoggedIn {
		return
	}
	a.updateUIState(false)
	a.deps.Mediator.Notify(domain.UserLoggedOut{})
}

// ShowModal opens the login or register dialog, closing any other
func (a *Auth) ShowModal(m Modal) {
	a.CloseModals()
	switch m {
	case ModalLogin, ModalRegister:
		a.state.Modal = m
	}
}

// CloseModals closes both auth dialogs
func (a *Auth) CloseModals() {
	a.state.Modal = ModalNone
}

func (a *Auth) updateUIState(loggedIn bool) {
	a.state.LoggedIn = loggedIn
	a.state.LoginLinkVisible = !loggedIn
	a.state.RegisterLinkVisible = !loggedIn
	a.state.ProfileTabVisible = loggedIn
}
