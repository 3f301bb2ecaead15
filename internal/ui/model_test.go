package ui

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driveshare/internal/api"
	"driveshare/internal/components"
	"driveshare/internal/domain"
	"driveshare/internal/session"
	inputtypes "driveshare/internal/ui/input/types"
)

// fakeAPI is an in-memory marketplace
type fakeAPI struct {
	cars     []domain.Car
	bookings []domain.Booking

	logins    []api.Credentials
	searches  []string
	booked    []api.BookingRequest
	paid      []string
	sent      []api.OutgoingMessage
	listed    []api.NewCar
	loginFail bool
}

func (f *fakeAPI) Login(_ context.Context, creds api.Credentials) (api.LoginResult, error) {
	f.logins = append(f.logins, creds)
	if f.loginFail {
		return api.LoginResult{}, &api.Error{Status: 401, Message: "Invalid email or password"}
	}
	return api.LoginResult{AccessToken: "tok", UserID: 7}, nil
}

func (f *fakeAPI) Register(context.Context, api.Registration) (api.MessageResult, error) {
	return api.MessageResult{Message: "User registered successfully"}, nil
}

func (f *fakeAPI) UserInfo(context.Context) (domain.UserInfo, error) {
	return domain.UserInfo{ID: 7, Username: "ann", Email: "ann@example.com"}, nil
}

func (f *fakeAPI) SearchCars(_ context.Context, location string) ([]domain.Car, error) {
	f.searches = append(f.searches, location)
	return f.cars, nil
}

func (f *fakeAPI) ListCar(_ context.Context, car api.NewCar) (api.MessageResult, error) {
	f.listed = append(f.listed, car)
	return api.MessageResult{Message: "Car listed successfully!"}, nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, req api.BookingRequest) (api.BookingResult, error) {
	f.booked = append(f.booked, req)
	return api.BookingResult{BookingID: 12, Message: "Booking created"}, nil
}

func (f *fakeAPI) MyBookings(context.Context) ([]domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeAPI) PayBooking(_ context.Context, id string) (api.PaymentResult, error) {
	f.paid = append(f.paid, id)
	return api.PaymentResult{Message: "Payment successful", NewBalance: 80}, nil
}

func (f *fakeAPI) SendMessage(_ context.Context, msg api.OutgoingMessage) (api.MessageResult, error) {
	f.sent = append(f.sent, msg)
	return api.MessageResult{Message: "Message sent successfully"}, nil
}

func (f *fakeAPI) Inbox(context.Context, int) ([]domain.Message, error) {
	return []domain.Message{{ID: 1, SenderEmail: "host@x.io", Content: "Keys are under the mat", Timestamp: "2025-01-01T09:00:00"}}, nil
}

func newTestModel(t *testing.T, fake *fakeAPI, token string) (*Model, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	m := NewModel(context.Background(), Options{
		API:    fake,
		Tokens: session.NewMemoryStore(token),
		Logger: slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Loop:   components.ImmediateLoop{},
	})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, logs
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func screen(m *Model) string {
	return ansi.Strip(m.View())
}

func TestLoginThroughModal(t *testing.T) {
	fake := &fakeAPI{}
	m, _ := newTestModel(t, fake, "")

	assert.NotContains(t, screen(m), "Profile")

	press(m, "L")
	require.Equal(t, components.FormLogin, m.activeForm())
	assert.Equal(t, inputtypes.ModeForm, m.inputHandler.CurrentMode())
	assert.Contains(t, screen(m), "Login")

	press(m, "ann@example.com", "tab", "secret", "enter")

	require.Len(t, fake.logins, 1)
	assert.Equal(t, api.Credentials{Email: "ann@example.com", Password: "secret"}, fake.logins[0])
	assert.Empty(t, m.activeForm())
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())

	out := screen(m)
	assert.Contains(t, out, "Login successful!")
	assert.Contains(t, out, "Profile")
	assert.NotContains(t, out, "secret", "passwords are masked")

	press(m, "4")
	assert.Equal(t, domain.TabProfile, m.coord.Navigation.State().Active)
	assert.Contains(t, screen(m), "ann@example.com")
}

func TestEscapeClosesModal(t *testing.T) {
	m, _ := newTestModel(t, &fakeAPI{}, "")

	press(m, "R")
	require.Equal(t, components.FormRegister, m.activeForm())

	press(m, "q", "esc")
	assert.Empty(t, m.activeForm())
	assert.Equal(t, components.ModalNone, m.coord.Auth.State().Modal)
	assert.Equal(t, "q", m.forms.Value(components.FormRegister, components.FieldUsername), "q was typed, not quit")
}

func TestSearchAndBook(t *testing.T) {
	fake := &fakeAPI{cars: []domain.Car{
		{ID: 1, Make: "Toyota", Model: "Corolla", Year: 2020, PricePerDay: 30, Location: "NYC"},
		{ID: 2, Make: "Honda", Model: "Civic", Year: 2019, PricePerDay: 42.5, Location: "NYC"},
	}}
	m, _ := newTestModel(t, fake, "tok")

	press(m, "/", "NYC", "enter")
	assert.Equal(t, []string{"NYC"}, fake.searches)

	out := screen(m)
	assert.Contains(t, out, "Toyota Corolla (2020)")
	assert.Contains(t, out, "$42.5 per day")
	assert.Contains(t, out, components.BookNowLabel)

	press(m, "down", "enter")
	require.Equal(t, components.FormBooking, m.activeForm())
	assert.Contains(t, screen(m), "Book car #2")

	press(m, "2025-07-01", "tab", "2025-07-03", "enter")
	require.Len(t, fake.booked, 1)
	assert.Equal(t, api.BookingRequest{CarID: "2", StartDate: "2025-07-01", EndDate: "2025-07-03"}, fake.booked[0])
	assert.Empty(t, m.activeForm())
	assert.Contains(t, screen(m), "Booking created successfully! Booking ID: 12")
}

func TestPayFromBookingsTab(t *testing.T) {
	fake := &fakeAPI{bookings: []domain.Booking{{ID: 4, CarID: 1, StartDate: "2025-07-01", EndDate: "2025-07-03", Status: "pending"}}}
	m, _ := newTestModel(t, fake, "tok")

	press(m, "2")
	assert.Contains(t, screen(m), "Booking #4")

	press(m, "p")
	assert.Equal(t, []string{"4"}, fake.paid)
	assert.Contains(t, screen(m), "Payment completed successfully!")
}

func TestComposeMessage(t *testing.T) {
	fake := &fakeAPI{}
	m, _ := newTestModel(t, fake, "tok")

	press(m, "3")
	assert.Contains(t, screen(m), "Keys are under the mat")

	press(m, "c", "host@x.io", "tab", "See you at noon", "enter")
	assert.Equal(t, []api.OutgoingMessage{{ReceiverEmail: "host@x.io", Content: "See you at noon"}}, fake.sent)
	assert.Empty(t, m.forms.Value(components.FormMessage, components.FieldContent))
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
}

func TestListCar(t *testing.T) {
	fake := &fakeAPI{}
	m, _ := newTestModel(t, fake, "tok")

	press(m, "a", "Honda", "tab", "Civic", "tab", "2019", "tab", "42.5", "tab", "LA", "enter")

	assert.Equal(t, []api.NewCar{{Make: "Honda", Model: "Civic", Year: 2019, PricePerDay: 42.5, Location: "LA"}}, fake.listed)
	assert.Empty(t, m.activeForm())
	assert.Len(t, fake.searches, 1, "listing a car refreshes the results")
}

func TestLogoutLeavesProfileTab(t *testing.T) {
	m, _ := newTestModel(t, &fakeAPI{}, "tok")

	press(m, "4")
	require.Equal(t, domain.TabProfile, m.coord.Navigation.State().Active)

	press(m, "o")
	assert.False(t, m.coord.Auth.State().LoggedIn)
	assert.Equal(t, domain.TabSearch, m.coord.Navigation.State().Active)
	assert.Contains(t, screen(m), "Logged out successfully")
}

func TestCycleTabsSkipsHiddenProfile(t *testing.T) {
	m, _ := newTestModel(t, &fakeAPI{}, "")

	press(m, "h")
	assert.Equal(t, domain.TabMessages, m.coord.Navigation.State().Active)
	press(m, "l")
	assert.Equal(t, domain.TabSearch, m.coord.Navigation.State().Active)
}

func TestPagerWithoutProgramNotifies(t *testing.T) {
	m, logs := newTestModel(t, &fakeAPI{}, "")

	cmd := m.showInPager("help", "content")
	m.Update(cmd())

	assert.Contains(t, screen(m), "Could not open the pager.")
	assert.Contains(t, logs.String(), "pager failed")
}

func TestPagerPausesRendering(t *testing.T) {
	m, _ := newTestModel(t, &fakeAPI{}, "")

	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd, "ticks stop while the pager runs")

	m.Update(resumeRenderingMsg{})
	assert.Contains(t, screen(m), "DriveShare")
}

func TestTeaLoopDeliversContinuations(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loop := NewTeaLoop(ctx)

	var ran []string
	loop.Go(func(context.Context) func() {
		return func() { ran = append(ran, "done") }
	})

	msg := loop.Wait()()
	resume, ok := msg.(resumeMsg)
	require.True(t, ok)
	assert.Empty(t, ran, "continuations only run on the update goroutine")
	assert.Equal(t, 1, loop.Pending())

	loop.run(resume)
	assert.Equal(t, []string{"done"}, ran)
	assert.Zero(t, loop.Pending())
}

func TestTeaLoopStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewTeaLoop(ctx)
	cancel()

	assert.Nil(t, loop.Wait()())
}

func TestFormSet(t *testing.T) {
	fs := newFormSet()

	fs.SetValue(components.FormBooking, components.FieldCarID, "9")
	fs.SetValue(components.FormBooking, components.FieldStartDate, "2025-07-01")
	assert.Equal(t, map[string]string{
		components.FieldCarID:     "9",
		components.FieldStartDate: "2025-07-01",
		components.FieldEndDate:   "",
	}, fs.Values(components.FormBooking))

	fs.Move(components.FormBooking, -1)
	assert.Equal(t, components.FieldEndDate, fs.FocusedField(components.FormBooking), "focus wraps")

	fs.Reset(components.FormBooking)
	assert.Empty(t, fs.Value(components.FormBooking, components.FieldCarID))
	assert.Empty(t, fs.Value(components.FormBooking, components.FieldStartDate))
	assert.Equal(t, components.FieldStartDate, fs.FocusedField(components.FormBooking))
}

func TestRenderInbox(t *testing.T) {
	assert.Equal(t, components.NoMessagesText+"\n", RenderInbox(components.InboxState{}))

	out := RenderInbox(components.InboxState{Messages: []domain.Message{{SenderEmail: "host@x.io", Content: "Hi", Timestamp: "garbage"}}})
	assert.Contains(t, out, "From: host@x.io")
	assert.Contains(t, out, "At:   garbage")
}

func TestHelpContentListsBindings(t *testing.T) {
	out := ansi.Strip(NewHelpRenderer(newKeyMap()).RenderHelpContent())
	for _, want := range []string{"DriveShare Help", "search cars", "pay booking", "logout", "next field"} {
		assert.Contains(t, out, want)
	}
}
