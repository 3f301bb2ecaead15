package components

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"driveshare/internal/api"
	"driveshare/internal/domain"
	"driveshare/internal/mediator"
	"driveshare/internal/session"
)

var errNetwork = errors.New("dial tcp: connection refused")

// fakeMarketplace answers with canned functions and counts calls
type fakeMarketplace struct {
	mu    sync.Mutex
	calls map[string]int

	login         func(api.Credentials) (api.LoginResult, error)
	register      func(api.Registration) (api.MessageResult, error)
	userInfo      func() (domain.UserInfo, error)
	searchCars    func(location string) ([]domain.Car, error)
	listCar       func(api.NewCar) (api.MessageResult, error)
	createBooking func(api.BookingRequest) (api.BookingResult, error)
	myBookings    func() ([]domain.Booking, error)
	payBooking    func(id string) (api.PaymentResult, error)
	sendMessage   func(api.OutgoingMessage) (api.MessageResult, error)
	inbox         func(userID int) ([]domain.Message, error)
}

func (f *fakeMarketplace) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

func (f *fakeMarketplace) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeMarketplace) Login(_ context.Context, c api.Credentials) (api.LoginResult, error) {
	f.count("login")
	return f.login(c)
}

func (f *fakeMarketplace) Register(_ context.Context, r api.Registration) (api.MessageResult, error) {
	f.count("register")
	return f.register(r)
}

func (f *fakeMarketplace) UserInfo(context.Context) (domain.UserInfo, error) {
	f.count("userInfo")
	return f.userInfo()
}

func (f *fakeMarketplace) SearchCars(_ context.Context, location string) ([]domain.Car, error) {
	f.count("searchCars")
	return f.searchCars(location)
}

func (f *fakeMarketplace) ListCar(_ context.Context, car api.NewCar) (api.MessageResult, error) {
	f.count("listCar")
	return f.listCar(car)
}

func (f *fakeMarketplace) CreateBooking(_ context.Context, req api.BookingRequest) (api.BookingResult, error) {
	f.count("createBooking")
	return f.createBooking(req)
}

func (f *fakeMarketplace) MyBookings(context.Context) ([]domain.Booking, error) {
	f.count("myBookings")
	return f.myBookings()
}

func (f *fakeMarketplace) PayBooking(_ context.Context, id string) (api.PaymentResult, error) {
	f.count("payBooking")
	return f.payBooking(id)
}

func (f *fakeMarketplace) SendMessage(_ context.Context, msg api.OutgoingMessage) (api.MessageResult, error) {
	f.count("sendMessage")
	return f.sendMessage(msg)
}

func (f *fakeMarketplace) Inbox(_ context.Context, userID int) ([]domain.Message, error) {
	f.count("inbox")
	return f.inbox(userID)
}

// harness wires a mediator, fake marketplace and recorder together
type harness struct {
	med    *mediator.Mediator
	api    *fakeMarketplace
	forms  *MemoryForms
	tokens *session.MemoryStore
	logs   *bytes.Buffer
	events []domain.Event
	now    time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := &harness{
		med:    mediator.New(mediator.WithLogger(logger)),
		api:    &fakeMarketplace{},
		forms:  NewMemoryForms(),
		tokens: session.NewMemoryStore(""),
		logs:   logs,
		now:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, et := range domain.EventTypes() {
		h.med.On(et, func(e domain.Event) { h.events = append(h.events, e) })
	}
	return h
}

func (h *harness) deps() Deps {
	return Deps{
		Mediator: h.med,
		API:      h.api,
		Loop:     ImmediateLoop{},
		Forms:    h.forms,
		Tokens:   h.tokens,
		Logger:   slog.New(slog.NewTextHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Now:      func() time.Time { return h.now },
	}
}

// of returns the recorded events of type et
func (h *harness) of(et domain.EventType) []domain.Event {
	var out []domain.Event
	for _, e := range h.events {
		if e.Type() == et {
			out = append(out, e)
		}
	}
	return out
}

func (h *harness) types() []domain.EventType {
	out := make([]domain.EventType, 0, len(h.events))
	for _, e := range h.events {
		out = append(out, e.Type())
	}
	return out
}

// heldLoop runs work inline but keeps continuations until release is called,
// standing in for responses that arrive later
type heldLoop struct {
	held []func()
}

func (l *heldLoop) Go(work func(ctx context.Context) func()) {
	if cont := work(context.Background()); cont != nil {
		l.held = append(l.held, cont)
	}
}

func (l *heldLoop) release() {
	held := l.held
	l.held = nil
	for _, cont := range held {
		cont()
	}
}
