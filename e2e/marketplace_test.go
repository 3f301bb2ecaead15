//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

const testToken = "e2e-token"

// fakeMarketplace serves the subset of the DriveShare API the TUI talks to
type fakeMarketplace struct {
	mu       sync.Mutex
	cars     []map[string]any
	bookings []map[string]any
	paid     []string
}

func startMarketplace(t *testing.T) (*fakeMarketplace, *httptest.Server) {
	t.Helper()
	m := &fakeMarketplace{
		cars: []map[string]any{
			{"id": 1, "make": "Toyota", "model": "Corolla", "year": 2020, "price_per_day": 30, "location": "Denver", "available": true},
			{"id": 2, "make": "Honda", "model": "Civic", "year": 2019, "price_per_day": 28.5, "location": "Boulder", "available": true},
		},
	}
	srv := httptest.NewServer(m.router())
	t.Cleanup(srv.Close)
	return m, srv
}

func (m *fakeMarketplace) router() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(req.Body).Decode(&creds)
		if creds.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"access_token": testToken, "user_id": 7})
	})
	r.Get("/cars", func(w http.ResponseWriter, req *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		writeJSON(w, http.StatusOK, m.cars)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireToken)
		r.Get("/user/info", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"id": 7, "username": "ann", "email": "ann@example.com"})
		})
		r.Post("/bookings", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				CarID     string `json:"car_id"`
				StartDate string `json:"start_date"`
				EndDate   string `json:"end_date"`
			}
			_ = json.NewDecoder(req.Body).Decode(&body)
			carID, err := strconv.Atoi(body.CarID)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid car id"})
				return
			}
			m.mu.Lock()
			id := len(m.bookings) + 41
			m.bookings = append(m.bookings, map[string]any{
				"id": id, "car_id": carID, "user_id": 7,
				"start_date": body.StartDate, "end_date": body.EndDate, "status": "pending",
			})
			m.mu.Unlock()
			writeJSON(w, http.StatusCreated, map[string]any{"booking_id": id, "message": "Booking created"})
		})
		r.Get("/mybookings", func(w http.ResponseWriter, req *http.Request) {
			m.mu.Lock()
			defer m.mu.Unlock()
			writeJSON(w, http.StatusOK, m.bookings)
		})
		r.Post("/bookings/{id}/pay", func(w http.ResponseWriter, req *http.Request) {
			m.mu.Lock()
			m.paid = append(m.paid, chi.URLParam(req, "id"))
			m.mu.Unlock()
			writeJSON(w, http.StatusOK, map[string]any{"message": "Payment completed", "new_balance": 70})
		})
		r.Get("/users/{id}/messages", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "sender_email": "host@example.com", "content": "Keys are in the lockbox", "timestamp": "2025-01-01T09:00:00"},
			})
		})
	})
	return r
}

func (m *fakeMarketplace) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

func requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Missing Authorization Header"})
			return
		}
		next.ServeHTTP(w, req)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
