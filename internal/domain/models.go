package domain

import "time"

// Severity of a notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Tab identifies a navigation tab and the content section it shows
type Tab string

const (
	TabSearch   Tab = "search"
	TabBookings Tab = "bookings"
	TabMessages Tab = "messages"
	TabProfile  Tab = "profile"
)

// Tabs returns the navigation tabs in display order
func Tabs() []Tab {
	return []Tab{TabSearch, TabBookings, TabMessages, TabProfile}
}

// Car is a listing returned by the marketplace
type Car struct {
	ID          int     `json:"id"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PricePerDay float64 `json:"price_per_day"`
	Location    string  `json:"location"`
	Available   bool    `json:"available"`
}

// Booking is one of the current user's bookings
type Booking struct {
	ID        int    `json:"id"`
	CarID     int    `json:"car_id"`
	UserID    int    `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// Message is an inbound message
type Message struct {
	ID          int    `json:"id"`
	SenderEmail string `json:"sender_email"`
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp"`
}

// Time parses the message timestamp. The server emits ISO-8601, usually without a zone.
func (m Message) Time() (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, m.Timestamp, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UserInfo describes the logged in user
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
