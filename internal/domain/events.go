package domain

// EventType represents the name of a UI event
type EventType string

// Event types
const (
	EventTabChanged         EventType = "tabChanged"
	EventUserLoggedIn       EventType = "userLoggedIn"
	EventUserLoggedOut      EventType = "userLoggedOut"
	EventNotification       EventType = "notification"
	EventCarSearchSubmitted EventType = "carSearchSubmitted"
	EventBookingRequested   EventType = "bookingRequested"
	EventBookingCreated     EventType = "bookingCreated"
	EventBookingError       EventType = "bookingError"
	EventPaymentRequested   EventType = "paymentRequested"
	EventPaymentCompleted   EventType = "paymentCompleted"
	EventPaymentError       EventType = "paymentError"
	EventCarListingCreated  EventType = "carListingCreated"
	EventUserInfoLoaded     EventType = "userInfoLoaded"
)

// EventTypes returns every event type in declaration order
func EventTypes() []EventType {
	return []EventType{
		EventTabChanged,
		EventUserLoggedIn,
		EventUserLoggedOut,
		EventNotification,
		EventCarSearchSubmitted,
		EventBookingRequested,
		EventBookingCreated,
		EventBookingError,
		EventPaymentRequested,
		EventPaymentCompleted,
		EventPaymentError,
		EventCarListingCreated,
		EventUserInfoLoaded,
	}
}

// Event is the interface for all UI events.
// The set is closed: only types declared in this package implement it.
type Event interface {
	Type() EventType
	event()
}

// TabChanged is emitted when the user switches navigation tabs
type TabChanged struct {
	Tab Tab
}

func (TabChanged) Type() EventType { return EventTabChanged }
func (TabChanged) event()          {}

// UserLoggedIn is emitted after a successful login
type UserLoggedIn struct {
	UserID int
}

func (UserLoggedIn) Type() EventType { return EventUserLoggedIn }
func (UserLoggedIn) event()          {}

// UserLoggedOut is emitted when the stored credential is dropped
type UserLoggedOut struct{}

func (UserLoggedOut) Type() EventType { return EventUserLoggedOut }
func (UserLoggedOut) event()          {}

// Notification carries a user facing message
type Notification struct {
	Severity Severity
	Message  string
}

func (Notification) Type() EventType { return EventNotification }
func (Notification) event()          {}

// CarSearchSubmitted is emitted when the search form is submitted
type CarSearchSubmitted struct {
	Location  string
	StartDate string
	EndDate   string
}

func (CarSearchSubmitted) Type() EventType { return EventCarSearchSubmitted }
func (CarSearchSubmitted) event()          {}

// BookingRequested is emitted when "Book Now" is pressed on a search result
type BookingRequested struct {
	CarID string
}

func (BookingRequested) Type() EventType { return EventBookingRequested }
func (BookingRequested) event()          {}

// BookingCreated is emitted when the server accepted a booking
type BookingCreated struct {
	BookingID int
	Message   string
}

func (BookingCreated) Type() EventType { return EventBookingCreated }
func (BookingCreated) event()          {}

// BookingError is emitted when a booking could not be created
type BookingError struct {
	Message string
}

func (BookingError) Type() EventType { return EventBookingError }
func (BookingError) event()          {}

// PaymentRequested asks the payment component to pay for a booking
type PaymentRequested struct {
	BookingID string
}

func (PaymentRequested) Type() EventType { return EventPaymentRequested }
func (PaymentRequested) event()          {}

// PaymentCompleted is emitted when a payment went through
type PaymentCompleted struct {
	Message    string
	NewBalance float64
}

func (PaymentCompleted) Type() EventType { return EventPaymentCompleted }
func (PaymentCompleted) event()          {}

// PaymentError is emitted when a payment failed
type PaymentError struct {
	Message string
}

func (PaymentError) Type() EventType { return EventPaymentError }
func (PaymentError) event()          {}

// CarListingCreated is emitted after a new car was listed
type CarListingCreated struct{}

func (CarListingCreated) Type() EventType { return EventCarListingCreated }
func (CarListingCreated) event()          {}

// UserInfoLoaded is emitted once the current user's profile is known
type UserInfoLoaded struct {
	Info UserInfo
}

func (UserInfoLoaded) Type() EventType { return EventUserInfoLoaded }
func (UserInfoLoaded) event()          {}
