package api

// Credentials is the body of POST /login
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned by a successful login
type LoginResult struct {
	AccessToken string `json:"access_token"`
	UserID      int    `json:"user_id"`
}

// Registration is the body of POST /register
type Registration struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	SecurityQuestion1 string `json:"security_question_1"`
	SecurityAnswer1   string `json:"security_answer_1"`
	SecurityQuestion2 string `json:"security_question_2"`
	SecurityAnswer2   string `json:"security_answer_2"`
	SecurityQuestion3 string `json:"security_question_3"`
	SecurityAnswer3   string `json:"security_answer_3"`
}

// MessageResult is the generic {message} success body
type MessageResult struct {
	Message string `json:"message"`
}

// NewCar is the body of POST /cars
type NewCar struct {
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PricePerDay float64 `json:"price_per_day"`
	Location    string  `json:"location"`
}

// BookingRequest is the body of POST /bookings
type BookingRequest struct {
	CarID     string `json:"car_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// BookingResult is returned by a successful booking
type BookingResult struct {
	BookingID int    `json:"booking_id"`
	Message   string `json:"message"`
}

// PaymentResult is returned by a successful payment
type PaymentResult struct {
	Message    string  `json:"message"`
	NewBalance float64 `json:"new_balance"`
}

// OutgoingMessage is the body of POST /messages
type OutgoingMessage struct {
	ReceiverEmail string `json:"receiver_email"`
	Content       string `json:"content"`
}
