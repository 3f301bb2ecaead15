package components

import "sync"

// FormID names an input form on screen
type FormID string

const (
	FormLogin      FormID = "login"
	FormRegister   FormID = "register"
	FormSearch     FormID = "search"
	FormBooking    FormID = "booking"
	FormCarListing FormID = "carListing"
	FormMessage    FormID = "message"
)

// Form field names. They match the JSON keys the marketplace expects.
const (
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldUsername      = "username"
	FieldQuestion1     = "security_question_1"
	FieldAnswer1       = "security_answer_1"
	FieldQuestion2     = "security_question_2"
	FieldAnswer2       = "security_answer_2"
	FieldQuestion3     = "security_question_3"
	FieldAnswer3       = "security_answer_3"
	FieldLocation      = "location"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldCarID         = "car_id"
	FieldMake          = "make"
	FieldModel         = "model"
	FieldYear          = "year"
	FieldPricePerDay   = "price_per_day"
	FieldReceiverEmail = "receiver_email"
	FieldContent       = "content"
)

// Forms gives components access to the input fields they own
type Forms interface {
	Value(form FormID, field string) string
	SetValue(form FormID, field, value string)
	Reset(form FormID)
}

// MemoryForms is a Forms backed by maps, for headless use and tests
type MemoryForms struct {
	mu     sync.Mutex
	values map[FormID]map[string]string
}

// NewMemoryForms creates an empty form set
func NewMemoryForms() *MemoryForms {
	return &MemoryForms{values: make(map[FormID]map[string]string)}
}

func (f *MemoryForms) Value(form FormID, field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[form][field]
}

func (f *MemoryForms) SetValue(form FormID, field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values[form] == nil {
		f.values[form] = make(map[string]string)
	}
	f.values[form][field] = value
}

func (f *MemoryForms) Reset(form FormID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, form)
}
