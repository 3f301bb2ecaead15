package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"driveshare/internal/components"
	"driveshare/internal/ui/views"
)

// formField describes one input of a form
type formField struct {
	Key         string
	Label       string
	Placeholder string
	Secret      bool
}

// formLayouts lists every form's fields in display order
var formLayouts = map[components.FormID][]formField{
	components.FormLogin: {
		{Key: components.FieldEmail, Label: "Email"},
		{Key: components.FieldPassword, Label: "Password", Secret: true},
	},
	components.FormRegister: {
		{Key: components.FieldUsername, Label: "Username"},
		{Key: components.FieldEmail, Label: "Email"},
		{Key: components.FieldPassword, Label: "Password", Secret: true},
		{Key: components.FieldQuestion1, Label: "Security question 1"},
		{Key: components.FieldAnswer1, Label: "Answer 1"},
		{Key: components.FieldQuestion2, Label: "Security question 2"},
		{Key: components.FieldAnswer2, Label: "Answer 2"},
		{Key: components.FieldQuestion3, Label: "Security question 3"},
		{Key: components.FieldAnswer3, Label: "Answer 3"},
	},
	components.FormSearch: {
		{Key: components.FieldLocation, Label: "Location", Placeholder: "any"},
		{Key: components.FieldStartDate, Label: "Start date", Placeholder: "YYYY-MM-DD"},
		{Key: components.FieldEndDate, Label: "End date", Placeholder: "YYYY-MM-DD"},
	},
	components.FormBooking: {
		{Key: components.FieldStartDate, Label: "Start date", Placeholder: "YYYY-MM-DD"},
		{Key: components.FieldEndDate, Label: "End date", Placeholder: "YYYY-MM-DD"},
	},
	components.FormCarListing: {
		{Key: components.FieldMake, Label: "Make"},
		{Key: components.FieldModel, Label: "Model"},
		{Key: components.FieldYear, Label: "Year"},
		{Key: components.FieldPricePerDay, Label: "Price per day"},
		{Key: components.FieldLocation, Label: "Location"},
	},
	components.FormMessage: {
		{Key: components.FieldReceiverEmail, Label: "To"},
		{Key: components.FieldContent, Label: "Message"},
	},
}

// formSet holds the text inputs of every form and implements
// components.Forms. Hidden fields (the booking's car id) have no input and
// live in extra.
type formSet struct {
	inputs  map[components.FormID]map[string]*textinput.Model
	extra   map[components.FormID]map[string]string
	focused map[components.FormID]int
}

func newFormSet() *formSet {
	fs := &formSet{
		inputs:  make(map[components.FormID]map[string]*textinput.Model),
		extra:   make(map[components.FormID]map[string]string),
		focused: make(map[components.FormID]int),
	}
	for id, fields := range formLayouts {
		fs.inputs[id] = make(map[string]*textinput.Model, len(fields))
		for _, f := range fields {
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = f.Placeholder
			ti.CharLimit = 256
			if f.Secret {
				ti.EchoMode = textinput.EchoPassword
				ti.EchoCharacter = '•'
			}
			fs.inputs[id][f.Key] = &ti
		}
	}
	return fs
}

func (fs *formSet) Value(form components.FormID, field string) string {
	if ti := fs.input(form, field); ti != nil {
		return ti.Value()
	}
	return fs.extra[form][field]
}

func (fs *formSet) SetValue(form components.FormID, field, value string) {
	if ti := fs.input(form, field); ti != nil {
		ti.SetValue(value)
		return
	}
	if fs.extra[form] == nil {
		fs.extra[form] = make(map[string]string)
	}
	fs.extra[form][field] = value
}

func (fs *formSet) Reset(form components.FormID) {
	for _, ti := range fs.inputs[form] {
		ti.Reset()
	}
	delete(fs.extra, form)
	fs.focused[form] = 0
}

func (fs *formSet) input(form components.FormID, field string) *textinput.Model {
	return fs.inputs[form][field]
}

// Focus moves the cursor to the form's current field and returns the blink command
func (fs *formSet) Focus(form components.FormID) tea.Cmd {
	fields := formLayouts[form]
	var cmd tea.Cmd
	for i, f := range fields {
		ti := fs.inputs[form][f.Key]
		if i == fs.focused[form] {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
	}
	return cmd
}

// Blur takes the cursor out of every field of form
func (fs *formSet) Blur(form components.FormID) {
	for _, ti := range fs.inputs[form] {
		ti.Blur()
	}
}

// Move shifts focus by delta fields, wrapping around
func (fs *formSet) Move(form components.FormID, delta int) tea.Cmd {
	n := len(formLayouts[form])
	if n == 0 {
		return nil
	}
	fs.focused[form] = ((fs.focused[form]+delta)%n + n) % n
	return fs.Focus(form)
}

// FocusedField returns the key of the field with the cursor
func (fs *formSet) FocusedField(form components.FormID) string {
	fields := formLayouts[form]
	if len(fields) == 0 {
		return ""
	}
	return fields[fs.focused[form]].Key
}

// Update feeds msg to the focused field of form
func (fs *formSet) Update(form components.FormID, msg tea.Msg) tea.Cmd {
	ti := fs.input(form, fs.FocusedField(form))
	if ti == nil {
		return nil
	}
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return cmd
}

// Values snapshots the form as field key to value
func (fs *formSet) Values(form components.FormID) map[string]string {
	out := make(map[string]string)
	for key, ti := range fs.inputs[form] {
		out[key] = ti.Value()
	}
	for key, v := range fs.extra[form] {
		out[key] = v
	}
	return out
}

// Views renders each field of form, in display order
func (fs *formSet) Views(form components.FormID) []views.FieldView {
	fields := formLayouts[form]
	out := make([]views.FieldView, 0, len(fields))
	for i, f := range fields {
		out = append(out, views.FieldView{
			Label:   f.Label,
			Input:   fs.inputs[form][f.Key].View(),
			Focused: i == fs.focused[form],
		})
	}
	return out
}
