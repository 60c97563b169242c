package userform

import "fmt"

// FieldID identifies one of the form inputs.
type FieldID string

const (
	FieldUsername FieldID = "username"
	FieldEmail    FieldID = "email"
	FieldDOB      FieldID = "dob"
	FieldPhone    FieldID = "phone"
)

// DateLayout is the value layout produced by a date input.
const DateLayout = "2006-01-02"

var fieldOrder = []FieldID{FieldUsername, FieldEmail, FieldDOB, FieldPhone}

// Fields returns the field identifiers in display order.
func Fields() []FieldID {
	return append([]FieldID(nil), fieldOrder...)
}

// ParseFieldID resolves a raw identifier.
func ParseFieldID(raw string) (FieldID, error) {
	id := FieldID(raw)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
	return id, nil
}

// Valid reports whether id names a form field.
func (id FieldID) Valid() bool {
	switch id {
	case FieldUsername, FieldEmail, FieldDOB, FieldPhone:
		return true
	}
	return false
}

// Label is the text shown next to the input.
func (id FieldID) Label() string {
	switch id {
	case FieldUsername:
		return "Username"
	case FieldEmail:
		return "Email Address"
	case FieldDOB:
		return "Date of Birth"
	case FieldPhone:
		return "Phone Number"
	}
	return string(id)
}

// InputType mirrors the HTML input type used for the field.
func (id FieldID) InputType() string {
	switch id {
	case FieldEmail:
		return "email"
	case FieldDOB:
		return "date"
	}
	return "text"
}

// FormData holds the current input values.
type FormData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	DOB      string `json:"dob"`
	Phone    string `json:"phone"`
}

// Get returns the value for id. Unknown identifiers yield "".
func (d FormData) Get(id FieldID) string {
	switch id {
	case FieldUsername:
		return d.Username
	case FieldEmail:
		return d.Email
	case FieldDOB:
		return d.DOB
	case FieldPhone:
		return d.Phone
	}
	return ""
}

// With returns a copy of d with id set to value. Unknown identifiers leave the
// copy unchanged.
func (d FormData) With(id FieldID, value string) FormData {
	switch id {
	case FieldUsername:
		d.Username = value
	case FieldEmail:
		d.Email = value
	case FieldDOB:
		d.DOB = value
	case FieldPhone:
		d.Phone = value
	}
	return d
}

// IsZero reports whether every field is empty.
func (d FormData) IsZero() bool {
	return d == FormData{}
}

// ErrorMap maps a field to its current error message. An empty message means
// the field passed its last validation; a missing entry means it was never
// validated.
type ErrorMap map[FieldID]string

// Get returns the message for id.
func (m ErrorMap) Get(id FieldID) string {
	if m == nil {
		return ""
	}
	return m[id]
}

// Any reports whether at least one entry holds a message.
func (m ErrorMap) Any() bool {
	for _, msg := range m {
		if msg != "" {
			return true
		}
	}
	return false
}

// With returns a copy of m with id set to msg.
func (m ErrorMap) With(id FieldID, msg string) ErrorMap {
	out := m.Clone()
	if out == nil {
		out = make(ErrorMap, 1)
	}
	out[id] = msg
	return out
}

// Clone copies the map. A nil map clones to nil.
func (m ErrorMap) Clone() ErrorMap {
	if m == nil {
		return nil
	}
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
