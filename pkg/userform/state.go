package userform

// State is an immutable snapshot of the modal form. Reducers return a new
// State for every event; callers must not mutate Errors in place.
type State struct {
	Open      bool
	Data      FormData
	Errors    ErrorMap
	LastError string
	Submitted bool
}

// NewState returns the mount-time state: closed, empty, never submitted.
func NewState() State {
	return State{}
}

// ErrorFor returns the inline error shown under id.
func (s State) ErrorFor(id FieldID) string {
	return s.Errors.Get(id)
}

// Editing reports whether the form is open with no failing field.
func (s State) Editing() bool {
	return s.Open && !s.Errors.Any()
}

// Rejected reports whether the last submit attempt left failing fields.
func (s State) Rejected() bool {
	return s.Open && s.Submitted && s.Errors.Any()
}

// Clone returns a deep copy.
func (s State) Clone() State {
	s.Errors = s.Errors.Clone()
	return s
}
