package userform

// Event is an input to the reducer.
type Event interface {
	isEvent()
}

// Target tells where a close click landed.
type Target int

const (
	// TargetOverlay is the dimmed area around the modal.
	TargetOverlay Target = iota
	// TargetContent is anywhere inside the modal box.
	TargetContent
)

// OpenEvent shows the modal.
type OpenEvent struct{}

// CloseEvent is a click that may close the modal. Only TargetOverlay closes.
type CloseEvent struct {
	Target Target
}

// ChangeEvent carries a new value for one field.
type ChangeEvent struct {
	Field FieldID
	Value string
}

// SubmitEvent is the submit button.
type SubmitEvent struct{}

// DismissErrorEvent is the popup close button.
type DismissErrorEvent struct{}

func (OpenEvent) isEvent()         {}
func (CloseEvent) isEvent()        {}
func (ChangeEvent) isEvent()       {}
func (SubmitEvent) isEvent()       {}
func (DismissErrorEvent) isEvent() {}

// Effect is an instruction for the front-end produced while reducing.
type Effect interface {
	isEffect()
}

// AlertEffect asks the front-end to show a blocking alert.
type AlertEffect struct {
	Message string
}

// SubmittedEffect carries the data accepted by a successful submit.
type SubmittedEffect struct {
	Data FormData
}

// ClosedEffect reports that the modal was closed.
type ClosedEffect struct{}

func (AlertEffect) isEffect()     {}
func (SubmittedEffect) isEffect() {}
func (ClosedEffect) isEffect()    {}
