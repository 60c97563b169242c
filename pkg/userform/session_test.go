package userform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSession_Dispatch(t *testing.T) {
	s := NewSession(newTestReducer(WithAlertMode(AlertDeferred)))

	effects := s.DispatchAll(append([]Event{OpenEvent{}}, fill(validData)...)...)
	if len(effects) != 0 {
		t.Fatalf("expected no effects while editing, got %v", effects)
	}
	if !s.State().Editing() {
		t.Fatalf("expected editing state")
	}

	effects = s.Dispatch(SubmitEvent{})
	want := []Effect{SubmittedEffect{Data: validData}, ClosedEffect{}}
	if diff := cmp.Diff(want, effects); diff != "" {
		t.Fatalf("effects mismatch (-want +got):\n%s", diff)
	}
	if s.State().Open {
		t.Fatalf("expected modal closed")
	}
}

func TestSession_StateIsACopy(t *testing.T) {
	s := NewSession(nil)
	s.DispatchAll(OpenEvent{}, SubmitEvent{})

	snap := s.State()
	snap.Errors[FieldUsername] = "tampered"

	if got := s.State().ErrorFor(FieldUsername); got != "Username is required." {
		t.Fatalf("session state changed through snapshot: %q", got)
	}
}
