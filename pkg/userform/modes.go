package userform

import (
	"fmt"
	"strings"
)

// AlertMode controls when failing validations are surfaced.
type AlertMode int

const (
	// AlertImmediate emits an AlertEffect for every failing validation.
	AlertImmediate AlertMode = iota
	// AlertDeferred surfaces failures only inline and through LastError.
	AlertDeferred
)

// ParseAlertMode resolves "immediate" or "deferred".
func ParseAlertMode(raw string) (AlertMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "immediate":
		return AlertImmediate, nil
	case "deferred":
		return AlertDeferred, nil
	}
	return 0, fmt.Errorf("%w: alert mode %q", ErrUnknownMode, raw)
}

func (m AlertMode) String() string {
	if m == AlertDeferred {
		return "deferred"
	}
	return "immediate"
}

// SubmitPolicy selects which error map gates a submit.
type SubmitPolicy int

const (
	// SubmitFresh gates on the errors produced by the submit itself.
	SubmitFresh SubmitPolicy = iota
	// SubmitStaleRead gates on the errors held before the submit validated
	// anything. An invalid form can pass its first submit and a corrected
	// form can be rejected once.
	SubmitStaleRead
)

// ParseSubmitPolicy resolves "fresh" or "stale_read".
func ParseSubmitPolicy(raw string) (SubmitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "fresh":
		return SubmitFresh, nil
	case "stale_read", "stale-read":
		return SubmitStaleRead, nil
	}
	return 0, fmt.Errorf("%w: submit policy %q", ErrUnknownMode, raw)
}

func (p SubmitPolicy) String() string {
	if p == SubmitStaleRead {
		return "stale_read"
	}
	return "fresh"
}
