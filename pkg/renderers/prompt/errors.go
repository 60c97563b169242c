package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrCancelled signals the user closed the form without submitting.
	ErrCancelled = errors.New("prompt: cancelled")
	// ErrTooManyAttempts is returned when the submit budget runs out.
	ErrTooManyAttempts = errors.New("prompt: too many rejected submissions")
)
