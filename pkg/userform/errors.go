package userform

import "errors"

var (
	// ErrUnknownField is returned when a field identifier is not one of the
	// four form fields.
	ErrUnknownField = errors.New("userform: unknown field")
	// ErrInvalidMessages signals a message catalog that cannot be decoded.
	ErrInvalidMessages = errors.New("userform: invalid message catalog")
)

// ErrUnknownMode is returned when an alert mode or submit policy name is not
// recognised.
var ErrUnknownMode = errors.New("userform: unknown mode")
