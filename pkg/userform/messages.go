package userform

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

// Messages are the user-facing validation messages, one per field.
type Messages struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	DOB      string `yaml:"dob"`
	Phone    string `yaml:"phone"`
}

// DefaultMessages returns the built-in catalog.
func DefaultMessages() Messages {
	return Messages{
		Username: "Username is required.",
		Email:    "Invalid email. Please check your email address.",
		DOB:      "Invalid date of birth. Date of birth cannot be in the future.",
		Phone:    "Invalid phone number. Please enter a 10-digit phone number.",
	}
}

// For returns the message for id, or "" for unknown identifiers.
func (m Messages) For(id FieldID) string {
	switch id {
	case FieldUsername:
		return m.Username
	case FieldEmail:
		return m.Email
	case FieldDOB:
		return m.DOB
	case FieldPhone:
		return m.Phone
	}
	return ""
}

// Merge returns m with every non-blank entry of override applied.
func (m Messages) Merge(override Messages) Messages {
	pick := func(base, next string) string {
		if strings.TrimSpace(next) == "" {
			return base
		}
		return next
	}
	return Messages{
		Username: pick(m.Username, override.Username),
		Email:    pick(m.Email, override.Email),
		DOB:      pick(m.DOB, override.DOB),
		Phone:    pick(m.Phone, override.Phone),
	}
}

// DecodeMessages parses a YAML catalog and merges it over DefaultMessages.
// Markup is stripped from every message.
func DecodeMessages(r io.Reader) (Messages, error) {
	var raw Messages
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Messages{}, fmt.Errorf("%w: %v", ErrInvalidMessages, err)
	}
	return DefaultMessages().Merge(sanitizeMessages(raw)), nil
}

// LoadMessages reads a YAML catalog from fsys.
func LoadMessages(fsys fs.FS, name string) (Messages, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Messages{}, fmt.Errorf("userform: read messages %s: %w", name, err)
	}
	return DecodeMessages(bytes.NewReader(data))
}

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

func sanitizeMessages(m Messages) Messages {
	return Messages{
		Username: sanitizeMessage(m.Username),
		Email:    sanitizeMessage(m.Email),
		DOB:      sanitizeMessage(m.DOB),
		Phone:    sanitizeMessage(m.Phone),
	}
}

func sanitizeMessage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	// Sanitize escapes text; messages are stored unescaped and escaped again
	// by whichever surface renders them.
	return strings.TrimSpace(html.UnescapeString(messagePolicy.Sanitize(trimmed)))
}
