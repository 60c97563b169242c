package userform

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Clock reports the current time.
type Clock func() time.Time

// fieldTags holds the rule for each field, expressed as validator tags.
var fieldTags = map[FieldID]string{
	FieldUsername: "nonblank",
	FieldEmail:    "contains=@",
	FieldDOB:      "notfuture",
	FieldPhone:    "len=10",
}

// Validator checks single field values and returns user-facing messages.
type Validator struct {
	messages Messages
	now      Clock
	engine   *validator.Validate
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithMessages replaces the message catalog. Blank entries keep the defaults.
func WithMessages(messages Messages) ValidatorOption {
	return func(v *Validator) {
		v.messages = DefaultMessages().Merge(messages)
	}
}

// WithClock overrides the clock used by the date-of-birth rule.
func WithClock(clock Clock) ValidatorOption {
	return func(v *Validator) {
		if clock != nil {
			v.now = clock
		}
	}
}

// NewValidator builds a Validator with the default catalog and time.Now.
func NewValidator(options ...ValidatorOption) *Validator {
	v := &Validator{
		messages: DefaultMessages(),
		now:      time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}

	engine := validator.New()
	// RegisterValidation only fails for empty or reserved tags.
	_ = engine.RegisterValidation("nonblank", nonBlank)
	_ = engine.RegisterValidation("notfuture", v.notFuture)
	v.engine = engine
	return v
}

// Messages returns the active catalog.
func (v *Validator) Messages() Messages {
	return v.messages
}

// ValidateField returns the error message for value, or "" when it is valid.
// Unknown identifiers are always valid.
func (v *Validator) ValidateField(id FieldID, value string) string {
	tag, ok := fieldTags[id]
	if !ok {
		return ""
	}
	if err := v.engine.Var(value, tag); err != nil {
		return v.messages.For(id)
	}
	return ""
}

// ValidateAll validates every field of data.
func (v *Validator) ValidateAll(data FormData) ErrorMap {
	out := make(ErrorMap, len(fieldOrder))
	for _, id := range fieldOrder {
		out[id] = v.ValidateField(id, data.Get(id))
	}
	return out
}

func nonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// notFuture accepts dates up to and including today in the clock's location.
// Values that do not parse are accepted.
func (v *Validator) notFuture(fl validator.FieldLevel) bool {
	now := v.now()
	dob, err := time.ParseInLocation(DateLayout, fl.Field().String(), now.Location())
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !dob.After(today)
}
