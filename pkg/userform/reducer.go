package userform

import "go.uber.org/zap"

// Reducer folds events into state snapshots. It holds configuration only and
// is safe to share.
type Reducer struct {
	validator    *Validator
	alerts       AlertMode
	policy       SubmitPolicy
	resetOnClose bool
	logger       *zap.Logger
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithValidator overrides the field validator.
func WithValidator(v *Validator) Option {
	return func(r *Reducer) {
		if v != nil {
			r.validator = v
		}
	}
}

// WithAlertMode selects immediate or deferred alerts.
func WithAlertMode(mode AlertMode) Option {
	return func(r *Reducer) {
		r.alerts = mode
	}
}

// WithSubmitPolicy selects the submit gate.
func WithSubmitPolicy(policy SubmitPolicy) Option {
	return func(r *Reducer) {
		r.policy = policy
	}
}

// WithResetOnClose clears the field values when the overlay closes the modal.
func WithResetOnClose(reset bool) Option {
	return func(r *Reducer) {
		r.resetOnClose = reset
	}
}

// WithLogger attaches a logger for submit outcomes.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Reducer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewReducer returns a Reducer with immediate alerts and the fresh submit gate.
func NewReducer(options ...Option) *Reducer {
	r := &Reducer{
		alerts: AlertImmediate,
		policy: SubmitFresh,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.validator == nil {
		r.validator = NewValidator()
	}
	return r
}

// Validator returns the field validator in use.
func (r *Reducer) Validator() *Validator {
	return r.validator
}

// Reduce applies ev to s and returns the next snapshot plus any effects. s is
// never modified.
func (r *Reducer) Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case OpenEvent:
		s.Open = true
		return s, nil
	case CloseEvent:
		return r.close(s, e.Target)
	case ChangeEvent:
		return r.change(s, e.Field, e.Value)
	case SubmitEvent:
		return r.submit(s)
	case DismissErrorEvent:
		s.LastError = ""
		return s, nil
	}
	return s, nil
}

func (r *Reducer) close(s State, target Target) (State, []Effect) {
	if !s.Open || target != TargetOverlay {
		return s, nil
	}
	s.Open = false
	s.Errors = nil
	s.LastError = ""
	s.Submitted = false
	if r.resetOnClose {
		s.Data = FormData{}
	}
	return s, []Effect{ClosedEffect{}}
}

func (r *Reducer) change(s State, id FieldID, value string) (State, []Effect) {
	if !s.Open || !id.Valid() {
		return s, nil
	}
	s.Data = s.Data.With(id, value)
	if !s.Submitted {
		return s, nil
	}
	return r.check(s, id, value)
}

func (r *Reducer) submit(s State) (State, []Effect) {
	if !s.Open {
		return s, nil
	}
	before := s.Errors
	s.Submitted = true

	var effects []Effect
	for _, id := range fieldOrder {
		var fx []Effect
		s, fx = r.check(s, id, s.Data.Get(id))
		effects = append(effects, fx...)
	}

	gate := s.Errors
	if r.policy == SubmitStaleRead {
		gate = before
	}
	if gate.Any() {
		r.logger.Debug("submit rejected",
			zap.Stringer("policy", r.policy),
			zap.Int("alerts", len(effects)),
		)
		return s, effects
	}

	accepted := s.Data
	invalid := s.Errors.Any()
	s.Data = FormData{}
	s.Errors = nil
	s.LastError = ""
	s.Open = false
	r.logger.Debug("submit accepted",
		zap.Stringer("policy", r.policy),
		zap.Bool("invalid", invalid),
	)
	return s, append(effects, SubmittedEffect{Data: accepted}, ClosedEffect{})
}

// check validates one field and records the outcome on a copy of s.
func (r *Reducer) check(s State, id FieldID, value string) (State, []Effect) {
	msg := r.validator.ValidateField(id, value)
	s.Errors = s.Errors.With(id, msg)
	if msg == "" {
		return s, nil
	}
	s.LastError = msg
	if r.alerts == AlertImmediate {
		return s, []Effect{AlertEffect{Message: msg}}
	}
	return s, nil
}
