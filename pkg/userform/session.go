package userform

// Session owns the current snapshot of one form instance. It is not safe for
// concurrent use; the UI loop that created it should be its only caller.
type Session struct {
	reducer *Reducer
	state   State
}

// NewSession starts a session in the mount-time state. A nil reducer uses
// NewReducer defaults.
func NewSession(reducer *Reducer) *Session {
	if reducer == nil {
		reducer = NewReducer()
	}
	return &Session{reducer: reducer, state: NewState()}
}

// State returns a copy of the current snapshot.
func (s *Session) State() State {
	return s.state.Clone()
}

// Dispatch reduces ev into the current snapshot and returns its effects.
func (s *Session) Dispatch(ev Event) []Effect {
	next, effects := s.reducer.Reduce(s.state, ev)
	s.state = next
	return effects
}

// DispatchAll reduces events in order and returns every effect produced.
func (s *Session) DispatchAll(events ...Event) []Effect {
	var out []Effect
	for _, ev := range events {
		out = append(out, s.Dispatch(ev)...)
	}
	return out
}

// Reducer returns the reducer driving the session.
func (s *Session) Reducer() *Reducer {
	return s.reducer
}
