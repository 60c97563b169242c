// Package prompt drives the user form through line-oriented terminal prompts.
//
// Each pass asks for the four fields (pre-filled with the current values),
// then confirms submission. Rejected submissions print the inline errors and
// start another pass; declining to submit closes the form.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-userform/pkg/userform"
)

// Runner runs one form session against a PromptDriver.
type Runner struct {
	reducer     *userform.Reducer
	driver      PromptDriver
	theme       Theme
	maxAttempts int
}

// New constructs a Runner with the survey driver. A nil reducer uses the
// userform defaults.
func New(reducer *userform.Reducer, options ...Option) *Runner {
	if reducer == nil {
		reducer = userform.NewReducer()
	}
	r := &Runner{
		reducer: reducer,
		driver:  newSurveyDriver(),
		theme:   DefaultTheme,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Run opens the form and loops until a submission is accepted, the user
// declines to submit (ErrCancelled), or input is aborted (ErrAborted).
func (r *Runner) Run(ctx context.Context) (userform.FormData, error) {
	if ctx == nil {
		return userform.FormData{}, errors.New("prompt: context is required")
	}
	session := userform.NewSession(r.reducer)
	session.Dispatch(userform.OpenEvent{})

	for attempt := 0; r.maxAttempts <= 0 || attempt < r.maxAttempts; attempt++ {
		for _, id := range userform.Fields() {
			current := session.State()
			value, err := r.driver.Input(ctx, InputConfig{
				Message: id.Label() + ":",
				Default: current.Data.Get(id),
				Help:    current.ErrorFor(id),
			})
			if err != nil {
				session.Dispatch(userform.CloseEvent{Target: userform.TargetOverlay})
				return userform.FormData{}, err
			}
			if _, _, err := r.apply(ctx, session.Dispatch(userform.ChangeEvent{Field: id, Value: value})); err != nil {
				return userform.FormData{}, err
			}
		}

		ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Submit?", Default: true})
		if err != nil {
			return userform.FormData{}, err
		}
		if !ok {
			session.Dispatch(userform.CloseEvent{Target: userform.TargetOverlay})
			return userform.FormData{}, ErrCancelled
		}

		data, alerted, err := r.apply(ctx, session.Dispatch(userform.SubmitEvent{}))
		if err != nil {
			return userform.FormData{}, err
		}
		if data != nil {
			return *data, nil
		}
		if err := r.report(ctx, session, alerted); err != nil {
			return userform.FormData{}, err
		}
	}

	return userform.FormData{}, ErrTooManyAttempts
}

// apply performs effects. It returns the accepted data, if any, and whether an
// alert was shown.
func (r *Runner) apply(ctx context.Context, effects []userform.Effect) (*userform.FormData, bool, error) {
	var (
		accepted *userform.FormData
		alerted  bool
	)
	for _, effect := range effects {
		switch e := effect.(type) {
		case userform.AlertEffect:
			alerted = true
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+e.Message); err != nil {
				return nil, alerted, err
			}
		case userform.SubmittedEffect:
			data := e.Data
			accepted = &data
		}
	}
	return accepted, alerted, nil
}

// report prints the inline errors after a rejected submit, plus the popup
// message when no alert already showed it, then dismisses the popup.
func (r *Runner) report(ctx context.Context, session *userform.Session, alerted bool) error {
	state := session.State()
	if !alerted && state.LastError != "" {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+state.LastError); err != nil {
			return err
		}
	}
	for _, id := range userform.Fields() {
		msg := state.ErrorFor(id)
		if msg == "" {
			continue
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.InfoPrefix, id.Label(), msg)); err != nil {
			return err
		}
	}
	session.Dispatch(userform.DismissErrorEvent{})
	return nil
}
