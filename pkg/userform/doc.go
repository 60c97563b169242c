// Package userform implements the user-details modal form as a pure state
// machine.
//
// A Reducer folds Events (open, close, field change, submit, popup dismiss)
// into immutable State snapshots and returns Effects for the front-end to
// perform. Field rules live in Validator. Session wraps a Reducer with the
// current snapshot for UI loops that own a single form instance.
package userform
