// Package errors is the single errors import for infrastructure code: stdlib
// matching plus pkg/errors wrapping, so call sites keep a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching helpers from the standard library.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// New records a stack trace with the message.
func New(message string) error {
	return pkgerrors.New(message)
}

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack returns nil for a nil err.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
