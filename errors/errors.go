// Package errors lets packages declare their failure kinds as constants:
//
//	const ErrParse = errors.Error("parse error")
//
// A kind is attached to the concrete failure with Wrap or Wrapf, for example
// the file and position of a parse error or the rule whose options were
// rejected, and callers match it with errors.Is. Is, As and Join forward to
// the standard library so a single import serves both.
package errors

import (
	"errors"
	"fmt"
)

// Error is a failure kind.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Wrap returns an error of kind e caused by cause. The message reads
// "<kind>: <cause>".
func (e Error) Wrap(cause error) error {
	return &kindError{kind: e, cause: cause}
}

// Wrapf is Wrap with a cause built from format and args.
func (e Error) Wrapf(format string, args ...any) error {
	return e.Wrap(fmt.Errorf(format, args...))
}

type kindError struct {
	kind  Error
	cause error
}

func (k *kindError) Error() string {
	if k.cause == nil {
		return string(k.kind)
	}
	return string(k.kind) + ": " + k.cause.Error()
}

// Is matches the kind, so errors.Is(err, ErrParse) holds for every wrapped
// parse failure.
func (k *kindError) Is(target error) bool {
	kind, ok := target.(Error)
	return ok && kind == k.kind
}

// As fills an *Error target with the kind.
func (k *kindError) As(target any) bool {
	if p, ok := target.(*Error); ok {
		*p = k.kind
		return true
	}
	return false
}

func (k *kindError) Unwrap() error {
	return k.cause
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error wrapping errs, dropping nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
