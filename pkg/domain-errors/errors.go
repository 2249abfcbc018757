// Package domainerrors carries coded domain errors across service boundaries.
//
// Services translate store facts (see pkg/platform/sentinel) into a Code so that
// callers can branch on the condition without string matching. The engine maps
// each Code onto the stable numeric receipt codes it reports.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code names a domain condition.
type Code string

// Role and registration conditions.
const (
	CodeNotAuthorized     Code = "not_authorized"
	CodeAlreadyRegistered Code = "already_registered"
	CodeNotRegistered     Code = "not_registered"
	CodeNotVerified       Code = "not_verified"
)

// Recovery conditions.
const (
	CodeNotAValidator         Code = "not_a_validator"
	CodeNoActiveRecovery      Code = "no_active_recovery"
	CodeInvalidRequest        Code = "invalid_request"
	CodeInsufficientApprovals Code = "insufficient_approvals"
)

// Generic conditions.
const (
	CodeInvalidInput       Code = "invalid_input"
	CodeInvariantViolation Code = "invariant_violation"
	CodeInternal           Code = "internal_error"
)

// Error is a domain error with a machine-readable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the outermost code in the chain, or CodeInternal for
// errors that carry none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether any error in the chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is shorthand for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}
