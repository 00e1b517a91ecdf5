package errx

import (
	"errors"
	"fmt"
)

// Code classifies an AppError for callers that branch on failure kind.
type Code string

const (
	CodeUntrainedModel    Code = "untrained_model"
	CodeInvalidState      Code = "invalid_state"
	CodeInternalInvariant Code = "internal_invariant"
	CodeInvalidInput      Code = "invalid_input"
)

var (
	// ErrUntrainedModel is returned when training data is empty or mismatched.
	ErrUntrainedModel = errors.New("untrained model")
	// ErrInvalidState is returned when a model is queried before training succeeded.
	ErrInvalidState = errors.New("invalid state")
	// ErrInternalInvariant reports a broken internal guarantee, e.g. a label out of range.
	ErrInternalInvariant = errors.New("internal invariant violated")
	// ErrInvalidInput is returned for malformed requests at the graph boundary.
	ErrInvalidInput = errors.New("invalid input")
)

// AppError wraps an underlying error with a code and a safe message.
type AppError struct {
	Err     error
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, code Code, message string) *AppError {
	return &AppError{
		Err:     err,
		Code:    code,
		Message: message,
	}
}

func UntrainedModel(format string, args ...any) error {
	return New(ErrUntrainedModel, CodeUntrainedModel, fmt.Sprintf(format, args...))
}

func InvalidState(format string, args ...any) error {
	return New(ErrInvalidState, CodeInvalidState, fmt.Sprintf(format, args...))
}

func InternalInvariant(format string, args ...any) error {
	return New(ErrInternalInvariant, CodeInternalInvariant, fmt.Sprintf(format, args...))
}

func InvalidInput(format string, args ...any) error {
	return New(ErrInvalidInput, CodeInvalidInput, fmt.Sprintf(format, args...))
}

// CodeOf returns the code of the first AppError in err's chain, or "" if none.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}
