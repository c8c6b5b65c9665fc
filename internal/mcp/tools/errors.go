package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/usestring/jackgen/internal/generator"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeGenerationError = "GENERATION_ERROR"
	ErrCodeTimeout         = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapGenerationError converts a pipeline error to a coded error. Problems
// with the submitted document become INVALID_INPUT.
func WrapGenerationError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError
	switch {
	case errors.As(err, &coded):
		return coded
	case generator.IsInputError(err):
		coded = &CodedError{Code: ErrCodeInvalidInput, Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		coded = &CodedError{Code: ErrCodeTimeout, Message: "generation timed out", Cause: err}
	default:
		coded = &CodedError{Code: ErrCodeGenerationError, Message: "generation failed", Cause: err}
	}

	slog.Warn("tool call failed",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
