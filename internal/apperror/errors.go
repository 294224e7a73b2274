package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a pipeline failure. The kind alone decides the HTTP status
// of the response; employer lookups and temp-storage operations never produce
// one of these because their failures are absorbed where they happen.
type Kind string

const (
	KindInput      Kind = "input"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindExtraction Kind = "extraction"
	KindParse      Kind = "parse"
	KindAnalysis   Kind = "analysis"
	KindUnexpected Kind = "unexpected"
)

// Error carries a failure kind together with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindInput, KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func Input(format string, args ...any) *Error {
	return &Error{Kind: KindInput, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Extraction(message string, err error) *Error {
	return &Error{Kind: KindExtraction, Message: message, Err: err}
}

func Parse(message string, err error) *Error {
	return &Error{Kind: KindParse, Message: message, Err: err}
}

func Analysis(message string, err error) *Error {
	return &Error{Kind: KindAnalysis, Message: message, Err: err}
}

// StatusCode maps any error to its HTTP status. Errors outside the taxonomy
// count as unexpected and map to 500.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode()
	}
	return fiber.StatusInternalServerError
}
