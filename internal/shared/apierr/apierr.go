package apierr

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind classifies a failure. Every failure raised by the mock API client
// carries exactly one of these.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindValidation     Kind = "validation_failed"
	KindBadRequest     Kind = "bad_request"
	KindUnauthorized   Kind = "unauthorized"
	KindNotImplemented Kind = "not_implemented"
	KindInternal       Kind = "internal"
)

// Error is the uniform failure shape. FieldErrors is populated only for
// validation failures; forms project it onto per-field helper text.
type Error struct {
	Kind        Kind              `json:"kind"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

func NotImplemented(operation string) *Error {
	return New(KindNotImplemented, fmt.Sprintf("%s is not implemented", operation))
}

func Internal(message string) *Error {
	return New(KindInternal, message)
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, FieldErrors: fields}
}

// FromValidation converts an ozzo validation result into a field-keyed
// validation failure. Non-validation errors become Internal.
func FromValidation(err error) *Error {
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}
		return Validation("validation failed", fields)
	}
	return Internal(err.Error())
}

// From extracts the structured failure from an error chain.
// Returns (nil, false) when err carries no *Error.
func From(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is a structured failure of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := From(err)
	return ok && apiErr.Kind == kind
}
