// Package apierror defines the JSON error envelopes the API serves. Handlers
// never write raw error strings to clients; everything funnels through these
// types so that the console can rely on a single {"detail": ...} shape and
// internal errors (SQL, Redis, parser stack traces) never reach the wire.
package apierror

import "fmt"

// APIError is the envelope for every 4xx/5xx response body.
type APIError struct {
	Detail string `json:"detail"`
}

func New(detail string) *APIError {
	return &APIError{Detail: detail}
}

func Newf(format string, args ...any) *APIError {
	return &APIError{Detail: fmt.Sprintf(format, args...)}
}

// ValidationError carries per-field messages for 422 responses, keyed by the
// JSON field name of the offending input.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
