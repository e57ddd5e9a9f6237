// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// NotFoundError carries a redirect hint so the client knows which screen to
// fall back to when the requested record no longer exists.
type NotFoundError struct {
	Detail    string `json:"detail"`
	Redirigir string `json:"redirigir,omitempty"`
}

func NewNotFound(msg, redirigir string) *NotFoundError {
	return &NotFoundError{Detail: msg, Redirigir: redirigir}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
