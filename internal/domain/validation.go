package domain

import "errors"

// ValidationErrorType is the closed taxonomy of pipeline failures. It must
// stay consistent between the pipeline and its consumers; do not extend it.
type ValidationErrorType string

const (
	ErrorTypeValidation ValidationErrorType = "validation" // missing/malformed field
	ErrorTypePermission ValidationErrorType = "permission" // role not authorized
	ErrorTypeData       ValidationErrorType = "data"       // referenced entity not found
	ErrorTypeSystem     ValidationErrorType = "system"     // infrastructure failure
)

// Sentinel errors classified by the pipeline.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrInvalidField  = errors.New("invalid field")
	ErrUnknownRole   = errors.New("unknown role")
	ErrUnknownIntent = errors.New("unknown intent")
)

// ValidationError is one problem found while validating a voice action.
// Field is set only for field-scoped problems.
type ValidationError struct {
	Type    ValidationErrorType `json:"type"`
	Field   string              `json:"field,omitempty"`
	Message string              `json:"message"`
	Code    string              `json:"code"`
}

// ValidationResult is the outcome of validating a single voice action.
// On success only Data is set; on failure Errors is non-empty, FormErrors
// carries one message per validation-typed field, and SystemError is set
// iff some error is system-typed.
type ValidationResult struct {
	Success     bool                   `json:"success"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Errors      []ValidationError      `json:"errors,omitempty"`
	FormErrors  map[string]string      `json:"form_errors,omitempty"`
	SystemError string                 `json:"system_error,omitempty"`
}

// FirstError returns the message callers should show for a failed result:
// the system error when present, otherwise the first accumulated error.
func (r *ValidationResult) FirstError() string {
	if r.SystemError != "" {
		return r.SystemError
	}
	if len(r.Errors) > 0 {
		return r.Errors[0].Message
	}
	return ""
}
