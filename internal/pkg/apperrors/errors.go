package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Domain errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNoticeNotFound     = errors.New("notice not found")
	ErrStudyPlanNotFound  = errors.New("study plan not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidCategory    = errors.New("category must be admin or student")
	ErrInvalidScore       = errors.New("score must be between 0 and total_score")
	ErrTopicOutOfRange    = errors.New("topic reference out of range")
)

// External dependency errors
var (
	// ErrGenerationFailed marks a provider failure or a malformed structured
	// response from the generative-language API. Never retried.
	ErrGenerationFailed = errors.New("generation failed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error with a field-level message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewGenerationError wraps a provider failure with context
func NewGenerationError(message string) error {
	return &CustomError{
		Err:     ErrGenerationFailed,
		Message: message,
	}
}
