package types

import "fmt"

// ErrorCode is a typed string for categorizing integration errors.
type ErrorCode string

// Error code constants. Loaders and validators MUST use these constants
// instead of hardcoded strings so callers can branch on the code.
const (
	// Config entry loading
	ErrCodeConfigParse      ErrorCode = "config_parse_failed"
	ErrCodeConfigValidation ErrorCode = "config_validation_failed"

	// Config entry field validation
	ErrCodeConfigInvalidLat   ErrorCode = "config_invalid_latitude"
	ErrCodeConfigInvalidLon   ErrorCode = "config_invalid_longitude"
	ErrCodeConfigMissingField ErrorCode = "config_missing_required_field"
)

// PlatformError is the standard error type for the integration. All errors
// crossing a package boundary should be expressed as PlatformError to enable
// consistent formatting and error chain support.
//
// Missing weather data is never a PlatformError: entity setup treats absent
// snapshots as "nothing to register", not as a failure.
type PlatformError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// Error implements the error interface.
func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *PlatformError) Unwrap() error {
	return e.Err
}

// NewPlatformError creates a new PlatformError with the given code, message,
// and optional underlying error.
func NewPlatformError(code ErrorCode, message string, err error) *PlatformError {
	return &PlatformError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
