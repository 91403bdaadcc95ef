package types

import (
	"errors"
	"fmt"
	"testing"
)

// TestPlatformErrorImplementsError verifies that *PlatformError satisfies the error interface.
func TestPlatformErrorImplementsError(t *testing.T) {
	var _ error = (*PlatformError)(nil)
}

// TestPlatformErrorFormat verifies the Error() method produces "code: message".
func TestPlatformErrorFormat(t *testing.T) {
	err := &PlatformError{
		Code:    ErrCodeConfigInvalidLat,
		Message: "latitude must be between -90 and 90",
	}

	expected := "config_invalid_latitude: latitude must be between -90 and 90"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

// TestPlatformErrorUnwrap verifies error chain support via Unwrap.
func TestPlatformErrorUnwrap(t *testing.T) {
	underlying := errors.New("yaml: unmarshal failed")
	err := NewPlatformError(ErrCodeConfigParse, "failed to parse entry file", underlying)

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should match the wrapped error")
	}
}

// TestPlatformErrorErrorsAs verifies errors.As can extract PlatformError from a chain.
func TestPlatformErrorErrorsAs(t *testing.T) {
	err := NewPlatformError(ErrCodeConfigValidation, "entry rejected", nil)
	wrapped := fmt.Errorf("loading config: %w", err)

	var target *PlatformError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find PlatformError in the chain")
	}
	if target.Code != ErrCodeConfigValidation {
		t.Errorf("extracted Code = %q, want %q", target.Code, ErrCodeConfigValidation)
	}
}
