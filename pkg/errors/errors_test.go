package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "query cannot be empty")
			},
			expected: "VALIDATION_ERROR: query cannot be empty",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(ExternalAPIError, "geocoding request failed", cause)
			},
			expected: "EXTERNAL_API_ERROR: geocoding request failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := NewGeolocationError("position unavailable", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("location not found").Unwrap())
}

func TestTypeOf_WrappedChain(t *testing.T) {
	inner := NewNotFoundError("location not found")
	wrapped := fmt.Errorf("search %q: %w", "Atlantis", inner)

	assert.Equal(t, NotFoundError, TypeOf(wrapped))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsExternalAPIError(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"Validation", NewValidationError("bad"), IsValidationError},
		{"NotFound", NewNotFoundError("missing"), IsNotFoundError},
		{"Geolocation", NewGeolocationError("denied", nil), IsGeolocationError},
		{"ExternalAPI", NewExternalAPIError("down", nil), IsExternalAPIError},
		{"Configuration", NewConfigurationError("bad config", nil), IsConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(fmt.Errorf("other")))
		})
	}
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "GEOLOCATION_ERROR", ErrorTypeGeolocation.String())
	assert.Equal(t, "UNKNOWN_ERROR", ErrorType(99).String())
}

func TestUserMessage(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", NewNotFoundError("Location not found. Please try again."))

	assert.Equal(t, "Location not found. Please try again.", UserMessage(wrapped))
	assert.Equal(t, "plain", UserMessage(fmt.Errorf("plain")))
	assert.Equal(t, "", UserMessage(nil))
}
