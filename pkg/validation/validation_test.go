package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimAndValidate(t *testing.T) {
	trimmed, ok := TrimAndValidate("  London  ")
	assert.True(t, ok)
	assert.Equal(t, "London", trimmed)

	trimmed, ok = TrimAndValidate(" \t ")
	assert.False(t, ok)
	assert.Empty(t, trimmed)
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, IsNotEmpty("Paris"))
	assert.False(t, IsNotEmpty("   "))
}

func TestCoordinateBounds(t *testing.T) {
	assert.True(t, IsValidLatitude(51.5))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.1))
	assert.True(t, IsValidLongitude(-0.12))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(-180.5))
}
