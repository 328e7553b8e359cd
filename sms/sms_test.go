package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhoneNumber_BareTenDigits(t *testing.T) {
	got, err := NormalizePhoneNumber("9876543210")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", got)
}

func TestNormalizePhoneNumber_ForeignCodeUnchanged(t *testing.T) {
	got, err := NormalizePhoneNumber("+19876543210")
	require.NoError(t, err)
	assert.Equal(t, "+19876543210", got)
}

func TestNormalizePhoneNumber_DomesticCodeUnchanged(t *testing.T) {
	got, err := NormalizePhoneNumber("+919876543210")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", got)
}

func TestNormalizePhoneNumber_StripsFormatting(t *testing.T) {
	got, err := NormalizePhoneNumber("98765 43210")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", got)
}

func TestNormalizePhoneNumber_TooShort(t *testing.T) {
	_, err := NormalizePhoneNumber("98765")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid phone number")
}

func TestNormalizePhoneNumber_Empty(t *testing.T) {
	_, err := NormalizePhoneNumber("")
	require.Error(t, err)
}
