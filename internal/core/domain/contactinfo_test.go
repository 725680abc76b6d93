package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmailContactInfo_WithEmail tests that replacing the address resets the
// verification flag
func TestEmailContactInfo_WithEmail(t *testing.T) {
	info := EmailContactInfo{Email: mustEmail(t, "old@example.com")}.MarkVerified()
	require.True(t, info.Verified)

	updated := info.WithEmail(mustEmail(t, "new@example.com"))
	assert.Equal(t, "new@example.com", updated.Email.String())
	assert.False(t, updated.Verified)

	// Original value untouched.
	assert.Equal(t, "old@example.com", info.Email.String())
	assert.True(t, info.Verified)
}

// TestPostalContactInfo_WithAddress tests that replacing the address resets
// the validity flag
func TestPostalContactInfo_WithAddress(t *testing.T) {
	info := PostalContactInfo{Address: mustPostal(t, "1 Main St", "CA", "90210")}.MarkValid()
	require.True(t, info.AddressValid)

	updated := info.WithAddress(mustPostal(t, "2 Oak Ave", "NY", "10001"))
	assert.Equal(t, "2 Oak Ave", updated.Address.Line1)
	assert.False(t, updated.AddressValid)
	assert.True(t, info.AddressValid)
}

// TestNewPostalAddress_Invalid tests required-field rejection
func TestNewPostalAddress_Invalid(t *testing.T) {
	st, err := NewStateCode("CA")
	require.NoError(t, err)
	z, err := NewZipCode("90210")
	require.NoError(t, err)

	_, err = NewPostalAddress("", "", "", "", st, z)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = NewPostalAddress("1 Main St", "", "", "", StateCode{}, z)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = NewPostalAddress("1 Main St", "", "", "", st, ZipCode{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
