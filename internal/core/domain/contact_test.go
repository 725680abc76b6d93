package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustName(t *testing.T, first, last string) PersonalName {
	t.Helper()
	name, err := NewPersonalName(first, "", last)
	require.NoError(t, err)
	return name
}

func emailOnlyContact(t *testing.T) Contact {
	t.Helper()
	info := EmailContactInfo{Email: mustEmail(t, "alice@example.com")}.MarkVerified()
	c, err := NewContact("c-1", mustName(t, "Alice", "Smith"), EmailMethod{Info: info})
	require.NoError(t, err)
	return c
}

// TestNewContact_RequiresPrimary tests that a contact cannot exist with zero
// contact methods
func TestNewContact_RequiresPrimary(t *testing.T) {
	_, err := NewContact("c-1", mustName(t, "Alice", "Smith"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoContactMethod))
}

// TestNewContact_RejectsNilSecondary tests nil rejection in the sequence
func TestNewContact_RejectsNilSecondary(t *testing.T) {
	primary := EmailMethod{Info: EmailContactInfo{Email: mustEmail(t, "a@b.co")}}
	_, err := NewContact("c-1", mustName(t, "Alice", "Smith"), primary, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

// TestContact_Methods tests ordering: primary first, then secondaries
func TestContact_Methods(t *testing.T) {
	primary := EmailMethod{Info: EmailContactInfo{Email: mustEmail(t, "a@b.co")}}
	second := HomePhoneMethod{Info: PhoneContactInfo{Number: mustPhone(t, "5551234567")}}
	third := WorkPhoneMethod{Info: PhoneContactInfo{Number: mustPhone(t, "5559876543")}}

	c, err := NewContact("c-1", mustName(t, "Alice", "Smith"), primary, second, third)
	require.NoError(t, err)

	methods := c.Methods()
	require.Len(t, methods, 3)
	assert.Equal(t, primary, methods[0])
	assert.Equal(t, second, methods[1])
	assert.Equal(t, third, methods[2])
	assert.Equal(t, primary, c.Primary())
	assert.Len(t, c.Secondaries(), 2)
}

// TestContact_SetPrimary tests that the old primary moves to the secondaries
func TestContact_SetPrimary(t *testing.T) {
	c := emailOnlyContact(t)
	oldPrimary := c.Primary()
	newPrimary := HomePhoneMethod{Info: PhoneContactInfo{Number: mustPhone(t, "5551234567")}}

	updated, err := c.SetPrimary(newPrimary)
	require.NoError(t, err)
	assert.Equal(t, newPrimary, updated.Primary())
	require.Len(t, updated.Secondaries(), 1)
	assert.Equal(t, oldPrimary, updated.Secondaries()[0])

	// Original contact is unchanged.
	assert.Equal(t, oldPrimary, c.Primary())
	assert.Empty(t, c.Secondaries())
}

// TestContact_SetPrimary_Nil tests rejection of a nil replacement
func TestContact_SetPrimary_Nil(t *testing.T) {
	c := emailOnlyContact(t)
	_, err := c.SetPrimary(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoContactMethod))
}

// TestContact_PromoteSecondary tests swapping a secondary into the primary slot
func TestContact_PromoteSecondary(t *testing.T) {
	primary := EmailMethod{Info: EmailContactInfo{Email: mustEmail(t, "a@b.co")}}
	second := HomePhoneMethod{Info: PhoneContactInfo{Number: mustPhone(t, "5551234567")}}
	third := WorkPhoneMethod{Info: PhoneContactInfo{Number: mustPhone(t, "5559876543")}}

	c, err := NewContact("c-1", mustName(t, "Alice", "Smith"), primary, second, third)
	require.NoError(t, err)

	updated, err := c.PromoteSecondary(1)
	require.NoError(t, err)
	assert.Equal(t, third, updated.Primary())
	require.Len(t, updated.Secondaries(), 2)
	assert.Equal(t, second, updated.Secondaries()[0])
	assert.Equal(t, primary, updated.Secondaries()[1])

	// Total method count preserved.
	assert.Len(t, updated.Methods(), 3)
}

// TestContact_PromoteSecondary_OutOfRange tests index validation
func TestContact_PromoteSecondary_OutOfRange(t *testing.T) {
	c := emailOnlyContact(t)
	for _, i := range []int{-1, 0, 5} {
		_, err := c.PromoteSecondary(i)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

// TestContact_WithPostal_EmailOnly tests that updating the postal address of
// an email-only contact yields both methods with the email untouched
func TestContact_WithPostal_EmailOnly(t *testing.T) {
	c := emailOnlyContact(t)
	postal := PostalContactInfo{Address: mustPostal(t, "1 Main St", "CA", "90210")}

	updated := c.WithPostal(postal)

	methods := updated.Methods()
	require.Len(t, methods, 2)

	emailInfo, ok := updated.EmailInfo()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", emailInfo.Email.String())
	assert.True(t, emailInfo.Verified)

	postalInfo, ok := updated.PostalInfo()
	require.True(t, ok)
	assert.Equal(t, "1 Main St", postalInfo.Address.Line1)
}

// TestContact_WithPostal_Replaces tests that an existing postal payload is
// discarded and the email payload is identical, verification flag included
func TestContact_WithPostal_Replaces(t *testing.T) {
	c := emailOnlyContact(t)
	first := PostalContactInfo{Address: mustPostal(t, "1 Main St", "CA", "90210")}.MarkValid()
	c = c.WithPostal(first)

	replacement := PostalContactInfo{Address: mustPostal(t, "2 Oak Ave", "NY", "10001")}
	updated := c.WithPostal(replacement)

	require.Len(t, updated.Methods(), 2)

	postalInfo, ok := updated.PostalInfo()
	require.True(t, ok)
	assert.Equal(t, "2 Oak Ave", postalInfo.Address.Line1)
	assert.False(t, postalInfo.AddressValid)

	emailInfo, ok := updated.EmailInfo()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", emailInfo.Email.String())
	assert.True(t, emailInfo.Verified)
}

// TestContact_WithPostal_ReplacesPrimaryInPlace tests position preservation
// when the postal method is the primary
func TestContact_WithPostal_ReplacesPrimaryInPlace(t *testing.T) {
	postal := PostalMethod{Info: PostalContactInfo{Address: mustPostal(t, "1 Main St", "CA", "90210")}}
	email := EmailMethod{Info: EmailContactInfo{Email: mustEmail(t, "a@b.co")}}
	c, err := NewContact("c-1", mustName(t, "Alice", "Smith"), postal, email)
	require.NoError(t, err)

	replacement := PostalContactInfo{Address: mustPostal(t, "2 Oak Ave", "NY", "10001")}
	updated := c.WithPostal(replacement)

	pm, ok := updated.Primary().(PostalMethod)
	require.True(t, ok)
	assert.Equal(t, "2 Oak Ave", pm.Info.Address.Line1)
	require.Len(t, updated.Secondaries(), 1)
	assert.Equal(t, ContactMethod(email), updated.Secondaries()[0])
}

// TestContact_WithEmail_ResetsVerification tests the replace path through
// the aggregate
func TestContact_WithEmail_ResetsVerification(t *testing.T) {
	c := emailOnlyContact(t)
	emailInfo, ok := c.EmailInfo()
	require.True(t, ok)
	require.True(t, emailInfo.Verified)

	updated := c.WithEmail(emailInfo.WithEmail(mustEmail(t, "new@example.com")))

	got, ok := updated.EmailInfo()
	require.True(t, ok)
	assert.Equal(t, "new@example.com", got.Email.String())
	assert.False(t, got.Verified)
	assert.Len(t, updated.Methods(), 1)
}

// TestContact_WithPhones tests replace-or-append for both phone variants
func TestContact_WithPhones(t *testing.T) {
	c := emailOnlyContact(t)
	home := PhoneContactInfo{Number: mustPhone(t, "5551234567")}
	work := PhoneContactInfo{Number: mustPhone(t, "5559876543")}

	c = c.WithHomePhone(home)
	c = c.WithWorkPhone(work)
	require.Len(t, c.Methods(), 3)

	// Replacing home phone does not add a fourth method.
	c = c.WithHomePhone(PhoneContactInfo{Number: mustPhone(t, "5550000000")})
	require.Len(t, c.Methods(), 3)

	var kinds []MethodKind
	for _, m := range c.Methods() {
		kinds = append(kinds, KindOf(m))
	}
	assert.Equal(t, []MethodKind{MethodKindEmail, MethodKindHomePhone, MethodKindWorkPhone}, kinds)
}

// TestContact_SecondariesDefensiveCopy tests that mutating the returned
// slice does not affect the contact
func TestContact_SecondariesDefensiveCopy(t *testing.T) {
	primary := EmailMethod{Info: EmailContactInfo{Email: mustEmail(t, "a@b.co")}}
	second := HomePhoneMethod{Info: PhoneContactInfo{Number: mustPhone(t, "5551234567")}}
	c, err := NewContact("c-1", mustName(t, "Alice", "Smith"), primary, second)
	require.NoError(t, err)

	got := c.Secondaries()
	got[0] = WorkPhoneMethod{Info: PhoneContactInfo{Number: mustPhone(t, "5550000000")}}

	assert.Equal(t, ContactMethod(second), c.Secondaries()[0])
}
