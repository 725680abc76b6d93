package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, raw string) EmailAddress {
	t.Helper()
	email, err := NewEmailAddress(raw)
	require.NoError(t, err)
	return email
}

func mustPhone(t *testing.T, raw string) PhoneNumber {
	t.Helper()
	phone, err := NewPhoneNumber(raw)
	require.NoError(t, err)
	return phone
}

func mustPostal(t *testing.T, line1, state, zip string) PostalAddress {
	t.Helper()
	st, err := NewStateCode(state)
	require.NoError(t, err)
	z, err := NewZipCode(zip)
	require.NoError(t, err)
	addr, err := NewPostalAddress(line1, "", "", "", st, z)
	require.NoError(t, err)
	return addr
}

// recordingVisitor implements MethodVisitor and records which variant it saw.
// Compiling this type is itself the exhaustiveness check: a new variant adds
// a Visit method to MethodVisitor and this type stops satisfying it.
type recordingVisitor struct {
	kind MethodKind
}

var _ MethodVisitor = (*recordingVisitor)(nil)

func (r *recordingVisitor) VisitEmail(EmailContactInfo)     { r.kind = MethodKindEmail }
func (r *recordingVisitor) VisitPostal(PostalContactInfo)   { r.kind = MethodKindPostal }
func (r *recordingVisitor) VisitHomePhone(PhoneContactInfo) { r.kind = MethodKindHomePhone }
func (r *recordingVisitor) VisitWorkPhone(PhoneContactInfo) { r.kind = MethodKindWorkPhone }

// TestAccept_DispatchesToCorrectVisitMethod tests visitor dispatch per variant
func TestAccept_DispatchesToCorrectVisitMethod(t *testing.T) {
	email := EmailContactInfo{Email: mustEmail(t, "a@b.co")}
	postal := PostalContactInfo{Address: mustPostal(t, "1 Main St", "CA", "90210")}
	phone := PhoneContactInfo{Number: mustPhone(t, "5551234567")}

	tests := []struct {
		name     string
		method   ContactMethod
		expected MethodKind
	}{
		{"Email", EmailMethod{Info: email}, MethodKindEmail},
		{"Postal", PostalMethod{Info: postal}, MethodKindPostal},
		{"Home phone", HomePhoneMethod{Info: phone}, MethodKindHomePhone},
		{"Work phone", WorkPhoneMethod{Info: phone}, MethodKindWorkPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &recordingVisitor{}
			tt.method.Accept(v)
			assert.Equal(t, tt.expected, v.kind)
			assert.Equal(t, tt.expected, KindOf(tt.method))
		})
	}
}

// TestMatchMethod_PanicsOnMissingCase tests that an unhandled case fails
// loudly instead of silently doing nothing
func TestMatchMethod_PanicsOnMissingCase(t *testing.T) {
	m := EmailMethod{Info: EmailContactInfo{Email: mustEmail(t, "a@b.co")}}
	assert.PanicsWithValue(t, "domain: MatchMethod missing Email case", func() {
		MatchMethod(m, MethodCases[string]{
			Postal:    func(PostalContactInfo) string { return "" },
			HomePhone: func(PhoneContactInfo) string { return "" },
			WorkPhone: func(PhoneContactInfo) string { return "" },
		})
	})
}

// TestMethodKind_IsValid tests kind recognition
func TestMethodKind_IsValid(t *testing.T) {
	assert.True(t, MethodKindEmail.IsValid())
	assert.True(t, MethodKindPostal.IsValid())
	assert.True(t, MethodKindHomePhone.IsValid())
	assert.True(t, MethodKindWorkPhone.IsValid())
	assert.False(t, MethodKind("carrier_pigeon").IsValid())
	assert.False(t, MethodKind("").IsValid())
}

// TestDescribeMethod tests the reporting consumer over every variant
func TestDescribeMethod(t *testing.T) {
	email := EmailContactInfo{Email: mustEmail(t, "a@b.co"), Verified: true}
	postal := PostalContactInfo{Address: mustPostal(t, "1 Main St", "ca", "90210")}
	phone := PhoneContactInfo{Number: mustPhone(t, "555-123-4567")}

	assert.Equal(t, "Email: a@b.co (verified)", DescribeMethod(EmailMethod{Info: email}))
	assert.Equal(t, "Postal: 1 Main St, CA 90210", DescribeMethod(PostalMethod{Info: postal}))
	assert.Equal(t, "Home phone: 5551234567", DescribeMethod(HomePhoneMethod{Info: phone}))
	assert.Equal(t, "Work phone: 5551234567", DescribeMethod(WorkPhoneMethod{Info: phone}))
}

// TestDescribeMethod_MultiLinePostal tests line joining and flag rendering
func TestDescribeMethod_MultiLinePostal(t *testing.T) {
	st, err := NewStateCode("NY")
	require.NoError(t, err)
	z, err := NewZipCode("10001")
	require.NoError(t, err)
	addr, err := NewPostalAddress("Apt 4B", "350 Fifth Ave", "", "", st, z)
	require.NoError(t, err)

	info := PostalContactInfo{Address: addr}.MarkValid()
	assert.Equal(t, "Postal: Apt 4B, 350 Fifth Ave, NY 10001 (validated)", DescribeMethod(PostalMethod{Info: info}))
}
