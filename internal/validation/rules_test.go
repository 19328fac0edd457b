package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZipCode(t *testing.T) {
	tests := []struct {
		in   string
		pass bool
	}{
		{"12345", true},
		{"123456", true},
		{"1234", false},
		{"1234567", false},
		{"12a45", false},
		{"", false},
		{" 12345", false},
		{"１２３４５", false}, // full-width digits are not ASCII
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.pass, ZipCode(tt.in) == "", "ZipCode(%q)", tt.in)
		})
	}
}

func TestCardNumber(t *testing.T) {
	assert.Empty(t, CardNumber("4111111111111111"))
	assert.Empty(t, CardNumber("0000000000000000"))
	assert.Equal(t, MsgCardNumber, CardNumber("411111111111111"))
	assert.Equal(t, MsgCardNumber, CardNumber("41111111111111112"))
	assert.Equal(t, MsgCardNumber, CardNumber("4111-1111-1111-11"))
	assert.Equal(t, MsgCardNumber, CardNumber("411111111111111x"))

	for i := 0; i < 16; i++ {
		digits := []byte(strings.Repeat("7", 16))
		digits[i] = 'a'
		assert.NotEmpty(t, CardNumber(string(digits)), "non-digit at %d", i)
	}
}

func TestExpiryDate(t *testing.T) {
	assert.Empty(t, ExpiryDate("01/25"))
	assert.Empty(t, ExpiryDate("12/99"))
	assert.Equal(t, MsgExpiryDate, ExpiryDate("13/25"))
	assert.Equal(t, MsgExpiryDate, ExpiryDate("1/25"))
	assert.Equal(t, MsgExpiryDate, ExpiryDate("00/25"))
	assert.Equal(t, MsgExpiryDate, ExpiryDate("01/2025"))
	assert.Equal(t, MsgExpiryDate, ExpiryDate("0125"))
}

func TestUPIID(t *testing.T) {
	assert.Empty(t, UPIID("jane.doe@okaxis"))
	assert.Empty(t, UPIID("98-76@upi"))
	assert.NotEmpty(t, UPIID("a@okaxis"), "local part too short")
	assert.NotEmpty(t, UPIID("jane@ok"), "domain too short")
	assert.NotEmpty(t, UPIID("jane@1bank"), "domain must start with a letter")
	assert.NotEmpty(t, UPIID("jane@ok.axis"), "no dots in domain")
	assert.NotEmpty(t, UPIID("janeokaxis"))
}

func TestMobile(t *testing.T) {
	assert.Empty(t, Mobile("9876543210"))
	assert.Equal(t, MsgMobileRequired, Mobile(""))
	assert.Equal(t, MsgMobile, Mobile("0876543210"), "leading zero")
	assert.Equal(t, MsgMobile, Mobile("987654321"))
	assert.Equal(t, MsgMobile, Mobile("98765432101"))
	assert.Equal(t, MsgMobile, Mobile("98765 4321"))
}

func TestFullName(t *testing.T) {
	assert.Empty(t, FullName("Jane Doe"))
	assert.Empty(t, FullName("  Jo  "))
	assert.Equal(t, MsgFullName, FullName("J"))
	assert.Equal(t, MsgFullName, FullName("Jane D0e"))
	assert.Equal(t, MsgFullName, FullName(strings.Repeat("a", 51)))
}

func TestOTP(t *testing.T) {
	assert.Equal(t, MsgOTPRequired, OTP(""))
	assert.Equal(t, MsgOTPFormat, OTP("12345"))
	assert.Equal(t, MsgOTPFormat, OTP("12a456"))
	assert.Empty(t, OTP("000000"))
}

func TestAge(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		dob  string
		want int
	}{
		{"2008-03-15", 18},
		{"2008-03-16", 17},
		{"2008-02-29", 18},
		{"1990-12-31", 35},
	}
	for _, tt := range tests {
		got, err := Age(tt.dob, now)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.dob)
	}

	_, err := Age("15/03/2008", now)
	assert.Error(t, err)
}

func TestDateOfBirth(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, MsgDOBRequired, DateOfBirth("", now))
	assert.Equal(t, MsgDOBInvalid, DateOfBirth("not-a-date", now))
	assert.Equal(t, MsgDOBUnderage, DateOfBirth("2008-03-16", now))
	assert.Empty(t, DateOfBirth("2008-03-15", now))
	assert.Empty(t, DateOfBirth("1906-03-15", now), "exactly 120")
	assert.Equal(t, MsgDOBInvalid, DateOfBirth("1905-03-15", now), "121")
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "0", FormatExpiry("0"))
	assert.Equal(t, "01/", FormatExpiry("01"))
	assert.Equal(t, "01/2", FormatExpiry("012"))
	assert.Equal(t, "01/25", FormatExpiry("0125"))
	assert.Equal(t, "01/25", FormatExpiry("01/25"))
	assert.Equal(t, "12/30", FormatExpiry("12-3099"))
}
