// Package validation holds the portal's field rules and turns struct validation
// failures into per-field message maps.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for every date of birth.
const DateLayout = "2006-01-02"

// Age bounds for signup.
const (
	MinSignupAge = 18
	MaxSignupAge = 120
)

var (
	zipCodeRe     = regexp.MustCompile(`^\d{5,6}$`)
	cardNumberRe  = regexp.MustCompile(`^\d{16}$`)
	expiryRe      = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	upiRe         = regexp.MustCompile(`^[a-zA-Z0-9.-]{2,256}@[a-zA-Z][a-zA-Z]{2,64}$`)
	mobileRe      = regexp.MustCompile(`^[1-9][0-9]{9}$`) // 10 digits, no leading zero
	phone10Re     = regexp.MustCompile(`^[0-9]{10}$`)
	fullNameRe    = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	emailRe       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	memberIDRe    = regexp.MustCompile(`^[A-Za-z0-9]{6,20}$`)
	otpRe         = regexp.MustCompile(`^\d{6}$`)
	countryCodeRe = regexp.MustCompile(`^\+\d{1,3}$`)
)

// Messages returned by the single-field rules.
const (
	MsgZipCode        = "Enter a valid ZIP code"
	MsgCardNumber     = "Enter a valid 16-digit card number"
	MsgExpiryDate     = "Enter a valid expiry date (MM/YY)"
	MsgUPIID          = "Enter a valid UPI ID"
	MsgMobile         = "Please enter a valid 10-digit mobile number"
	MsgFullName       = "Please enter a valid name (2-50 characters, letters only)"
	MsgEmail          = "Please enter a valid email address"
	MsgOTPRequired    = "Please enter the OTP."
	MsgOTPFormat      = "OTP must be 6 digits"
	MsgDOBRequired    = "Date of birth is required"
	MsgDOBInvalid     = "Please enter a valid date of birth"
	MsgDOBUnderage    = "You must be at least 18 years old"
	MsgMemberID       = "Enter a valid member ID"
	MsgMobileRequired = "Mobile number is required"
)

// ZipCode accepts 5 or 6 ASCII digits.
func ZipCode(v string) string {
	return check(zipCodeRe.MatchString(v), MsgZipCode)
}

// CardNumber accepts exactly 16 ASCII digits.
func CardNumber(v string) string {
	return check(cardNumberRe.MatchString(v), MsgCardNumber)
}

// ExpiryDate accepts MM/YY with a two-digit month between 01 and 12.
func ExpiryDate(v string) string {
	return check(expiryRe.MatchString(v), MsgExpiryDate)
}

// UPIID accepts local@domain handles.
func UPIID(v string) string {
	return check(upiRe.MatchString(v), MsgUPIID)
}

// Mobile is the rule behind the "verify" action: 10 digits not starting with 0.
func Mobile(v string) string {
	if v == "" {
		return MsgMobileRequired
	}
	return check(mobileRe.MatchString(v), MsgMobile)
}

// FullName applies the signup name rule to the trimmed value.
func FullName(v string) string {
	return check(fullNameRe.MatchString(strings.TrimSpace(v)), MsgFullName)
}

// Email is a loose shape check: something@something.tld without spaces.
func Email(v string) string {
	return check(emailRe.MatchString(v), MsgEmail)
}

// OTP checks the shape of an entered code before it is sent for validation.
func OTP(code string) string {
	if code == "" {
		return MsgOTPRequired
	}
	return check(otpRe.MatchString(code), MsgOTPFormat)
}

// DateOfBirth applies the signup age window relative to now.
func DateOfBirth(v string, now time.Time) string {
	if v == "" {
		return MsgDOBRequired
	}
	age, err := Age(v, now)
	if err != nil {
		return MsgDOBInvalid
	}
	if age < MinSignupAge {
		return MsgDOBUnderage
	}
	if age > MaxSignupAge {
		return MsgDOBInvalid
	}
	return ""
}

// Age returns the calendar age in whole years at now.
// The year difference is reduced by one when the birthday hasn't come yet this year.
func Age(dob string, now time.Time) (int, error) {
	birth, err := time.Parse(DateLayout, dob)
	if err != nil {
		return 0, err
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, nil
}

// FormatExpiry normalizes typed expiry input the way the payment form does:
// non-digits are dropped and a slash is inserted after the month.
func FormatExpiry(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) >= 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// isPastDate reports whether v is an ISO date that is not in the future.
func isPastDate(v string, now time.Time) bool {
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		return false
	}
	return !d.After(now)
}

func check(ok bool, msg string) string {
	if ok {
		return ""
	}
	return msg
}
