package models

// Member represents a registered plan member.
// Members are created by signup and looked up when a login asks for an OTP.
type Member struct {
	// MemberID is the opaque member identifier printed on the member card (e.g. "MEM123456").
	MemberID string `json:"memberId"`

	// FullName is the member's name as entered at signup.
	FullName string `json:"fullName"`

	// DateOfBirth is an ISO date (YYYY-MM-DD).
	DateOfBirth string `json:"dateOfBirth"`

	// Email is the member's email address (unique).
	Email string `json:"email"`

	// Mobile is the 10-digit mobile number OTPs are sent to.
	Mobile string `json:"mobile"`

	// CreatedAt is the Unix timestamp when the member signed up.
	CreatedAt int64 `json:"createdAt"`
}
