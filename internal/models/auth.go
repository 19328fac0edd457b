package models

// Identity is what a member types on the login screen to request an OTP.
type Identity struct {
	MemberID    string `json:"memberId" validate:"required,memberid"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,isodate"`
	Mobile      string `json:"mobile" validate:"required,mobile"`
}

// SignupForm is the data collected by the signup screen.
// DateOfBirth is checked separately because the age rule depends on the current date.
type SignupForm struct {
	FullName    string `json:"fullName" validate:"required,fullname"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile" validate:"required,phone10"`
}
