package api

type SignupRequest struct {
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
}

type SignupResponse struct {
	Member Member `json:"member"`
}

// RequestOTPRequest starts a login. An empty FlowID starts a new flow.
type RequestOTPRequest struct {
	FlowID      string `json:"flowId,omitempty"`
	MemberID    string `json:"memberId"`
	DateOfBirth string `json:"dateOfBirth"`
	Mobile      string `json:"mobile"`
}

// LoginState describes where a login flow stands.
type LoginState struct {
	FlowID          string `json:"flowId"`
	State           string `json:"state"`
	ResendInSeconds int    `json:"resendInSeconds"`
	Attempts        int    `json:"attempts"`
}

type RequestOTPResponse struct {
	Login LoginState `json:"login"`
}

type ResendOTPRequest struct {
	FlowID string `json:"flowId"`
}

type ResendOTPResponse struct {
	Login LoginState `json:"login"`
}

type GetLoginStateRequest struct {
	FlowID string `json:"flowId"`
}

type GetLoginStateResponse struct {
	Login LoginState `json:"login"`
}

type VerifyOTPRequest struct {
	FlowID string `json:"flowId"`
	OTP    string `json:"otp"`
}

// VerifyOTPResponse carries the session token used as "Authorization: Bearer <token>".
type VerifyOTPResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	MemberID  string `json:"memberId"`
	FullName  string `json:"fullName,omitempty"`
}

type GetWelcomeRequest struct{}

type GetWelcomeResponse struct {
	MemberID string `json:"memberId"`
	FullName string `json:"fullName,omitempty"`
	Greeting string `json:"greeting"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}
