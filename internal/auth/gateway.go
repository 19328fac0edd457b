package auth

import (
	"context"
	"errors"

	"github.com/mmynk/memberportal/internal/models"
)

var (
	ErrInvalidOTP = errors.New("invalid OTP")
	ErrOTPExpired = errors.New("OTP expired or was never issued")
	ErrUpstream   = errors.New("OTP service unavailable")
)

// Messages shown when the OTP service gives no reason of its own.
const (
	MsgIssueFailed = "Failed to generate OTP."
	MsgInvalidOTP  = "Invalid OTP. Please try again."
)

// Gateway issues one-time codes for a login identity and checks them.
// Implementations return ErrInvalidOTP for a wrong code.
type Gateway interface {
	Issue(ctx context.Context, id models.Identity) error
	Validate(ctx context.Context, memberID, code string) error
}

// UpstreamError is a failure reported by a remote OTP service.
// It matches ErrInvalidOTP or ErrUpstream with errors.Is, depending on Kind.
type UpstreamError struct {
	Status  int
	Message string
	Kind    error
	Cause   error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
