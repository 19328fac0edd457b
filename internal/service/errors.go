package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/internal/profile"
	"github.com/mmynk/memberportal/internal/validation"
	"github.com/mmynk/memberportal/pkg/api"
)

// toConnectError maps a domain error to the Connect code the client sees.
// Field validation errors carry one Field-Error metadata entry per field.
func toConnectError(err error) *connect.Error {
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return cerr
	}

	var fields validation.Errors
	if errors.As(err, &fields) {
		ce := connect.NewError(connect.CodeInvalidArgument, err)
		for _, f := range fields.Fields() {
			ce.Meta().Add(api.FieldErrorKey, f+": "+fields[f])
		}
		return ce
	}

	var upstream *auth.UpstreamError
	if errors.As(err, &upstream) {
		code := connect.CodeUnavailable
		if errors.Is(upstream, auth.ErrInvalidOTP) {
			code = connect.CodeUnauthenticated
		}
		return connect.NewError(code, errors.New(upstream.Message))
	}

	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)

	case errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrInvalidOTP),
		errors.Is(err, auth.ErrOTPExpired),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, profile.ErrNoProfile):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, auth.ErrTooManyAttempts):
		return connect.NewError(connect.CodeResourceExhausted, err)
	case errors.Is(err, auth.ErrIdentityMismatch),
		errors.Is(err, auth.ErrFlowNotFound),
		errors.Is(err, profile.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, auth.ErrUpstream):
		return connect.NewError(connect.CodeUnavailable, err)

	case errors.Is(err, auth.ErrResendCooldown),
		errors.Is(err, auth.ErrFlowState),
		errors.Is(err, profile.ErrLimitReached),
		errors.Is(err, profile.ErrNoDraft),
		errors.Is(err, profile.ErrNotEditing),
		errors.Is(err, profile.ErrNoChanges),
		errors.Is(err, profile.ErrNoPendingEntry),
		errors.Is(err, profile.ErrNoPendingRemoval):
		return connect.NewError(connect.CodeFailedPrecondition, err)

	case errors.Is(err, profile.ErrUnknownField),
		errors.Is(err, profile.ErrUnknownKind),
		errors.Is(err, profile.ErrUnknownTab),
		errors.Is(err, profile.ErrEmptyEntry),
		errors.Is(err, profile.ErrIndexOutOfRange):
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	return connect.NewError(connect.CodeInternal, err)
}

// outcome is the metrics label for the result of an operation.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(toConnectError(err)).String()
}
