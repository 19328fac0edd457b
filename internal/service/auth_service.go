package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"connectrpc.com/connect"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/internal/metrics"
	"github.com/mmynk/memberportal/internal/middleware"
	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/profile"
	"github.com/mmynk/memberportal/pkg/api"
	"github.com/mmynk/memberportal/pkg/api/apiconnect"
)

// PublicProcedures can be called without a session token.
var PublicProcedures = []string{
	apiconnect.AuthServiceSignupProcedure,
	apiconnect.AuthServiceRequestOTPProcedure,
	apiconnect.AuthServiceResendOTPProcedure,
	apiconnect.AuthServiceGetLoginStateProcedure,
	apiconnect.AuthServiceVerifyOTPProcedure,
}

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	enroller   *auth.Enroller
	flows      *auth.Flows
	jwtManager *auth.JWTManager
	profiles   *profile.Registry
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	enroller *auth.Enroller,
	flows *auth.Flows,
	jwtManager *auth.JWTManager,
	profiles *profile.Registry,
	m *metrics.Metrics,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		enroller:   enroller,
		flows:      flows,
		jwtManager: jwtManager,
		profiles:   profiles,
		metrics:    m,
		logger:     logger,
	}
}

// Signup creates a new member account.
func (s *AuthService) Signup(ctx context.Context, req *connect.Request[api.SignupRequest]) (*connect.Response[api.SignupResponse], error) {
	s.logger.Info("Signup request", "email", req.Msg.Email)

	member, err := s.enroller.Signup(ctx, models.SignupForm{
		FullName:    req.Msg.FullName,
		DateOfBirth: req.Msg.DateOfBirth,
		Email:       req.Msg.Email,
		Mobile:      req.Msg.Mobile,
	})
	s.metrics.IncrementSignup(outcome(err))
	if err != nil {
		s.logger.Warn("Signup failed", "email", req.Msg.Email, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Member signed up", "member_id", member.MemberID)
	return connect.NewResponse(&api.SignupResponse{Member: *member}), nil
}

// RequestOTP validates the login identity and asks the OTP gateway for a code.
// With an empty flow id a new login flow is started; a flow that failed to send
// can be retried by passing its id.
func (s *AuthService) RequestOTP(ctx context.Context, req *connect.Request[api.RequestOTPRequest]) (*connect.Response[api.RequestOTPResponse], error) {
	s.logger.Info("RequestOTP request", "member_id", req.Msg.MemberID)

	var (
		flow    *auth.Flow
		started bool
		err     error
	)
	if req.Msg.FlowID == "" {
		flow = s.flows.Start()
		started = true
	} else if flow, err = s.flows.Get(req.Msg.FlowID); err != nil {
		return nil, toConnectError(err)
	}

	err = flow.Send(ctx, models.Identity{
		MemberID:    req.Msg.MemberID,
		DateOfBirth: req.Msg.DateOfBirth,
		Mobile:      req.Msg.Mobile,
	})
	s.metrics.IncrementOTPRequest("issue", outcome(err))
	if err != nil {
		if started {
			s.flows.Remove(flow.ID())
		}
		s.logger.Warn("OTP request failed", "member_id", req.Msg.MemberID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("OTP sent", "member_id", req.Msg.MemberID, "flow_id", flow.ID())
	return connect.NewResponse(&api.RequestOTPResponse{Login: loginState(flow)}), nil
}

// ResendOTP issues a fresh code once the resend cooldown has run out.
func (s *AuthService) ResendOTP(ctx context.Context, req *connect.Request[api.ResendOTPRequest]) (*connect.Response[api.ResendOTPResponse], error) {
	flow, err := s.flows.Get(req.Msg.FlowID)
	if err != nil {
		return nil, toConnectError(err)
	}

	err = flow.Resend(ctx)
	s.metrics.IncrementOTPRequest("resend", outcome(err))
	if err != nil {
		s.logger.Warn("OTP resend failed", "flow_id", flow.ID(), "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("OTP resent", "member_id", flow.Identity().MemberID, "flow_id", flow.ID())
	return connect.NewResponse(&api.ResendOTPResponse{Login: loginState(flow)}), nil
}

// GetLoginState reports the step, attempts and resend countdown of a login flow.
func (s *AuthService) GetLoginState(ctx context.Context, req *connect.Request[api.GetLoginStateRequest]) (*connect.Response[api.GetLoginStateResponse], error) {
	flow, err := s.flows.Get(req.Msg.FlowID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetLoginStateResponse{Login: loginState(flow)}), nil
}

// VerifyOTP checks the code. On success it returns a session token and opens the
// member's profile; on failure the flow stays on the code step.
func (s *AuthService) VerifyOTP(ctx context.Context, req *connect.Request[api.VerifyOTPRequest]) (*connect.Response[api.VerifyOTPResponse], error) {
	flow, err := s.flows.Get(req.Msg.FlowID)
	if err != nil {
		return nil, toConnectError(err)
	}

	identity, err := flow.Verify(ctx, req.Msg.OTP)
	s.metrics.IncrementOTPVerification(outcome(err))
	if err != nil {
		if errors.Is(err, auth.ErrTooManyAttempts) {
			s.flows.Remove(flow.ID())
		}
		s.logger.Warn("OTP verification failed", "flow_id", flow.ID(), "attempts", flow.Attempts(), "error", err)
		return nil, toConnectError(err)
	}

	// The member may be unknown locally when codes come from a remote OTP service.
	member, err := s.enroller.Lookup(ctx, identity.MemberID)
	if err != nil {
		s.logger.Error("Member lookup failed", "member_id", identity.MemberID, "error", err)
		return nil, toConnectError(err)
	}
	var name string
	if member != nil {
		name = member.FullName
	}

	token, expires, err := s.jwtManager.Generate(identity.MemberID, name)
	if err != nil {
		s.logger.Error("Failed to generate token", "member_id", identity.MemberID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	// Kept until the token exists so a failed lookup can be retried without a new code.
	s.flows.Remove(flow.ID())

	if s.profiles.Open(identity.MemberID, member) {
		s.metrics.SetOpenProfiles(s.profiles.Len())
	}

	s.logger.Info("Member logged in", "member_id", identity.MemberID)
	return connect.NewResponse(&api.VerifyOTPResponse{
		Token:     token,
		ExpiresAt: expires.Unix(),
		MemberID:  identity.MemberID,
		FullName:  name,
	}), nil
}

// GetWelcome greets the authenticated member.
func (s *AuthService) GetWelcome(ctx context.Context, req *connect.Request[api.GetWelcomeRequest]) (*connect.Response[api.GetWelcomeResponse], error) {
	memberID := middleware.GetMemberID(ctx)
	if memberID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	name := middleware.GetName(ctx)

	greeting := "Welcome, User!"
	if name != "" {
		greeting = "Welcome, " + name + "!"
	}
	return connect.NewResponse(&api.GetWelcomeResponse{
		MemberID: memberID,
		FullName: name,
		Greeting: greeting,
	}), nil
}

// Logout drops the member's in-memory profile. The token itself stays valid until it
// expires; clients discard it.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	memberID := middleware.GetMemberID(ctx)
	if memberID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	if s.profiles.Close(memberID) {
		s.metrics.SetOpenProfiles(s.profiles.Len())
	}
	s.logger.Info("Member logged out", "member_id", memberID)
	return connect.NewResponse(&api.LogoutResponse{}), nil
}

func loginState(f *auth.Flow) api.LoginState {
	return api.LoginState{
		FlowID:          f.ID(),
		State:           string(f.State()),
		ResendInSeconds: int(math.Ceil(f.ResendIn().Seconds())),
		Attempts:        f.Attempts(),
	}
}
