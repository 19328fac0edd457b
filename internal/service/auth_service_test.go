package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/pkg/api"
)

func TestSignup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	msg := testSignup
	resp, err := env.auth.Signup(ctx, connect.NewRequest(&msg))
	require.NoError(t, err)

	member := resp.Msg.Member
	assert.Regexp(t, `^MEM\d{6}$`, member.MemberID)
	assert.Equal(t, "Ada Lovelace", member.FullName)
	assert.Equal(t, "ada@example.com", member.Email)
	assert.NotZero(t, member.CreatedAt)

	t.Run("duplicate email", func(t *testing.T) {
		dup := testSignup
		dup.Email = "ADA@example.com"
		_, err := env.auth.Signup(ctx, connect.NewRequest(&dup))
		requireCode(t, connect.CodeAlreadyExists, err)
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.Signups.WithLabelValues("ok")))
}

func TestSignup_FieldErrors(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.auth.Signup(context.Background(), connect.NewRequest(&api.SignupRequest{
		FullName:    "Ada Lovelace",
		DateOfBirth: "2015-01-01",
		Email:       "not-an-email",
		Mobile:      "12345",
	}))
	requireCode(t, connect.CodeInvalidArgument, err)

	var cerr *connect.Error
	require.ErrorAs(t, err, &cerr)
	fields := cerr.Meta().Values(api.FieldErrorKey)
	assert.Contains(t, fields, "dateOfBirth: You must be at least 18 years old")
	assert.Contains(t, fields, "email: Please enter a valid email address")
	assert.Contains(t, fields, "mobile: Please enter a valid 10-digit mobile number")
}

func TestLogin_WrongCodeThenRightCode(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	memberID := env.signup(t)
	flowID := env.requestOTP(t, memberID)

	_, err := env.auth.VerifyOTP(ctx, connect.NewRequest(&api.VerifyOTPRequest{FlowID: flowID, OTP: "000000"}))
	requireCode(t, connect.CodeUnauthenticated, err)

	state, err := env.auth.GetLoginState(ctx, connect.NewRequest(&api.GetLoginStateRequest{FlowID: flowID}))
	require.NoError(t, err)
	assert.Equal(t, string(auth.StateOTPSent), state.Msg.Login.State)
	assert.Equal(t, 1, state.Msg.Login.Attempts)
	assert.Zero(t, env.profiles.Len(), "no profile before a valid code")

	resp, err := env.auth.VerifyOTP(ctx, connect.NewRequest(&api.VerifyOTPRequest{FlowID: flowID, OTP: testCode}))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Msg.Token)
	assert.Equal(t, memberID, resp.Msg.MemberID)
	assert.Equal(t, "Ada Lovelace", resp.Msg.FullName)
	assert.Equal(t, 1, env.profiles.Len())

	// the flow is finished
	_, err = env.auth.GetLoginState(ctx, connect.NewRequest(&api.GetLoginStateRequest{FlowID: flowID}))
	requireCode(t, connect.CodeNotFound, err)

	welcome, err := env.auth.GetWelcome(ctx, authed(resp.Msg.Token, &api.GetWelcomeRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "Welcome, Ada Lovelace!", welcome.Msg.Greeting)
	assert.Equal(t, memberID, welcome.Msg.MemberID)
}

func TestLogin_KeepsFlowWhenTokenIssueFails(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	flowID := env.requestOTP(t, env.signup(t))
	require.NoError(t, env.store.Close())

	_, err := env.auth.VerifyOTP(ctx, connect.NewRequest(&api.VerifyOTPRequest{FlowID: flowID, OTP: testCode}))
	requireCode(t, connect.CodeInternal, err)

	state, err := env.auth.GetLoginState(ctx, connect.NewRequest(&api.GetLoginStateRequest{FlowID: flowID}))
	require.NoError(t, err)
	assert.Equal(t, string(auth.StateValidated), state.Msg.Login.State)
	assert.Zero(t, env.profiles.Len())
}

func TestLogin_MalformedCode(t *testing.T) {
	env := setupTestServer(t)
	flowID := env.requestOTP(t, env.signup(t))

	_, err := env.auth.VerifyOTP(context.Background(), connect.NewRequest(&api.VerifyOTPRequest{FlowID: flowID, OTP: "12"}))
	requireCode(t, connect.CodeInvalidArgument, err)

	var cerr *connect.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{"otp: OTP must be 6 digits"}, cerr.Meta().Values(api.FieldErrorKey))
}

func TestLogin_TooManyAttempts(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	flowID := env.requestOTP(t, env.signup(t))

	for i := 0; i < 2; i++ {
		_, err := env.auth.VerifyOTP(ctx, connect.NewRequest(&api.VerifyOTPRequest{FlowID: flowID, OTP: "000000"}))
		requireCode(t, connect.CodeUnauthenticated, err)
	}
	_, err := env.auth.VerifyOTP(ctx, connect.NewRequest(&api.VerifyOTPRequest{FlowID: flowID, OTP: "000000"}))
	requireCode(t, connect.CodeResourceExhausted, err)

	// the locked flow is dropped; even the right code needs a new login
	_, err = env.auth.VerifyOTP(ctx, connect.NewRequest(&api.VerifyOTPRequest{FlowID: flowID, OTP: testCode}))
	requireCode(t, connect.CodeNotFound, err)
}

func TestRequestOTP_IdentityMismatch(t *testing.T) {
	env := setupTestServer(t)
	memberID := env.signup(t)

	_, err := env.auth.RequestOTP(context.Background(), connect.NewRequest(&api.RequestOTPRequest{
		MemberID:    memberID,
		DateOfBirth: "1991-01-01",
		Mobile:      testSignup.Mobile,
	}))
	requireCode(t, connect.CodeNotFound, err)
	assert.Zero(t, env.flows.Len(), "failed flow is not kept")
}

func TestRequestOTP_InvalidIdentity(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.auth.RequestOTP(context.Background(), connect.NewRequest(&api.RequestOTPRequest{}))
	requireCode(t, connect.CodeInvalidArgument, err)

	var cerr *connect.Error
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, cerr.Meta().Values(api.FieldErrorKey), 3)
}

func TestResendOTP_Cooldown(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	flowID := env.requestOTP(t, env.signup(t))

	state, err := env.auth.GetLoginState(ctx, connect.NewRequest(&api.GetLoginStateRequest{FlowID: flowID}))
	require.NoError(t, err)
	assert.Greater(t, state.Msg.Login.ResendInSeconds, 0)

	_, err = env.auth.ResendOTP(ctx, connect.NewRequest(&api.ResendOTPRequest{FlowID: flowID}))
	requireCode(t, connect.CodeFailedPrecondition, err)
}

func TestGetWelcome_RequiresToken(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.auth.GetWelcome(context.Background(), connect.NewRequest(&api.GetWelcomeRequest{}))
	requireCode(t, connect.CodeUnauthenticated, err)

	_, err = env.auth.GetWelcome(context.Background(), authed("garbage", &api.GetWelcomeRequest{}))
	requireCode(t, connect.CodeUnauthenticated, err)
}

func TestLogout_ClosesProfile(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	token := env.login(t)

	_, err := env.profile.GetProfile(ctx, authed(token, &api.GetProfileRequest{}))
	require.NoError(t, err)

	_, err = env.auth.Logout(ctx, authed(token, &api.LogoutRequest{}))
	require.NoError(t, err)
	assert.Zero(t, env.profiles.Len())
	assert.Zero(t, testutil.ToFloat64(env.metrics.OpenProfiles))

	_, err = env.profile.GetProfile(ctx, authed(token, &api.GetProfileRequest{}))
	requireCode(t, connect.CodeUnauthenticated, err)
}
