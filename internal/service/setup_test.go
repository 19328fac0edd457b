package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/internal/metrics"
	"github.com/mmynk/memberportal/internal/middleware"
	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/profile"
	"github.com/mmynk/memberportal/internal/storage/sqlite"
	"github.com/mmynk/memberportal/pkg/api"
	"github.com/mmynk/memberportal/pkg/api/apiconnect"
)

const testCode = "123456"

var testSignup = api.SignupRequest{
	FullName:    "Ada Lovelace",
	DateOfBirth: "1990-05-20",
	Email:       "ada@example.com",
	Mobile:      "9876543210",
}

type nopSender struct{}

func (nopSender) Send(context.Context, models.Identity, string) error { return nil }

type testEnv struct {
	auth     apiconnect.AuthServiceClient
	profile  apiconnect.ProfileServiceClient
	profiles *profile.Registry
	flows    *auth.Flows
	metrics  *metrics.Metrics
	store    *sqlite.SQLiteStore
}

// setupTestServer starts both services behind the auth interceptor, backed by a temp
// SQLite directory and a local gateway that always issues testCode.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())

	enroller := auth.NewEnroller(store)
	gateway := auth.NewLocalGateway(auth.FixedCode(testCode), auth.NewMemoryChallengeStore(), time.Minute,
		auth.WithIdentityCheck(enroller),
		auth.WithSender(nopSender{}),
		auth.WithHashCost(bcrypt.MinCost),
	)
	flows := auth.NewFlows(NewMeteredGateway(gateway, m), auth.FlowConfig{
		ResendCooldown: 30 * time.Second,
		Tick:           10 * time.Millisecond,
		MaxAttempts:    3,
	}, time.Minute)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	profiles := profile.NewRegistry()

	authSvc := NewAuthService(enroller, flows, jwtManager, profiles, m, logger)
	profileSvc := NewProfileService(profiles, m, logger)

	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager, PublicProcedures...),
	)
	authPath, authHandler := apiconnect.NewAuthServiceHandler(authSvc, interceptors)
	profilePath, profileHandler := apiconnect.NewProfileServiceHandler(profileSvc, interceptors)

	mux := http.NewServeMux()
	mux.Handle(authPath, authHandler)
	mux.Handle(profilePath, profileHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{
		auth:     apiconnect.NewAuthServiceClient(server.Client(), server.URL),
		profile:  apiconnect.NewProfileServiceClient(server.Client(), server.URL),
		profiles: profiles,
		flows:    flows,
		metrics:  m,
		store:    store,
	}
}

// signup creates the test member and returns its id.
func (e *testEnv) signup(t *testing.T) string {
	t.Helper()
	msg := testSignup
	resp, err := e.auth.Signup(context.Background(), connect.NewRequest(&msg))
	require.NoError(t, err)
	return resp.Msg.Member.MemberID
}

// requestOTP starts a login for the member and returns the flow id.
func (e *testEnv) requestOTP(t *testing.T, memberID string) string {
	t.Helper()
	resp, err := e.auth.RequestOTP(context.Background(), connect.NewRequest(&api.RequestOTPRequest{
		MemberID:    memberID,
		DateOfBirth: testSignup.DateOfBirth,
		Mobile:      testSignup.Mobile,
	}))
	require.NoError(t, err)
	return resp.Msg.Login.FlowID
}

// login signs up the test member, completes the OTP flow and returns the session token.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	flowID := e.requestOTP(t, e.signup(t))
	resp, err := e.auth.VerifyOTP(context.Background(), connect.NewRequest(&api.VerifyOTPRequest{
		FlowID: flowID,
		OTP:    testCode,
	}))
	require.NoError(t, err)
	return resp.Msg.Token
}

// authed wraps msg in a request carrying the bearer token.
func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func requireCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}
