package otpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/internal/models"
)

var identity = models.Identity{MemberID: "MEM123456", DateOfBirth: "1990-05-20", Mobile: "9876543210"}

type nopSender struct{}

func (nopSender) Send(context.Context, models.Identity, string) error { return nil }

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gateway := auth.NewLocalGateway(auth.FixedCode("123456"), auth.NewMemoryChallengeStore(), time.Minute,
		auth.WithSender(nopSender{}),
		auth.WithHashCost(bcrypt.MinCost),
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(NewRouter(New(gateway, logger)))
	t.Cleanup(server.Close)
	return server
}

func post(t *testing.T, url, body string) (int, string) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var status auth.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	return resp.StatusCode, status.Message
}

func TestGenerate(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"valid", `{"memberId":"MEM123456","dateOfBirth":"1990-05-20","contactNo":"9876543210"}`, http.StatusOK, MsgSent},
		{"bad json", `{"memberId":`, http.StatusBadRequest, MsgBadBody},
		{"bad mobile", `{"memberId":"MEM123456","dateOfBirth":"1990-05-20","contactNo":"12"}`, http.StatusBadRequest, "Please enter a valid 10-digit mobile number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := post(t, server.URL+auth.GenerateOTPPath, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestValidate(t *testing.T) {
	server := newServer(t)

	status, _ := post(t, server.URL+auth.ValidateOTPPath, `{"memberId":"MEM123456","otp":"123456"}`)
	assert.Equal(t, http.StatusGone, status, "nothing issued yet")

	status, _ = post(t, server.URL+auth.GenerateOTPPath, `{"memberId":"MEM123456","dateOfBirth":"1990-05-20","contactNo":"9876543210"}`)
	require.Equal(t, http.StatusOK, status)

	status, msg := post(t, server.URL+auth.ValidateOTPPath, `{"memberId":"MEM123456","otp":"000000"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, auth.MsgInvalidOTP, msg)

	status, msg = post(t, server.URL+auth.ValidateOTPPath, `{"memberId":"MEM123456","otp":"123456"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, MsgVerified, msg)
}

// The portal's HTTP gateway and this server agree on the wire format.
func TestHTTPGatewayAgainstServer(t *testing.T) {
	server := newServer(t)
	gw := auth.NewHTTPGateway(server.URL, time.Second)
	ctx := context.Background()

	require.NoError(t, gw.Issue(ctx, identity))

	err := gw.Validate(ctx, identity.MemberID, "000000")
	require.ErrorIs(t, err, auth.ErrInvalidOTP)
	assert.EqualError(t, err, auth.MsgInvalidOTP)

	require.NoError(t, gw.Validate(ctx, identity.MemberID, "123456"))

	bad := identity
	bad.Mobile = "12"
	err = gw.Issue(ctx, bad)
	require.ErrorIs(t, err, auth.ErrUpstream)
	assert.EqualError(t, err, "Please enter a valid 10-digit mobile number")
}
