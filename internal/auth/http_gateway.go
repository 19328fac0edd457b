package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmynk/memberportal/internal/models"
)

// Paths of the remote OTP service.
const (
	GenerateOTPPath = "/users/generate-otp"
	ValidateOTPPath = "/users/validate-otp"
)

// GenerateOTPRequest is the body sent to GenerateOTPPath.
type GenerateOTPRequest struct {
	MemberID    string `json:"memberId"`
	DateOfBirth string `json:"dateOfBirth"`
	ContactNo   string `json:"contactNo"`
}

// ValidateOTPRequest is the body sent to ValidateOTPPath.
type ValidateOTPRequest struct {
	MemberID string `json:"memberId"`
	OTP      string `json:"otp"`
}

// StatusResponse is the body the OTP service answers with.
type StatusResponse struct {
	Message string `json:"message,omitempty"`
}

// HTTPGateway talks to a remote OTP service. Only HTTP 200 counts as success.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway creates a gateway for the service at baseURL.
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Issue asks the service to send a code to the member.
func (g *HTTPGateway) Issue(ctx context.Context, id models.Identity) error {
	return g.post(ctx, GenerateOTPPath, GenerateOTPRequest{
		MemberID:    id.MemberID,
		DateOfBirth: id.DateOfBirth,
		ContactNo:   id.Mobile,
	}, MsgIssueFailed, ErrUpstream)
}

// Validate checks code with the service. Any 4xx answer means the code was rejected.
func (g *HTTPGateway) Validate(ctx context.Context, memberID, code string) error {
	return g.post(ctx, ValidateOTPPath, ValidateOTPRequest{
		MemberID: memberID,
		OTP:      code,
	}, MsgInvalidOTP, ErrInvalidOTP)
}

func (g *HTTPGateway) post(ctx context.Context, path string, body any, fallback string, rejected error) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return &UpstreamError{Message: fallback, Kind: ErrUpstream, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	msg := fallback
	var status StatusResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&status); err == nil && status.Message != "" {
		msg = status.Message
	}

	kind := ErrUpstream
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		kind = rejected
	}
	return &UpstreamError{Status: resp.StatusCode, Message: msg, Kind: kind}
}
