// Package otpserver is a stand-in for the remote OTP service. It serves the two
// endpoints the portal calls in remote mode and keeps challenges in memory.
package otpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mmynk/memberportal/internal/auth"
	"github.com/mmynk/memberportal/internal/models"
	"github.com/mmynk/memberportal/internal/validation"
)

// Messages returned in the response body.
const (
	MsgSent     = "OTP sent successfully"
	MsgVerified = "OTP verified successfully"
	MsgExpired  = "OTP expired. Please request a new one."
	MsgBadBody  = "Invalid request body"
)

// Handler wires the OTP endpoints to a gateway that issues and checks codes.
type Handler struct {
	gateway auth.Gateway
	logger  *slog.Logger
}

// New constructs a handler. In practice gateway is a *auth.LocalGateway.
func New(gateway auth.Gateway, logger *slog.Logger) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
	}
}

// Register mounts the OTP endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post(auth.GenerateOTPPath, h.HandleGenerate)
	r.Post(auth.ValidateOTPPath, h.HandleValidate)
}

// NewRouter returns a router with the OTP endpoints, request ids and panic recovery.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	h.Register(r)
	return r
}

// HandleGenerate handles POST /users/generate-otp requests.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	var req auth.GenerateOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, MsgBadBody)
		return
	}

	id := models.Identity{
		MemberID:    req.MemberID,
		DateOfBirth: req.DateOfBirth,
		Mobile:      req.ContactNo,
	}
	if err := validation.Identity(id); err != nil {
		writeStatus(w, http.StatusBadRequest, firstMessage(err))
		return
	}

	err := h.gateway.Issue(ctx, id)
	switch {
	case errors.Is(err, auth.ErrIdentityMismatch):
		writeStatus(w, http.StatusNotFound, "Member details do not match our records")
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "otp issue failed",
			"request_id", requestID,
			"member_id", req.MemberID,
			"error", err,
		)
		writeStatus(w, http.StatusInternalServerError, auth.MsgIssueFailed)
		return
	}

	h.logger.InfoContext(ctx, "otp issued",
		"request_id", requestID,
		"member_id", req.MemberID,
	)
	writeStatus(w, http.StatusOK, MsgSent)
}

// HandleValidate handles POST /users/validate-otp requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	var req auth.ValidateOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, MsgBadBody)
		return
	}

	err := h.gateway.Validate(ctx, req.MemberID, req.OTP)
	switch {
	case errors.Is(err, auth.ErrInvalidOTP):
		writeStatus(w, http.StatusUnauthorized, auth.MsgInvalidOTP)
		return
	case errors.Is(err, auth.ErrOTPExpired):
		writeStatus(w, http.StatusGone, MsgExpired)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "otp validation failed",
			"request_id", requestID,
			"member_id", req.MemberID,
			"error", err,
		)
		writeStatus(w, http.StatusInternalServerError, "Failed to validate OTP.")
		return
	}

	h.logger.InfoContext(ctx, "otp verified",
		"request_id", requestID,
		"member_id", req.MemberID,
	)
	writeStatus(w, http.StatusOK, MsgVerified)
}

func writeStatus(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(auth.StatusResponse{Message: msg})
}

// firstMessage returns the message of the alphabetically first failing field.
func firstMessage(err error) string {
	var errs validation.Errors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs[errs.Fields()[0]]
	}
	return err.Error()
}
