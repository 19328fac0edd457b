package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/memberportal/pkg/api"
)

// AuthServiceName is the fully-qualified name of the AuthService.
const AuthServiceName = "memberportal.v1.AuthService"

// Procedure paths of the AuthService.
const (
	AuthServiceSignupProcedure        = "/memberportal.v1.AuthService/Signup"
	AuthServiceRequestOTPProcedure    = "/memberportal.v1.AuthService/RequestOTP"
	AuthServiceResendOTPProcedure     = "/memberportal.v1.AuthService/ResendOTP"
	AuthServiceGetLoginStateProcedure = "/memberportal.v1.AuthService/GetLoginState"
	AuthServiceVerifyOTPProcedure     = "/memberportal.v1.AuthService/VerifyOTP"
	AuthServiceGetWelcomeProcedure    = "/memberportal.v1.AuthService/GetWelcome"
	AuthServiceLogoutProcedure        = "/memberportal.v1.AuthService/Logout"
)

// AuthServiceHandler covers signup, the OTP login flow and the session greeting.
type AuthServiceHandler interface {
	// Signup creates a member account.
	Signup(context.Context, *connect.Request[api.SignupRequest]) (*connect.Response[api.SignupResponse], error)
	// RequestOTP validates the login identity and sends a one-time code.
	RequestOTP(context.Context, *connect.Request[api.RequestOTPRequest]) (*connect.Response[api.RequestOTPResponse], error)
	// ResendOTP sends a new code once the resend cooldown is over.
	ResendOTP(context.Context, *connect.Request[api.ResendOTPRequest]) (*connect.Response[api.ResendOTPResponse], error)
	// GetLoginState reports the step and resend countdown of a login flow.
	GetLoginState(context.Context, *connect.Request[api.GetLoginStateRequest]) (*connect.Response[api.GetLoginStateResponse], error)
	// VerifyOTP checks the code and returns a session token.
	VerifyOTP(context.Context, *connect.Request[api.VerifyOTPRequest]) (*connect.Response[api.VerifyOTPResponse], error)
	// GetWelcome greets the authenticated member.
	GetWelcome(context.Context, *connect.Request[api.GetWelcomeRequest]) (*connect.Response[api.GetWelcomeResponse], error)
	// Logout closes the member's profile session.
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for svc. It returns the path to mount it on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	signupHandler := connect.NewUnaryHandler(AuthServiceSignupProcedure, svc.Signup, opts...)
	requestOTPHandler := connect.NewUnaryHandler(AuthServiceRequestOTPProcedure, svc.RequestOTP, opts...)
	resendOTPHandler := connect.NewUnaryHandler(AuthServiceResendOTPProcedure, svc.ResendOTP, opts...)
	getLoginStateHandler := connect.NewUnaryHandler(AuthServiceGetLoginStateProcedure, svc.GetLoginState, opts...)
	verifyOTPHandler := connect.NewUnaryHandler(AuthServiceVerifyOTPProcedure, svc.VerifyOTP, opts...)
	getWelcomeHandler := connect.NewUnaryHandler(AuthServiceGetWelcomeProcedure, svc.GetWelcome, opts...)
	logoutHandler := connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...)
	return "/memberportal.v1.AuthService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceSignupProcedure:
			signupHandler.ServeHTTP(w, r)
		case AuthServiceRequestOTPProcedure:
			requestOTPHandler.ServeHTTP(w, r)
		case AuthServiceResendOTPProcedure:
			resendOTPHandler.ServeHTTP(w, r)
		case AuthServiceGetLoginStateProcedure:
			getLoginStateHandler.ServeHTTP(w, r)
		case AuthServiceVerifyOTPProcedure:
			verifyOTPHandler.ServeHTTP(w, r)
		case AuthServiceGetWelcomeProcedure:
			getWelcomeHandler.ServeHTTP(w, r)
		case AuthServiceLogoutProcedure:
			logoutHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// AuthServiceClient is a client for the AuthService.
type AuthServiceClient interface {
	Signup(context.Context, *connect.Request[api.SignupRequest]) (*connect.Response[api.SignupResponse], error)
	RequestOTP(context.Context, *connect.Request[api.RequestOTPRequest]) (*connect.Response[api.RequestOTPResponse], error)
	ResendOTP(context.Context, *connect.Request[api.ResendOTPRequest]) (*connect.Response[api.ResendOTPResponse], error)
	GetLoginState(context.Context, *connect.Request[api.GetLoginStateRequest]) (*connect.Response[api.GetLoginStateResponse], error)
	VerifyOTP(context.Context, *connect.Request[api.VerifyOTPRequest]) (*connect.Response[api.VerifyOTPResponse], error)
	GetWelcome(context.Context, *connect.Request[api.GetWelcomeRequest]) (*connect.Response[api.GetWelcomeResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
}

// NewAuthServiceClient creates a client for the AuthService at baseURL (e.g. http://localhost:8080).
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	opts = clientOptions(opts)
	return &authServiceClient{
		signup:        connect.NewClient[api.SignupRequest, api.SignupResponse](httpClient, baseURL+AuthServiceSignupProcedure, opts...),
		requestOTP:    connect.NewClient[api.RequestOTPRequest, api.RequestOTPResponse](httpClient, baseURL+AuthServiceRequestOTPProcedure, opts...),
		resendOTP:     connect.NewClient[api.ResendOTPRequest, api.ResendOTPResponse](httpClient, baseURL+AuthServiceResendOTPProcedure, opts...),
		getLoginState: connect.NewClient[api.GetLoginStateRequest, api.GetLoginStateResponse](httpClient, baseURL+AuthServiceGetLoginStateProcedure, opts...),
		verifyOTP:     connect.NewClient[api.VerifyOTPRequest, api.VerifyOTPResponse](httpClient, baseURL+AuthServiceVerifyOTPProcedure, opts...),
		getWelcome:    connect.NewClient[api.GetWelcomeRequest, api.GetWelcomeResponse](httpClient, baseURL+AuthServiceGetWelcomeProcedure, opts...),
		logout:        connect.NewClient[api.LogoutRequest, api.LogoutResponse](httpClient, baseURL+AuthServiceLogoutProcedure, opts...),
	}
}

type authServiceClient struct {
	signup        *connect.Client[api.SignupRequest, api.SignupResponse]
	requestOTP    *connect.Client[api.RequestOTPRequest, api.RequestOTPResponse]
	resendOTP     *connect.Client[api.ResendOTPRequest, api.ResendOTPResponse]
	getLoginState *connect.Client[api.GetLoginStateRequest, api.GetLoginStateResponse]
	verifyOTP     *connect.Client[api.VerifyOTPRequest, api.VerifyOTPResponse]
	getWelcome    *connect.Client[api.GetWelcomeRequest, api.GetWelcomeResponse]
	logout        *connect.Client[api.LogoutRequest, api.LogoutResponse]
}

func (c *authServiceClient) Signup(ctx context.Context, req *connect.Request[api.SignupRequest]) (*connect.Response[api.SignupResponse], error) {
	return c.signup.CallUnary(ctx, req)
}

func (c *authServiceClient) RequestOTP(ctx context.Context, req *connect.Request[api.RequestOTPRequest]) (*connect.Response[api.RequestOTPResponse], error) {
	return c.requestOTP.CallUnary(ctx, req)
}

func (c *authServiceClient) ResendOTP(ctx context.Context, req *connect.Request[api.ResendOTPRequest]) (*connect.Response[api.ResendOTPResponse], error) {
	return c.resendOTP.CallUnary(ctx, req)
}

func (c *authServiceClient) GetLoginState(ctx context.Context, req *connect.Request[api.GetLoginStateRequest]) (*connect.Response[api.GetLoginStateResponse], error) {
	return c.getLoginState.CallUnary(ctx, req)
}

func (c *authServiceClient) VerifyOTP(ctx context.Context, req *connect.Request[api.VerifyOTPRequest]) (*connect.Response[api.VerifyOTPResponse], error) {
	return c.verifyOTP.CallUnary(ctx, req)
}

func (c *authServiceClient) GetWelcome(ctx context.Context, req *connect.Request[api.GetWelcomeRequest]) (*connect.Response[api.GetWelcomeResponse], error) {
	return c.getWelcome.CallUnary(ctx, req)
}

func (c *authServiceClient) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}
