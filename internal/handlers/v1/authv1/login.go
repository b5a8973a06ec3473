package authv1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	userstore "github.com/carson-networks/finance-tracker/internal/storage/user"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" format:"email" doc:"Login email"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginResponseBody is the response body for logging in.
type LoginResponseBody struct {
	User   User      `json:"user" doc:"The authenticated account"`
	Tokens TokenPair `json:"tokens" doc:"Tokens for the new session"`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body LoginResponseBody
}

// authenticator is the interface for password logins.
type authenticator interface {
	Login(ctx context.Context, email, password string) (*userstore.User, *auth.TokenPair, error)
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	Auth authenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{Auth: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Verifies credentials and returns a token pair.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	account, pair, err := h.Auth.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.FromError("invalid credentials", err)
	}

	return &LoginOutput{
		Body: LoginResponseBody{
			User:   userFromStorage(account),
			Tokens: pairFromService(pair),
		},
	}, nil
}
