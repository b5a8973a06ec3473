package authv1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
	userstore "github.com/carson-networks/finance-tracker/internal/storage/user"
)

// RegisterBody is the request body for registering a new account.
type RegisterBody struct {
	Email     string `json:"email" required:"true" format:"email" doc:"Login email"`
	Password  string `json:"password" required:"true" minLength:"8" doc:"Password, at least 8 characters"`
	FirstName string `json:"firstName" doc:"First name"`
	LastName  string `json:"lastName" doc:"Last name"`
}

// RegisterInput is the Huma input for registering a new account.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterResponseBody is the response body for registering a new account.
type RegisterResponseBody struct {
	User   User      `json:"user" doc:"The created account"`
	Tokens TokenPair `json:"tokens" doc:"Tokens for the new session"`
}

// RegisterOutput is the Huma output for registering a new account.
type RegisterOutput struct {
	Status int
	Body   RegisterResponseBody
}

// registrar is the interface for creating accounts.
type registrar interface {
	Register(ctx context.Context, input service.RegisterInput) (*userstore.User, *auth.TokenPair, error)
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	Auth registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{Auth: svc}
}

// Register registers the registration endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/v1/auth/register",
		Summary:     "Register",
		Description: "Creates a new account and returns a token pair for it.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	created, pair, err := h.Auth.Register(ctx, service.RegisterInput{
		Email:     input.Body.Email,
		Password:  input.Body.Password,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
	})
	if err != nil {
		return nil, httperr.FromError("failed to register", err)
	}

	return &RegisterOutput{
		Status: http.StatusCreated,
		Body: RegisterResponseBody{
			User:   userFromStorage(created),
			Tokens: pairFromService(pair),
		},
	}, nil
}
