package authv1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
)

// RefreshBody is the request body for refreshing a session.
type RefreshBody struct {
	RefreshToken string `json:"refreshToken" required:"true" doc:"Refresh token from a previous login"`
}

// RefreshInput is the Huma input for refreshing a session.
type RefreshInput struct {
	Body RefreshBody
}

// RefreshResponseBody is the response body for refreshing a session.
type RefreshResponseBody struct {
	Tokens TokenPair `json:"tokens" doc:"Fresh token pair"`
}

// RefreshOutput is the Huma output for refreshing a session.
type RefreshOutput struct {
	Body RefreshResponseBody
}

// refresher is the interface for rotating token pairs.
type refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
}

// RefreshHandler handles POST /v1/auth/refresh.
type RefreshHandler struct {
	Auth refresher
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(svc refresher) *RefreshHandler {
	return &RefreshHandler{Auth: svc}
}

// Register registers the refresh endpoint with the Huma API.
func (h *RefreshHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh",
		Method:      http.MethodPost,
		Path:        "/v1/auth/refresh",
		Summary:     "Refresh tokens",
		Description: "Exchanges a valid refresh token for a fresh token pair.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RefreshHandler) handle(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	pair, err := h.Auth.Refresh(ctx, input.Body.RefreshToken)
	if err != nil {
		return nil, httperr.FromError("invalid refresh token", err)
	}

	return &RefreshOutput{
		Body: RefreshResponseBody{Tokens: pairFromService(pair)},
	}, nil
}
