package authv1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
)

// LogoutBody is the request body for ending a session.
type LogoutBody struct {
	RefreshToken string `json:"refreshToken" required:"true" doc:"Refresh token to revoke"`
}

// LogoutInput is the Huma input for ending a session.
type LogoutInput struct {
	Body LogoutBody
}

// LogoutOutput is the Huma output for ending a session.
type LogoutOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// sessionRevoker is the interface for revoking refresh tokens.
type sessionRevoker interface {
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
}

// LogoutHandler handles POST /v1/auth/logout.
type LogoutHandler struct {
	Auth sessionRevoker
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(svc sessionRevoker) *LogoutHandler {
	return &LogoutHandler{Auth: svc}
}

// Register registers the logout endpoint with the Huma API.
func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/v1/auth/logout",
		Summary:     "Logout",
		Description: "Revokes the refresh token so it can no longer be exchanged for new pairs.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	if err := h.Auth.Logout(ctx, userID, input.Body.RefreshToken); err != nil {
		return nil, httperr.FromError("failed to log out", err)
	}

	return &LogoutOutput{Status: http.StatusOK}, nil
}
