package authv1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
)

// ChangePasswordBody is the request body for changing a password.
type ChangePasswordBody struct {
	CurrentPassword string `json:"currentPassword" required:"true" doc:"The password in use now"`
	NewPassword     string `json:"newPassword" required:"true" minLength:"8" doc:"The replacement password"`
}

// ChangePasswordInput is the Huma input for changing a password.
type ChangePasswordInput struct {
	Body ChangePasswordBody
}

// ChangePasswordOutput is the Huma output for changing a password.
type ChangePasswordOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// passwordChanger is the interface for authenticated password changes.
type passwordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// ChangePasswordHandler handles POST /v1/auth/password-change.
type ChangePasswordHandler struct {
	Auth passwordChanger
}

// NewChangePasswordHandler creates a new ChangePasswordHandler.
func NewChangePasswordHandler(svc passwordChanger) *ChangePasswordHandler {
	return &ChangePasswordHandler{Auth: svc}
}

// Register registers the change password endpoint with the Huma API.
func (h *ChangePasswordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "change-password",
		Method:      http.MethodPost,
		Path:        "/v1/auth/password-change",
		Summary:     "Change password",
		Description: "Replaces the authenticated user's password after verifying the current one.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *ChangePasswordHandler) handle(ctx context.Context, input *ChangePasswordInput) (*ChangePasswordOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	if err := h.Auth.ChangePassword(ctx, userID, input.Body.CurrentPassword, input.Body.NewPassword); err != nil {
		return nil, httperr.FromError("failed to change password", err)
	}

	return &ChangePasswordOutput{Status: http.StatusOK}, nil
}
