package authv1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
)

// RequestPasswordResetBody is the request body for requesting a password reset.
type RequestPasswordResetBody struct {
	Email string `json:"email" required:"true" format:"email" doc:"Account email"`
}

// RequestPasswordResetInput is the Huma input for requesting a password reset.
type RequestPasswordResetInput struct {
	Body RequestPasswordResetBody
}

// RequestPasswordResetOutput is the Huma output for requesting a password reset.
// The response is the same whether or not the email exists.
type RequestPasswordResetOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// passwordResetter is the interface for the two-step password reset flow.
type passwordResetter interface {
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

// RequestPasswordResetHandler handles POST /v1/auth/password-reset.
type RequestPasswordResetHandler struct {
	Auth passwordResetter
}

// NewRequestPasswordResetHandler creates a new RequestPasswordResetHandler.
func NewRequestPasswordResetHandler(svc passwordResetter) *RequestPasswordResetHandler {
	return &RequestPasswordResetHandler{Auth: svc}
}

// Register registers the request password reset endpoint with the Huma API.
func (h *RequestPasswordResetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "request-password-reset",
		Method:      http.MethodPost,
		Path:        "/v1/auth/password-reset",
		Summary:     "Request password reset",
		Description: "Emails a reset token when the address belongs to an account.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RequestPasswordResetHandler) handle(ctx context.Context, input *RequestPasswordResetInput) (*RequestPasswordResetOutput, error) {
	if err := h.Auth.RequestPasswordReset(ctx, input.Body.Email); err != nil {
		return nil, httperr.FromError("failed to request password reset", err)
	}

	return &RequestPasswordResetOutput{Status: http.StatusAccepted}, nil
}

// ConfirmPasswordResetBody is the request body for confirming a password reset.
type ConfirmPasswordResetBody struct {
	Token       string `json:"token" required:"true" doc:"Reset token from the email"`
	NewPassword string `json:"newPassword" required:"true" minLength:"8" doc:"New password, at least 8 characters"`
}

// ConfirmPasswordResetInput is the Huma input for confirming a password reset.
type ConfirmPasswordResetInput struct {
	Body ConfirmPasswordResetBody
}

// ConfirmPasswordResetOutput is the Huma output for confirming a password reset.
type ConfirmPasswordResetOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// ConfirmPasswordResetHandler handles POST /v1/auth/password-reset/confirm.
type ConfirmPasswordResetHandler struct {
	Auth passwordResetter
}

// NewConfirmPasswordResetHandler creates a new ConfirmPasswordResetHandler.
func NewConfirmPasswordResetHandler(svc passwordResetter) *ConfirmPasswordResetHandler {
	return &ConfirmPasswordResetHandler{Auth: svc}
}

// Register registers the confirm password reset endpoint with the Huma API.
func (h *ConfirmPasswordResetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "confirm-password-reset",
		Method:      http.MethodPost,
		Path:        "/v1/auth/password-reset/confirm",
		Summary:     "Confirm password reset",
		Description: "Verifies the reset token and sets the new password.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *ConfirmPasswordResetHandler) handle(ctx context.Context, input *ConfirmPasswordResetInput) (*ConfirmPasswordResetOutput, error) {
	if err := h.Auth.ConfirmPasswordReset(ctx, input.Body.Token, input.Body.NewPassword); err != nil {
		return nil, httperr.FromError("failed to reset password", err)
	}

	return &ConfirmPasswordResetOutput{Status: http.StatusOK}, nil
}
