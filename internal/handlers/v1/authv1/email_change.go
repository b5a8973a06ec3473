package authv1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
)

// RequestEmailChangeBody is the request body for starting an email change.
type RequestEmailChangeBody struct {
	NewEmail string `json:"newEmail" required:"true" format:"email" doc:"Address to switch the account to"`
}

// RequestEmailChangeInput is the Huma input for starting an email change.
type RequestEmailChangeInput struct {
	Body RequestEmailChangeBody
}

// RequestEmailChangeOutput is the Huma output for starting an email change.
type RequestEmailChangeOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// emailChanger is the interface for the two-step email change flow.
type emailChanger interface {
	RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error
	ConfirmEmailChange(ctx context.Context, userID uuid.UUID, newEmail, token string) error
}

// RequestEmailChangeHandler handles POST /v1/auth/email-change.
type RequestEmailChangeHandler struct {
	Auth emailChanger
}

// NewRequestEmailChangeHandler creates a new RequestEmailChangeHandler.
func NewRequestEmailChangeHandler(svc emailChanger) *RequestEmailChangeHandler {
	return &RequestEmailChangeHandler{Auth: svc}
}

// Register registers the request email change endpoint with the Huma API.
func (h *RequestEmailChangeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "request-email-change",
		Method:      http.MethodPost,
		Path:        "/v1/auth/email-change",
		Summary:     "Request email change",
		Description: "Emails a verification token to the new address.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RequestEmailChangeHandler) handle(ctx context.Context, input *RequestEmailChangeInput) (*RequestEmailChangeOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	if err := h.Auth.RequestEmailChange(ctx, userID, input.Body.NewEmail); err != nil {
		return nil, httperr.FromError("failed to request email change", err)
	}

	return &RequestEmailChangeOutput{Status: http.StatusAccepted}, nil
}

// ConfirmEmailChangeBody is the request body for confirming an email change.
type ConfirmEmailChangeBody struct {
	NewEmail string `json:"newEmail" required:"true" format:"email" doc:"Address the token was sent to"`
	Token    string `json:"token" required:"true" doc:"Verification token from the email"`
}

// ConfirmEmailChangeInput is the Huma input for confirming an email change.
type ConfirmEmailChangeInput struct {
	Body ConfirmEmailChangeBody
}

// ConfirmEmailChangeOutput is the Huma output for confirming an email change.
type ConfirmEmailChangeOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// ConfirmEmailChangeHandler handles POST /v1/auth/email-change/confirm.
type ConfirmEmailChangeHandler struct {
	Auth emailChanger
}

// NewConfirmEmailChangeHandler creates a new ConfirmEmailChangeHandler.
func NewConfirmEmailChangeHandler(svc emailChanger) *ConfirmEmailChangeHandler {
	return &ConfirmEmailChangeHandler{Auth: svc}
}

// Register registers the confirm email change endpoint with the Huma API.
func (h *ConfirmEmailChangeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "confirm-email-change",
		Method:      http.MethodPost,
		Path:        "/v1/auth/email-change/confirm",
		Summary:     "Confirm email change",
		Description: "Verifies the token and switches the account to the new address.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *ConfirmEmailChangeHandler) handle(ctx context.Context, input *ConfirmEmailChangeInput) (*ConfirmEmailChangeOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	if err := h.Auth.ConfirmEmailChange(ctx, userID, input.Body.NewEmail, input.Body.Token); err != nil {
		return nil, httperr.FromError("failed to confirm email change", err)
	}

	return &ConfirmEmailChangeOutput{Status: http.StatusOK}, nil
}
