package authv1

import (
	"context"
	"net/http"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	userstore "github.com/carson-networks/finance-tracker/internal/storage/user"
)

// UpdateProfileBody is the request body for updating the current profile.
type UpdateProfileBody struct {
	FirstName *string `json:"firstName,omitempty" doc:"New first name"`
	LastName  *string `json:"lastName,omitempty" doc:"New last name"`
}

// UpdateProfileInput is the Huma input for updating the current profile.
type UpdateProfileInput struct {
	Body UpdateProfileBody
}

// UpdateProfileResponseBody is the response body for updating the profile.
type UpdateProfileResponseBody struct {
	User User `json:"user" doc:"The updated account"`
}

// UpdateProfileOutput is the Huma output for updating the profile.
type UpdateProfileOutput struct {
	Body UpdateProfileResponseBody
}

// profileUpdater is the interface for changing the current user's names.
type profileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, update *userstore.UserUpdate) (*userstore.User, error)
}

// UpdateProfileHandler handles PATCH /v1/auth/profile.
type UpdateProfileHandler struct {
	Auth profileUpdater
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(svc profileUpdater) *UpdateProfileHandler {
	return &UpdateProfileHandler{Auth: svc}
}

// Register registers the update profile endpoint with the Huma API.
func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPatch,
		Path:        "/v1/auth/profile",
		Summary:     "Update profile",
		Description: "Changes the authenticated user's name fields.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	update := &userstore.UserUpdate{}
	if input.Body.FirstName != nil {
		update.FirstName = omit.From(strings.TrimSpace(*input.Body.FirstName))
	}
	if input.Body.LastName != nil {
		update.LastName = omit.From(strings.TrimSpace(*input.Body.LastName))
	}

	account, err := h.Auth.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, httperr.FromError("failed to update profile", err)
	}

	return &UpdateProfileOutput{
		Body: UpdateProfileResponseBody{User: userFromStorage(account)},
	}, nil
}
