package authv1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	userstore "github.com/carson-networks/finance-tracker/internal/storage/user"
)

// ProfileInput is the Huma input for fetching the current profile.
type ProfileInput struct{}

// ProfileResponseBody is the response body for fetching the current profile.
type ProfileResponseBody struct {
	User User `json:"user" doc:"The authenticated account"`
}

// ProfileOutput is the Huma output for fetching the current profile.
type ProfileOutput struct {
	Body ProfileResponseBody
}

// profileProvider is the interface for loading the current user.
type profileProvider interface {
	Profile(ctx context.Context, userID uuid.UUID) (*userstore.User, error)
}

// ProfileHandler handles GET /v1/auth/profile.
type ProfileHandler struct {
	Auth profileProvider
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc profileProvider) *ProfileHandler {
	return &ProfileHandler{Auth: svc}
}

// Register registers the profile endpoint with the Huma API.
func (h *ProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "profile",
		Method:      http.MethodGet,
		Path:        "/v1/auth/profile",
		Summary:     "Current profile",
		Description: "Returns the authenticated user's account.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *ProfileHandler) handle(ctx context.Context, input *ProfileInput) (*ProfileOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	account, err := h.Auth.Profile(ctx, userID)
	if err != nil {
		return nil, httperr.FromError("failed to load profile", err)
	}

	return &ProfileOutput{
		Body: ProfileResponseBody{User: userFromStorage(account)},
	}, nil
}
