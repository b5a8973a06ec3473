package category

import (
	"context"
	"net/http"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// UpdateCategoryBody is the request body for updating a category. Absent
// fields are left unchanged.
type UpdateCategoryBody struct {
	Name        *string `json:"name,omitempty" minLength:"1" maxLength:"100" doc:"New category name"`
	Description *string `json:"description,omitempty" doc:"New description"`
	Color       *string `json:"color,omitempty" doc:"New hex display color"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// UpdateCategoryHandler handles PATCH /v1/category/{id}.
type UpdateCategoryHandler struct {
	Operator actionProcessor
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(op actionProcessor) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{Operator: op}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/category/{id}",
		Summary:     "Update category",
		Description: "Applies a partial update to one of the authenticated user's categories.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	categoryID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	action := &actions.UpdateCategory{
		UserID:     userID,
		CategoryID: categoryID,
	}
	if input.Body.Name != nil {
		name := strings.TrimSpace(*input.Body.Name)
		if name == "" {
			return nil, huma.NewError(http.StatusBadRequest, "name must not be blank")
		}
		action.Name = omit.From(name)
	}
	if input.Body.Description != nil {
		action.Description = omit.From(*input.Body.Description)
	}
	if input.Body.Color != nil {
		action.Color = omit.From(*input.Body.Color)
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromError("failed to update category", err)
	}

	return &UpdateCategoryOutput{Status: http.StatusOK}, nil
}
