package suggestion

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	categorystore "github.com/carson-networks/finance-tracker/internal/storage/category"
)

// SuggestedCategory is the API response model for a suggested category.
type SuggestedCategory struct {
	ID    string `json:"id" doc:"Category UUID"`
	Name  string `json:"name" doc:"Category name"`
	Color string `json:"color" doc:"Category hex display color"`
}

// SuggestCategoryBody is the request body for suggesting a category.
type SuggestCategoryBody struct {
	Description string `json:"description" required:"true" minLength:"1" doc:"Transaction description to categorize"`
	UseHistory  bool   `json:"useHistory" doc:"Fall back to similar past transactions when keywords find nothing"`
}

// SuggestCategoryInput is the Huma input for suggesting a category.
type SuggestCategoryInput struct {
	Body SuggestCategoryBody
}

// SuggestCategoryResponseBody is the response body for suggesting a category.
// Category is null when nothing matched.
type SuggestCategoryResponseBody struct {
	Category *SuggestedCategory `json:"category" doc:"Best matching category, null when nothing matched"`
}

// SuggestCategoryOutput is the Huma output for suggesting a category.
type SuggestCategoryOutput struct {
	Body SuggestCategoryResponseBody
}

// categorySuggester is the interface for suggesting a category from a description.
type categorySuggester interface {
	SuggestCategory(ctx context.Context, userID uuid.UUID, description string) (*categorystore.Category, error)
	SuggestCategoryWithHistory(ctx context.Context, userID uuid.UUID, description string) (*categorystore.Category, error)
}

// SuggestCategoryHandler handles POST /v1/suggestion.
type SuggestCategoryHandler struct {
	Suggestions categorySuggester
}

// NewSuggestCategoryHandler creates a new SuggestCategoryHandler.
func NewSuggestCategoryHandler(svc categorySuggester) *SuggestCategoryHandler {
	return &SuggestCategoryHandler{Suggestions: svc}
}

// Register registers the suggest category endpoint with the Huma API.
func (h *SuggestCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "suggest-category",
		Method:      http.MethodPost,
		Path:        "/v1/suggestion",
		Summary:     "Suggest category",
		Description: "Suggests the best matching category for a transaction description.",
		Tags:        []string{"Suggestions"},
	}, h.handle)
}

func (h *SuggestCategoryHandler) handle(ctx context.Context, input *SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	description := strings.TrimSpace(input.Body.Description)
	if description == "" {
		return nil, huma.NewError(http.StatusBadRequest, "description must not be blank")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("suggestCategoryMs")
	}
	var match *categorystore.Category
	if input.Body.UseHistory {
		match, err = h.Suggestions.SuggestCategoryWithHistory(ctx, userID, description)
	} else {
		match, err = h.Suggestions.SuggestCategory(ctx, userID, description)
	}
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromError("failed to suggest category", err)
	}

	resp := SuggestCategoryResponseBody{}
	if match != nil {
		resp.Category = &SuggestedCategory{
			ID:    match.ID.String(),
			Name:  match.Name,
			Color: match.Color,
		}
	}

	return &SuggestCategoryOutput{Body: resp}, nil
}
