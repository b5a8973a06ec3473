package suggestion

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// PendingSuggestion pairs an uncategorized transaction with its best match.
type PendingSuggestion struct {
	TransactionID string            `json:"transactionID" doc:"Uncategorized transaction UUID"`
	Description   string            `json:"description" doc:"Transaction description"`
	Category      SuggestedCategory `json:"category" doc:"Suggested category"`
}

// PendingSuggestionsInput is the Huma input for listing pending suggestions.
type PendingSuggestionsInput struct {
	Limit int `query:"limit" minimum:"1" maximum:"100" doc:"Maximum number of suggestions, defaults to 10"`
}

// PendingSuggestionsResponseBody is the response body for listing pending suggestions.
type PendingSuggestionsResponseBody struct {
	Suggestions []PendingSuggestion `json:"suggestions" doc:"Suggestions for recent uncategorized transactions"`
}

// PendingSuggestionsOutput is the Huma output for listing pending suggestions.
type PendingSuggestionsOutput struct {
	Body PendingSuggestionsResponseBody
}

// suggestionLister is the interface for listing suggestions for
// uncategorized transactions.
type suggestionLister interface {
	SuggestionsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*service.Suggestion, error)
}

// PendingSuggestionsHandler handles GET /v1/suggestion/pending.
type PendingSuggestionsHandler struct {
	Suggestions suggestionLister
}

// NewPendingSuggestionsHandler creates a new PendingSuggestionsHandler.
func NewPendingSuggestionsHandler(svc suggestionLister) *PendingSuggestionsHandler {
	return &PendingSuggestionsHandler{Suggestions: svc}
}

// Register registers the pending suggestions endpoint with the Huma API.
func (h *PendingSuggestionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pending-suggestions",
		Method:      http.MethodGet,
		Path:        "/v1/suggestion/pending",
		Summary:     "Pending suggestions",
		Description: "Returns category suggestions for the user's recent uncategorized transactions.",
		Tags:        []string{"Suggestions"},
	}, h.handle)
}

func (h *PendingSuggestionsHandler) handle(ctx context.Context, input *PendingSuggestionsInput) (*PendingSuggestionsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	suggestions, err := h.Suggestions.SuggestionsForUser(ctx, userID, input.Limit)
	if err != nil {
		return nil, httperr.FromError("failed to list suggestions", err)
	}

	if logData != nil {
		logData.AddData("suggestionCount", len(suggestions))
	}

	resp := PendingSuggestionsResponseBody{
		Suggestions: make([]PendingSuggestion, len(suggestions)),
	}
	for i, s := range suggestions {
		resp.Suggestions[i] = PendingSuggestion{
			TransactionID: s.TransactionID.String(),
			Description:   s.Description,
			Category: SuggestedCategory{
				ID:    s.Category.ID.String(),
				Name:  s.Category.Name,
				Color: s.Category.Color,
			},
		}
	}

	return &PendingSuggestionsOutput{Body: resp}, nil
}
