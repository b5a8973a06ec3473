package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// AssignCategoryBody is the request body for assigning a transaction's
// category. A null categoryID clears the assignment.
type AssignCategoryBody struct {
	CategoryID *string `json:"categoryID" doc:"Category UUID, null to clear"`
}

// AssignCategoryInput is the Huma input for assigning a transaction's category.
type AssignCategoryInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body AssignCategoryBody
}

// AssignCategoryOutput is the Huma output for assigning a transaction's category.
type AssignCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// AssignCategoryHandler handles PUT /v1/transaction/{id}/category.
type AssignCategoryHandler struct {
	Operator actionProcessor
}

// NewAssignCategoryHandler creates a new AssignCategoryHandler.
func NewAssignCategoryHandler(op actionProcessor) *AssignCategoryHandler {
	return &AssignCategoryHandler{Operator: op}
}

// Register registers the assign category endpoint with the Huma API.
func (h *AssignCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "assign-transaction-category",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}/category",
		Summary:     "Assign transaction category",
		Description: "Sets or clears the category of one of the authenticated user's transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *AssignCategoryHandler) handle(ctx context.Context, input *AssignCategoryInput) (*AssignCategoryOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	transactionID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	var categoryID uuid.NullUUID
	if input.Body.CategoryID != nil {
		parsed, parseErr := uuid.FromString(*input.Body.CategoryID)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", parseErr)
		}
		categoryID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	action := &actions.SetTransactionCategory{
		UserID:        userID,
		TransactionID: transactionID,
		CategoryID:    categoryID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromError("failed to assign category", err)
	}

	return &AssignCategoryOutput{Status: http.StatusOK}, nil
}
