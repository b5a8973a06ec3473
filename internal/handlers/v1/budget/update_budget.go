package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// UpdateBudgetBody is the request body for updating a budget.
type UpdateBudgetBody struct {
	Amount string `json:"amount" required:"true" doc:"New positive decimal amount"`
}

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	ID   string `path:"id" doc:"Budget UUID"`
	Body UpdateBudgetBody
}

// UpdateBudgetOutput is the Huma output for updating a budget.
type UpdateBudgetOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// UpdateBudgetHandler handles PATCH /v1/budget/{id}.
type UpdateBudgetHandler struct {
	Operator actionProcessor
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(op actionProcessor) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{Operator: op}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPatch,
		Path:        "/v1/budget/{id}",
		Summary:     "Update budget",
		Description: "Changes the amount of one of the authenticated user's budgets.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	budgetID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateBudget{
		UserID:   userID,
		BudgetID: budgetID,
		Amount:   amount,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromError("failed to update budget", err)
	}

	return &UpdateBudgetOutput{Status: http.StatusOK}, nil
}
