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

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID string `json:"categoryID" required:"true" doc:"Category UUID"`
	Amount     string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Month      string `json:"month" required:"true" doc:"Budget month as YYYY-MM"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetResponseBody is the response body for creating a budget.
type CreateBudgetResponseBody struct {
	ID string `json:"id" doc:"UUID of the created budget"`
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   CreateBudgetResponseBody
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	Operator actionProcessor
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(op actionProcessor) *CreateBudgetHandler {
	return &CreateBudgetHandler{Operator: op}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget",
		Summary:     "Create budget",
		Description: "Creates a monthly budget for one of the authenticated user's categories.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

// parseCreateBudgetInput parses and validates the API input.
func parseCreateBudgetInput(input *CreateBudgetInput) (*actions.CreateBudget, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	month, err := parseMonth(input.Body.Month)
	if err != nil {
		return nil, err
	}
	if month.IsZero() {
		return nil, huma.NewError(http.StatusBadRequest, "month is required")
	}

	return &actions.CreateBudget{
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	action, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}
	action.UserID = userID

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromError("failed to create budget", err)
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   CreateBudgetResponseBody{ID: action.CreatedID.String()},
	}, nil
}
