package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	budgetstore "github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// Budget is the API response model for a raw budget without spend data.
type Budget struct {
	ID            string `json:"id" doc:"Budget UUID"`
	CategoryID    string `json:"categoryID" doc:"Category UUID"`
	CategoryName  string `json:"categoryName" doc:"Category name"`
	CategoryColor string `json:"categoryColor" doc:"Category hex display color"`
	Amount        string `json:"amount" doc:"Budgeted decimal amount"`
	Month         string `json:"month" doc:"Budget month as YYYY-MM"`
}

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	Month string `query:"month" doc:"Month as YYYY-MM, defaults to the current month"`
}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Budgets []Budget `json:"budgets" doc:"The user's budgets for the month"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// budgetLister is the interface for listing a user's budgets in a month.
type budgetLister interface {
	List(ctx context.Context, userID uuid.UUID, month time.Time) ([]*budgetstore.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budget.
type ListBudgetsHandler struct {
	Budgets budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(budgets budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{Budgets: budgets}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budget",
		Summary:     "List budgets",
		Description: "Returns the authenticated user's budgets for a month without spend data.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	month, err := parseMonth(input.Month)
	if err != nil {
		return nil, err
	}
	if month.IsZero() {
		now := time.Now().UTC()
		month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	rows, err := h.Budgets.List(ctx, userID, month)
	if err != nil {
		return nil, httperr.FromError("failed to list budgets", err)
	}

	resp := ListBudgetsResponseBody{
		Budgets: make([]Budget, len(rows)),
	}
	for i, row := range rows {
		resp.Budgets[i] = Budget{
			ID:            row.ID.String(),
			CategoryID:    row.CategoryID.String(),
			CategoryName:  row.CategoryName,
			CategoryColor: row.CategoryColor,
			Amount:        row.Amount.String(),
			Month:         row.Month.Format(monthLayout),
		}
	}

	return &ListBudgetsOutput{Body: resp}, nil
}
