package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
	transactionstore "github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CheckImpactBody is the request body for checking transaction impact.
type CheckImpactBody struct {
	CategoryID string `json:"categoryID" required:"true" doc:"Category UUID"`
	Amount     string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Type       string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Date       string `json:"date" doc:"RFC3339 transaction date, defaults to now"`
}

// CheckImpactInput is the Huma input for checking transaction impact.
type CheckImpactInput struct {
	Body CheckImpactBody
}

// ImpactBudgetStatus is the budget snapshot embedded in an impact response.
type ImpactBudgetStatus struct {
	BudgetID        string `json:"budgetID" doc:"Budget UUID"`
	CategoryName    string `json:"categoryName" doc:"Category name"`
	BudgetAmount    string `json:"budgetAmount" doc:"Budgeted decimal amount"`
	SpentAmount     string `json:"spentAmount" doc:"Spent so far this month"`
	RemainingAmount string `json:"remainingAmount" doc:"Amount left, negative when over"`
	PercentageUsed  string `json:"percentageUsed" doc:"Percent of the budget used"`
	Status          string `json:"status" doc:"under_budget, near_limit, or over_budget"`
	AlertLevel      string `json:"alertLevel" doc:"none, warning, or danger"`
}

// CheckImpactResponseBody is the response body for checking transaction impact.
type CheckImpactResponseBody struct {
	HasImpact     bool                `json:"hasImpact" doc:"False for income and for categories without a budget this month"`
	CurrentStatus *ImpactBudgetStatus `json:"currentStatus,omitempty" doc:"Budget status before the candidate"`
	NewSpent      string              `json:"newSpent,omitempty" doc:"Spent amount after the candidate"`
	NewRemaining  string              `json:"newRemaining,omitempty" doc:"Remaining amount after the candidate"`
	NewPercentage string              `json:"newPercentage,omitempty" doc:"Percentage used after the candidate"`
	NewAlertLevel string              `json:"newAlertLevel,omitempty" doc:"Alert level after the candidate"`
	StatusChanged bool                `json:"statusChanged" doc:"Whether the alert level would change"`
}

// CheckImpactOutput is the Huma output for checking transaction impact.
type CheckImpactOutput struct {
	Body CheckImpactResponseBody
}

// impactChecker is the interface for simulating a transaction's budget impact.
type impactChecker interface {
	CheckTransactionImpact(ctx context.Context, userID uuid.UUID, candidate service.TransactionCandidate) (*service.TransactionImpact, error)
}

// CheckImpactHandler handles POST /v1/transaction/impact.
type CheckImpactHandler struct {
	BudgetTracking impactChecker
}

// NewCheckImpactHandler creates a new CheckImpactHandler.
func NewCheckImpactHandler(svc impactChecker) *CheckImpactHandler {
	return &CheckImpactHandler{BudgetTracking: svc}
}

// Register registers the check impact endpoint with the Huma API.
func (h *CheckImpactHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "check-transaction-impact",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/impact",
		Summary:     "Check transaction impact",
		Description: "Simulates the budget impact of a transaction before it is saved.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCheckImpactInput parses and validates the API input.
func parseCheckImpactInput(input *CheckImpactInput) (service.TransactionCandidate, error) {
	var candidate service.TransactionCandidate

	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return candidate, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return candidate, err
	}

	transactionType := transactionstore.Type(input.Body.Type)
	if !transactionType.Valid() {
		return candidate, huma.NewError(http.StatusBadRequest, "type must be income or expense")
	}

	date := time.Now()
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return candidate, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	candidate = service.TransactionCandidate{
		CategoryID: categoryID,
		Amount:     amount,
		Type:       transactionType,
		Date:       date,
	}
	return candidate, nil
}

func (h *CheckImpactHandler) handle(ctx context.Context, input *CheckImpactInput) (*CheckImpactOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	candidate, err := parseCheckImpactInput(input)
	if err != nil {
		return nil, err
	}

	impact, err := h.BudgetTracking.CheckTransactionImpact(ctx, userID, candidate)
	if err != nil {
		return nil, httperr.FromError("failed to check transaction impact", err)
	}

	resp := CheckImpactResponseBody{
		HasImpact:     impact.HasImpact,
		StatusChanged: impact.StatusChanged,
	}
	if impact.HasImpact {
		resp.CurrentStatus = &ImpactBudgetStatus{
			BudgetID:        impact.CurrentStatus.BudgetID.String(),
			CategoryName:    impact.CurrentStatus.CategoryName,
			BudgetAmount:    impact.CurrentStatus.BudgetAmount.String(),
			SpentAmount:     impact.CurrentStatus.SpentAmount.String(),
			RemainingAmount: impact.CurrentStatus.RemainingAmount.String(),
			PercentageUsed:  impact.CurrentStatus.PercentageUsed.String(),
			Status:          impact.CurrentStatus.Status,
			AlertLevel:      impact.CurrentStatus.AlertLevel,
		}
		resp.NewSpent = impact.NewSpent.String()
		resp.NewRemaining = impact.NewRemaining.String()
		resp.NewPercentage = impact.NewPercentage.String()
		resp.NewAlertLevel = impact.NewAlertLevel
	}

	return &CheckImpactOutput{Body: resp}, nil
}
