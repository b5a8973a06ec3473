package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// MonthlySummaryInput is the Huma input for the monthly budget summary.
type MonthlySummaryInput struct {
	Month string `query:"month" doc:"Month as YYYY-MM, defaults to the current month"`
}

// MonthlySummaryResponseBody is the response body for the monthly budget summary.
type MonthlySummaryResponseBody struct {
	Month                 string         `json:"month" doc:"Summarized month as YYYY-MM"`
	TotalBudgeted         string         `json:"totalBudgeted" doc:"Sum of all budget amounts"`
	TotalSpent            string         `json:"totalSpent" doc:"Sum of all spending against budgets"`
	TotalRemaining        string         `json:"totalRemaining" doc:"Budgeted minus spent"`
	OverallPercentageUsed string         `json:"overallPercentageUsed" doc:"Total spent as a percent of total budgeted"`
	BudgetCount           int            `json:"budgetCount" doc:"Number of budgets in the month"`
	BudgetsUnderLimit     int            `json:"budgetsUnderLimit" doc:"Budgets below the warning threshold"`
	BudgetsNearLimit      int            `json:"budgetsNearLimit" doc:"Budgets at or above the warning threshold"`
	BudgetsOverLimit      int            `json:"budgetsOverLimit" doc:"Budgets at or over 100 percent"`
	Budgets               []BudgetStatus `json:"budgets" doc:"Per-budget status, one entry per budget"`
}

// MonthlySummaryOutput is the Huma output for the monthly budget summary.
type MonthlySummaryOutput struct {
	Body MonthlySummaryResponseBody
}

// summaryProvider is the interface for computing a monthly budget summary.
type summaryProvider interface {
	GetMonthlyBudgetSummary(ctx context.Context, userID uuid.UUID, month time.Time) (*service.MonthlySummary, error)
}

// MonthlySummaryHandler handles GET /v1/budget/summary.
type MonthlySummaryHandler struct {
	BudgetTracking summaryProvider
}

// NewMonthlySummaryHandler creates a new MonthlySummaryHandler.
func NewMonthlySummaryHandler(svc summaryProvider) *MonthlySummaryHandler {
	return &MonthlySummaryHandler{BudgetTracking: svc}
}

// Register registers the monthly summary endpoint with the Huma API.
func (h *MonthlySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-budget-summary",
		Method:      http.MethodGet,
		Path:        "/v1/budget/summary",
		Summary:     "Monthly budget summary",
		Description: "Returns the status of every budget in a month plus month-level totals.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *MonthlySummaryHandler) handle(ctx context.Context, input *MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	month, err := parseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySummaryMs")
	}
	summary, err := h.BudgetTracking.GetMonthlyBudgetSummary(ctx, userID, month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromError("failed to compute budget summary", err)
	}

	if logData != nil {
		logData.AddData("budgetCount", summary.BudgetCount)
	}

	resp := MonthlySummaryResponseBody{
		Month:                 summary.Month.Format(monthLayout),
		TotalBudgeted:         summary.TotalBudgeted.String(),
		TotalSpent:            summary.TotalSpent.String(),
		TotalRemaining:        summary.TotalRemaining.String(),
		OverallPercentageUsed: summary.OverallPercentageUsed.String(),
		BudgetCount:           summary.BudgetCount,
		BudgetsUnderLimit:     summary.BudgetsUnderLimit,
		BudgetsNearLimit:      summary.BudgetsNearLimit,
		BudgetsOverLimit:      summary.BudgetsOverLimit,
		Budgets:               make([]BudgetStatus, len(summary.Budgets)),
	}
	for i, status := range summary.Budgets {
		resp.Budgets[i] = statusFromService(status)
	}

	return &MonthlySummaryOutput{Body: resp}, nil
}
