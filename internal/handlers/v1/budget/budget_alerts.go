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

// BudgetAlert is the API response model for one budget alert.
type BudgetAlert struct {
	BudgetID       string `json:"budgetID" doc:"Budget UUID"`
	CategoryName   string `json:"categoryName" doc:"Category name"`
	BudgetAmount   string `json:"budgetAmount" doc:"Budgeted decimal amount"`
	SpentAmount    string `json:"spentAmount" doc:"Spent so far this month"`
	PercentageUsed string `json:"percentageUsed" doc:"Percent of the budget used"`
	AlertType      string `json:"alertType" doc:"limit_exceeded or approaching_limit"`
	Message        string `json:"message" doc:"Human-readable alert text"`
	Month          string `json:"month" doc:"Budget month as YYYY-MM"`
}

// BudgetAlertsInput is the Huma input for listing budget alerts.
type BudgetAlertsInput struct {
	Month string `query:"month" doc:"Month as YYYY-MM, defaults to the current month"`
}

// BudgetAlertsResponseBody is the response body for listing budget alerts.
type BudgetAlertsResponseBody struct {
	Alerts []BudgetAlert `json:"alerts" doc:"Alerts for budgets in the warning or danger tier"`
}

// BudgetAlertsOutput is the Huma output for listing budget alerts.
type BudgetAlertsOutput struct {
	Body BudgetAlertsResponseBody
}

// alertProvider is the interface for computing budget alerts.
type alertProvider interface {
	GetBudgetAlerts(ctx context.Context, userID uuid.UUID, month time.Time) ([]*service.BudgetAlert, error)
}

// BudgetAlertsHandler handles GET /v1/budget/alerts.
type BudgetAlertsHandler struct {
	BudgetTracking alertProvider
}

// NewBudgetAlertsHandler creates a new BudgetAlertsHandler.
func NewBudgetAlertsHandler(svc alertProvider) *BudgetAlertsHandler {
	return &BudgetAlertsHandler{BudgetTracking: svc}
}

// Register registers the budget alerts endpoint with the Huma API.
func (h *BudgetAlertsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-alerts",
		Method:      http.MethodGet,
		Path:        "/v1/budget/alerts",
		Summary:     "Budget alerts",
		Description: "Returns alerts for budgets that are near or over their limit.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *BudgetAlertsHandler) handle(ctx context.Context, input *BudgetAlertsInput) (*BudgetAlertsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	month, err := parseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	alerts, err := h.BudgetTracking.GetBudgetAlerts(ctx, userID, month)
	if err != nil {
		return nil, httperr.FromError("failed to compute budget alerts", err)
	}

	if logData != nil {
		logData.AddData("alertCount", len(alerts))
	}

	resp := BudgetAlertsResponseBody{
		Alerts: make([]BudgetAlert, len(alerts)),
	}
	for i, alert := range alerts {
		resp.Alerts[i] = BudgetAlert{
			BudgetID:       alert.BudgetID.String(),
			CategoryName:   alert.CategoryName,
			BudgetAmount:   alert.BudgetAmount.String(),
			SpentAmount:    alert.SpentAmount.String(),
			PercentageUsed: alert.PercentageUsed.String(),
			AlertType:      alert.AlertType,
			Message:        alert.Message,
			Month:          alert.Month.Format(monthLayout),
		}
	}

	return &BudgetAlertsOutput{Body: resp}, nil
}
