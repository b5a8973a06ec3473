package budget

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// monthLayout is the wire format for budget months.
const monthLayout = "2006-01"

// BudgetStatus is the API response model for one budget's computed health.
type BudgetStatus struct {
	BudgetID        string `json:"budgetID" doc:"Budget UUID"`
	CategoryID      string `json:"categoryID" doc:"Category UUID"`
	CategoryName    string `json:"categoryName" doc:"Category name"`
	CategoryColor   string `json:"categoryColor" doc:"Category hex display color"`
	BudgetAmount    string `json:"budgetAmount" doc:"Budgeted decimal amount"`
	SpentAmount     string `json:"spentAmount" doc:"Spent so far this month"`
	RemainingAmount string `json:"remainingAmount" doc:"Amount left, negative when over"`
	PercentageUsed  string `json:"percentageUsed" doc:"Percent of the budget used"`
	Status          string `json:"status" doc:"under_budget, near_limit, or over_budget"`
	AlertLevel      string `json:"alertLevel" doc:"none, warning, or danger"`
	Month           string `json:"month" doc:"Budget month as YYYY-MM"`
}

func statusFromService(status *service.BudgetStatus) BudgetStatus {
	return BudgetStatus{
		BudgetID:        status.BudgetID.String(),
		CategoryID:      status.CategoryID.String(),
		CategoryName:    status.CategoryName,
		CategoryColor:   status.CategoryColor,
		BudgetAmount:    status.BudgetAmount.String(),
		SpentAmount:     status.SpentAmount.String(),
		RemainingAmount: status.RemainingAmount.String(),
		PercentageUsed:  status.PercentageUsed.String(),
		Status:          status.Status,
		AlertLevel:      status.AlertLevel,
		Month:           status.Month.Format(monthLayout),
	}
}

// parseAmount parses a positive money amount. Amounts are stored with cent
// precision, so more than two decimal places is rejected rather than rounded.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "amount must be positive")
	}
	if amount.Exponent() < -2 {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "amount must have at most 2 decimal places")
	}
	return amount, nil
}

// parseMonth parses an optional YYYY-MM query value. An empty value returns
// the zero time, which services resolve to the current month.
func parseMonth(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	month, err := time.Parse(monthLayout, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "month must be formatted as YYYY-MM", err)
	}
	return month, nil
}
