package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// BudgetStatus is the computed health of one budget for its month.
// RemainingAmount goes negative when the budget is blown; PercentageUsed can
// exceed 100 and is rounded to 2 places for display.
type BudgetStatus struct {
	BudgetID        uuid.UUID
	CategoryID      uuid.UUID
	CategoryName    string
	CategoryColor   string
	BudgetAmount    decimal.Decimal
	SpentAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	PercentageUsed  decimal.Decimal
	Status          string
	AlertLevel      string
	Month           time.Time
}

// BudgetAlert is emitted for budgets in the warning or danger tier.
type BudgetAlert struct {
	BudgetID       uuid.UUID
	CategoryName   string
	BudgetAmount   decimal.Decimal
	SpentAmount    decimal.Decimal
	PercentageUsed decimal.Decimal
	AlertType      string
	Message        string
	Month          time.Time
}

// MonthlySummary aggregates all budgets of one month.
type MonthlySummary struct {
	Month                 time.Time
	TotalBudgeted         decimal.Decimal
	TotalSpent            decimal.Decimal
	TotalRemaining        decimal.Decimal
	OverallPercentageUsed decimal.Decimal
	BudgetCount           int
	BudgetsUnderLimit     int
	BudgetsNearLimit      int
	BudgetsOverLimit      int
	Budgets               []*BudgetStatus
}

// TransactionCandidate is a hypothetical transaction that has not been
// persisted yet.
type TransactionCandidate struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Type       transaction.Type
	Date       time.Time
}

// TransactionImpact reports how committing a candidate would move its
// category's budget. HasImpact is false for income candidates and for
// categories without a budget in the candidate's month.
type TransactionImpact struct {
	HasImpact     bool
	CurrentStatus *BudgetStatus
	NewSpent      decimal.Decimal
	NewRemaining  decimal.Decimal
	NewPercentage decimal.Decimal
	NewAlertLevel string
	StatusChanged bool
}
