package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Budget health tiers derived from percentage used.
const (
	StatusUnderBudget = "under_budget"
	StatusNearLimit   = "near_limit"
	StatusOverBudget  = "over_budget"

	AlertNone    = "none"
	AlertWarning = "warning"
	AlertDanger  = "danger"

	AlertTypeLimitExceeded    = "limit_exceeded"
	AlertTypeApproachingLimit = "approaching_limit"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
)

// ErrInvalidInput rejects a malformed payload before any aggregate
// computation starts.
var ErrInvalidInput = errors.New("invalid input")

type budgetReader interface {
	List(ctx context.Context, userID uuid.UUID, month time.Time) ([]*budget.Budget, error)
	FindByCategoryMonth(ctx context.Context, userID, categoryID uuid.UUID, month time.Time) (*budget.Budget, error)
}

type spendReader interface {
	SumExpenses(ctx context.Context, userID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}

// BudgetTrackingService derives real-time budget health from committed
// transactions. It holds no state beyond its readers; every method is a pure
// computation over what they return.
type BudgetTrackingService struct {
	budgets budgetReader
	spend   spendReader
	now     func() time.Time
}

func NewBudgetTrackingService(budgets budgetReader, spend spendReader) *BudgetTrackingService {
	return &BudgetTrackingService{
		budgets: budgets,
		spend:   spend,
		now:     time.Now,
	}
}

// CalculateBudgetStatus computes spend, remaining, percentage used and the
// alert tier for one budget. Only expense transactions inside the budget's
// calendar month count. A zero budget amount yields 0% rather than dividing.
func (s *BudgetTrackingService) CalculateBudgetStatus(ctx context.Context, b *budget.Budget) (*BudgetStatus, error) {
	start, end := monthBounds(b.Month)
	spent, err := s.spend.SumExpenses(ctx, b.UserID, b.CategoryID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "sum expenses")
	}

	remaining := b.Amount.Sub(spent)
	percentage := decimal.Zero
	if b.Amount.IsPositive() {
		percentage = spent.Div(b.Amount).Mul(hundred)
	}
	status, alertLevel := tierFor(percentage)

	return &BudgetStatus{
		BudgetID:        b.ID,
		CategoryID:      b.CategoryID,
		CategoryName:    b.CategoryName,
		CategoryColor:   b.CategoryColor,
		BudgetAmount:    b.Amount,
		SpentAmount:     spent,
		RemainingAmount: remaining,
		PercentageUsed:  percentage.Round(2),
		Status:          status,
		AlertLevel:      alertLevel,
		Month:           b.Month,
	}, nil
}

// GetBudgetAlerts returns an alert for every budget of the month sitting in
// the warning or danger tier. A zero month means the current calendar month.
func (s *BudgetTrackingService) GetBudgetAlerts(ctx context.Context, userID uuid.UUID, month time.Time) ([]*BudgetAlert, error) {
	month = s.resolveMonth(month)

	budgets, err := s.budgets.List(ctx, userID, month)
	if err != nil {
		return nil, errors.Wrap(err, "list budgets")
	}

	alerts := make([]*BudgetAlert, 0)
	for _, b := range budgets {
		status, err := s.CalculateBudgetStatus(ctx, b)
		if err != nil {
			return nil, err
		}
		if status.AlertLevel == AlertNone {
			continue
		}
		alerts = append(alerts, newBudgetAlert(status))
	}
	return alerts, nil
}

// GetMonthlyBudgetSummary aggregates every budget of the month into totals,
// tier counts and per-budget detail. No budgets yields an all-zero summary,
// not an error.
func (s *BudgetTrackingService) GetMonthlyBudgetSummary(ctx context.Context, userID uuid.UUID, month time.Time) (*MonthlySummary, error) {
	month = s.resolveMonth(month)

	budgets, err := s.budgets.List(ctx, userID, month)
	if err != nil {
		return nil, errors.Wrap(err, "list budgets")
	}

	summary := &MonthlySummary{
		Month:                 month,
		TotalBudgeted:         decimal.Zero,
		TotalSpent:            decimal.Zero,
		TotalRemaining:        decimal.Zero,
		OverallPercentageUsed: decimal.Zero,
		BudgetCount:           len(budgets),
		Budgets:               make([]*BudgetStatus, 0, len(budgets)),
	}

	for _, b := range budgets {
		status, err := s.CalculateBudgetStatus(ctx, b)
		if err != nil {
			return nil, err
		}

		summary.TotalBudgeted = summary.TotalBudgeted.Add(status.BudgetAmount)
		summary.TotalSpent = summary.TotalSpent.Add(status.SpentAmount)
		switch status.Status {
		case StatusOverBudget:
			summary.BudgetsOverLimit++
		case StatusNearLimit:
			summary.BudgetsNearLimit++
		default:
			summary.BudgetsUnderLimit++
		}
		summary.Budgets = append(summary.Budgets, status)
	}

	summary.TotalRemaining = summary.TotalBudgeted.Sub(summary.TotalSpent)
	if summary.TotalBudgeted.IsPositive() {
		summary.OverallPercentageUsed = summary.TotalSpent.Div(summary.TotalBudgeted).Mul(hundred).Round(2)
	}
	return summary, nil
}

// CheckTransactionImpact evaluates what committing the candidate expense
// would do to its category's budget, so callers can warn the user before the
// write. Income candidates and categories without a budget have no impact.
func (s *BudgetTrackingService) CheckTransactionImpact(ctx context.Context, userID uuid.UUID, candidate TransactionCandidate) (*TransactionImpact, error) {
	if candidate.Type == transaction.TypeIncome {
		return &TransactionImpact{HasImpact: false}, nil
	}
	if !candidate.Type.Valid() || candidate.CategoryID.IsNil() ||
		!candidate.Amount.IsPositive() || candidate.Date.IsZero() {
		return nil, errors.Wrap(ErrInvalidInput, "transaction candidate")
	}

	b, err := s.budgets.FindByCategoryMonth(ctx, userID, candidate.CategoryID, monthOf(candidate.Date))
	if errors.Is(err, dberr.ErrNotFound) {
		return &TransactionImpact{HasImpact: false}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find budget")
	}

	current, err := s.CalculateBudgetStatus(ctx, b)
	if err != nil {
		return nil, err
	}

	newSpent := current.SpentAmount.Add(candidate.Amount)
	newRemaining := b.Amount.Sub(newSpent)
	newPercentage := decimal.Zero
	if b.Amount.IsPositive() {
		newPercentage = newSpent.Div(b.Amount).Mul(hundred)
	}
	_, newAlertLevel := tierFor(newPercentage)

	return &TransactionImpact{
		HasImpact:     true,
		CurrentStatus: current,
		NewSpent:      newSpent,
		NewRemaining:  newRemaining,
		NewPercentage: newPercentage.Round(2),
		NewAlertLevel: newAlertLevel,
		StatusChanged: newAlertLevel != current.AlertLevel,
	}, nil
}

func (s *BudgetTrackingService) resolveMonth(month time.Time) time.Time {
	if month.IsZero() {
		return monthOf(s.now())
	}
	return monthOf(month)
}

// tierFor places a percentage on the exclusive, exhaustive status axis.
func tierFor(percentage decimal.Decimal) (status, alertLevel string) {
	switch {
	case percentage.GreaterThanOrEqual(hundred):
		return StatusOverBudget, AlertDanger
	case percentage.GreaterThanOrEqual(warningThreshold):
		return StatusNearLimit, AlertWarning
	default:
		return StatusUnderBudget, AlertNone
	}
}

func newBudgetAlert(status *BudgetStatus) *BudgetAlert {
	alertType := AlertTypeApproachingLimit
	message := fmt.Sprintf("You have used %s%% of your budget for %s",
		status.PercentageUsed.StringFixed(1), status.CategoryName)
	if status.Status == StatusOverBudget {
		alertType = AlertTypeLimitExceeded
		message = fmt.Sprintf("You have exceeded your budget for %s by $%s",
			status.CategoryName, status.RemainingAmount.Abs().StringFixed(2))
	}

	return &BudgetAlert{
		BudgetID:       status.BudgetID,
		CategoryName:   status.CategoryName,
		BudgetAmount:   status.BudgetAmount,
		SpentAmount:    status.SpentAmount,
		PercentageUsed: status.PercentageUsed,
		AlertType:      alertType,
		Message:        message,
		Month:          status.Month,
	}
}

// monthOf normalizes any date to the first day of its calendar month.
func monthOf(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthBounds returns the first and last calendar day of the month, the last
// day computed via date normalization so leap years come out right.
func monthBounds(month time.Time) (start, end time.Time) {
	start = monthOf(month)
	end = start.AddDate(0, 1, -1)
	return start, end
}
