package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockBudgetReader struct {
	mock.Mock
}

func (m *mockBudgetReader) List(ctx context.Context, userID uuid.UUID, month time.Time) ([]*budget.Budget, error) {
	args := m.Called(ctx, userID, month)
	budgets, _ := args.Get(0).([]*budget.Budget)
	return budgets, args.Error(1)
}

func (m *mockBudgetReader) FindByCategoryMonth(ctx context.Context, userID, categoryID uuid.UUID, month time.Time) (*budget.Budget, error) {
	args := m.Called(ctx, userID, categoryID, month)
	found, _ := args.Get(0).(*budget.Budget)
	return found, args.Error(1)
}

type mockSpendReader struct {
	mock.Mock
}

func (m *mockSpendReader) SumExpenses(ctx context.Context, userID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, categoryID, from, to)
	spent, _ := args.Get(0).(decimal.Decimal)
	return spent, args.Error(1)
}

func newTestTrackingService(budgets *mockBudgetReader, spend *mockSpendReader) *BudgetTrackingService {
	svc := NewBudgetTrackingService(budgets, spend)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func newTestBudget(amount string) *budget.Budget {
	return &budget.Budget{
		ID:            uuid.Must(uuid.NewV4()),
		UserID:        uuid.Must(uuid.NewV4()),
		CategoryID:    uuid.Must(uuid.NewV4()),
		CategoryName:  "Groceries",
		CategoryColor: "#3498db",
		Amount:        decimal.RequireFromString(amount),
		Month:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCalculateBudgetStatus_UnderBudget(t *testing.T) {
	b := newTestBudget("500.00")

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, b.UserID, b.CategoryID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)).
		Return(decimal.RequireFromString("150.00"), nil)

	svc := newTestTrackingService(new(mockBudgetReader), spend)
	status, err := svc.CalculateBudgetStatus(context.Background(), b)
	assert.NoError(t, err)

	assert.True(t, status.SpentAmount.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, status.RemainingAmount.Equal(decimal.RequireFromString("350.00")))
	assert.True(t, status.PercentageUsed.Equal(decimal.RequireFromString("30")))
	assert.Equal(t, StatusUnderBudget, status.Status)
	assert.Equal(t, AlertNone, status.AlertLevel)
	spend.AssertExpectations(t)
}

func TestCalculateBudgetStatus_NearLimit(t *testing.T) {
	b := newTestBudget("500.00")

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, b.UserID, b.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("425.00"), nil)

	svc := newTestTrackingService(new(mockBudgetReader), spend)
	status, err := svc.CalculateBudgetStatus(context.Background(), b)
	assert.NoError(t, err)

	assert.True(t, status.PercentageUsed.Equal(decimal.RequireFromString("85")))
	assert.Equal(t, StatusNearLimit, status.Status)
	assert.Equal(t, AlertWarning, status.AlertLevel)
}

func TestCalculateBudgetStatus_OverBudget(t *testing.T) {
	b := newTestBudget("500.00")

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, b.UserID, b.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("600.00"), nil)

	svc := newTestTrackingService(new(mockBudgetReader), spend)
	status, err := svc.CalculateBudgetStatus(context.Background(), b)
	assert.NoError(t, err)

	assert.True(t, status.PercentageUsed.Equal(decimal.RequireFromString("120")))
	assert.True(t, status.RemainingAmount.Equal(decimal.RequireFromString("-100.00")))
	assert.Equal(t, StatusOverBudget, status.Status)
	assert.Equal(t, AlertDanger, status.AlertLevel)
}

func TestCalculateBudgetStatus_ZeroAmountBudget(t *testing.T) {
	b := newTestBudget("0.00")

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, b.UserID, b.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("50.00"), nil)

	svc := newTestTrackingService(new(mockBudgetReader), spend)
	status, err := svc.CalculateBudgetStatus(context.Background(), b)
	assert.NoError(t, err)

	assert.True(t, status.PercentageUsed.IsZero())
	assert.Equal(t, StatusUnderBudget, status.Status)
}

func TestCalculateBudgetStatus_RemainingPlusSpentEqualsAmount(t *testing.T) {
	b := newTestBudget("500.00")

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, b.UserID, b.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("123.45"), nil)

	svc := newTestTrackingService(new(mockBudgetReader), spend)
	status, err := svc.CalculateBudgetStatus(context.Background(), b)
	assert.NoError(t, err)

	assert.True(t, status.SpentAmount.Add(status.RemainingAmount).Equal(b.Amount))
}

func TestGetBudgetAlerts_OverBudgetMessage(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	b := newTestBudget("500.00")
	b.UserID = userID

	budgets := new(mockBudgetReader)
	budgets.On("List", mock.Anything, userID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
		Return([]*budget.Budget{b}, nil)

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, userID, b.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("600.00"), nil)

	svc := newTestTrackingService(budgets, spend)
	alerts, err := svc.GetBudgetAlerts(context.Background(), userID, time.Time{})
	assert.NoError(t, err)

	assert.Len(t, alerts, 1)
	assert.Equal(t, AlertTypeLimitExceeded, alerts[0].AlertType)
	assert.Equal(t, "You have exceeded your budget for Groceries by $100.00", alerts[0].Message)
}

func TestGetBudgetAlerts_WarningMessage(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	b := newTestBudget("500.00")
	b.UserID = userID

	budgets := new(mockBudgetReader)
	budgets.On("List", mock.Anything, userID, mock.Anything).
		Return([]*budget.Budget{b}, nil)

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, userID, b.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("425.00"), nil)

	svc := newTestTrackingService(budgets, spend)
	alerts, err := svc.GetBudgetAlerts(context.Background(), userID, time.Time{})
	assert.NoError(t, err)

	assert.Len(t, alerts, 1)
	assert.Equal(t, AlertTypeApproachingLimit, alerts[0].AlertType)
	assert.Equal(t, "You have used 85.0% of your budget for Groceries", alerts[0].Message)
}

func TestGetBudgetAlerts_UnderBudgetProducesNone(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	b := newTestBudget("500.00")
	b.UserID = userID

	budgets := new(mockBudgetReader)
	budgets.On("List", mock.Anything, userID, mock.Anything).
		Return([]*budget.Budget{b}, nil)

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, userID, b.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("100.00"), nil)

	svc := newTestTrackingService(budgets, spend)
	alerts, err := svc.GetBudgetAlerts(context.Background(), userID, time.Time{})
	assert.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestGetMonthlyBudgetSummary_NoBudgets(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	budgets := new(mockBudgetReader)
	budgets.On("List", mock.Anything, userID, mock.Anything).
		Return([]*budget.Budget{}, nil)

	svc := newTestTrackingService(budgets, new(mockSpendReader))
	summary, err := svc.GetMonthlyBudgetSummary(context.Background(), userID, time.Time{})
	assert.NoError(t, err)

	assert.Equal(t, 0, summary.BudgetCount)
	assert.True(t, summary.TotalBudgeted.IsZero())
	assert.True(t, summary.TotalSpent.IsZero())
	assert.True(t, summary.TotalRemaining.IsZero())
	assert.True(t, summary.OverallPercentageUsed.IsZero())
	assert.Empty(t, summary.Budgets)
}

func TestGetMonthlyBudgetSummary_TierCounts(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	under := newTestBudget("500.00")
	under.UserID = userID
	warning := newTestBudget("100.00")
	warning.UserID = userID
	warning.CategoryName = "Dining"
	over := newTestBudget("200.00")
	over.UserID = userID
	over.CategoryName = "Entertainment"

	budgets := new(mockBudgetReader)
	budgets.On("List", mock.Anything, userID, mock.Anything).
		Return([]*budget.Budget{under, warning, over}, nil)

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, userID, under.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("100.00"), nil)
	spend.On("SumExpenses", mock.Anything, userID, warning.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("85.00"), nil)
	spend.On("SumExpenses", mock.Anything, userID, over.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("250.00"), nil)

	svc := newTestTrackingService(budgets, spend)
	summary, err := svc.GetMonthlyBudgetSummary(context.Background(), userID, time.Time{})
	assert.NoError(t, err)

	assert.Equal(t, 3, summary.BudgetCount)
	assert.Equal(t, 1, summary.BudgetsUnderLimit)
	assert.Equal(t, 1, summary.BudgetsNearLimit)
	assert.Equal(t, 1, summary.BudgetsOverLimit)
	assert.True(t, summary.TotalBudgeted.Equal(decimal.RequireFromString("800.00")))
	assert.True(t, summary.TotalSpent.Equal(decimal.RequireFromString("435.00")))
	assert.True(t, summary.TotalRemaining.Equal(decimal.RequireFromString("365.00")))
	assert.True(t, summary.OverallPercentageUsed.Equal(decimal.RequireFromString("54.38")))
}

func TestCheckTransactionImpact_Income(t *testing.T) {
	svc := newTestTrackingService(new(mockBudgetReader), new(mockSpendReader))

	impact, err := svc.CheckTransactionImpact(context.Background(), uuid.Must(uuid.NewV4()), TransactionCandidate{
		CategoryID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString("100.00"),
		Type:       transaction.TypeIncome,
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.False(t, impact.HasImpact)
}

func TestCheckTransactionImpact_InvalidCandidate(t *testing.T) {
	svc := newTestTrackingService(new(mockBudgetReader), new(mockSpendReader))

	_, err := svc.CheckTransactionImpact(context.Background(), uuid.Must(uuid.NewV4()), TransactionCandidate{
		CategoryID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString("-5.00"),
		Type:       transaction.TypeExpense,
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckTransactionImpact_NoBudget(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	budgets := new(mockBudgetReader)
	budgets.On("FindByCategoryMonth", mock.Anything, userID, categoryID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
		Return(nil, dberr.ErrNotFound)

	svc := newTestTrackingService(budgets, new(mockSpendReader))
	impact, err := svc.CheckTransactionImpact(context.Background(), userID, TransactionCandidate{
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString("50.00"),
		Type:       transaction.TypeExpense,
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.False(t, impact.HasImpact)
}

func TestCheckTransactionImpact_StatusChange(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	b := newTestBudget("500.00")
	b.UserID = userID

	budgets := new(mockBudgetReader)
	budgets.On("FindByCategoryMonth", mock.Anything, userID, b.CategoryID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
		Return(b, nil)

	spend := new(mockSpendReader)
	spend.On("SumExpenses", mock.Anything, userID, b.CategoryID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("350.00"), nil)

	svc := newTestTrackingService(budgets, spend)
	impact, err := svc.CheckTransactionImpact(context.Background(), userID, TransactionCandidate{
		CategoryID: b.CategoryID,
		Amount:     decimal.RequireFromString("100.00"),
		Type:       transaction.TypeExpense,
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	assert.True(t, impact.HasImpact)
	assert.Equal(t, AlertNone, impact.CurrentStatus.AlertLevel)
	assert.True(t, impact.NewSpent.Equal(decimal.RequireFromString("450.00")))
	assert.True(t, impact.NewRemaining.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, impact.NewPercentage.Equal(decimal.RequireFromString("90")))
	assert.Equal(t, AlertWarning, impact.NewAlertLevel)
	assert.True(t, impact.StatusChanged)
}

func TestMonthBounds_LeapFebruary(t *testing.T) {
	start, end := monthBounds(time.Date(2024, 2, 10, 18, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)
}
