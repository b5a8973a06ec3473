package budget

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockAlertProvider struct {
	mock.Mock
}

func (m *mockAlertProvider) GetBudgetAlerts(ctx context.Context, userID uuid.UUID, month time.Time) ([]*service.BudgetAlert, error) {
	args := m.Called(ctx, userID, month)
	alerts, _ := args.Get(0).([]*service.BudgetAlert)
	return alerts, args.Error(1)
}

func TestHTTP_BudgetAlerts(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	month := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockAlertProvider)
	mockSvc.On("GetBudgetAlerts", mock.Anything, userID, month).
		Return([]*service.BudgetAlert{
			{
				BudgetID:       uuid.Must(uuid.NewV4()),
				CategoryName:   "Groceries",
				BudgetAmount:   decimal.RequireFromString("500.00"),
				SpentAmount:    decimal.RequireFromString("600.00"),
				PercentageUsed: decimal.RequireFromString("120"),
				AlertType:      service.AlertTypeLimitExceeded,
				Message:        "You have exceeded your budget for Groceries by $100.00",
				Month:          month,
			},
		}, nil)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewBudgetAlertsHandler(mockSvc).Register(api)

	resp := api.Get("/v1/budget/alerts?month=2025-06")
	assert.Equal(t, 200, resp.Code)

	var body BudgetAlertsResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Alerts, 1)
	assert.Equal(t, "limit_exceeded", body.Alerts[0].AlertType)
	assert.Equal(t, "You have exceeded your budget for Groceries by $100.00", body.Alerts[0].Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BudgetAlerts_NoAlerts(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockAlertProvider)
	mockSvc.On("GetBudgetAlerts", mock.Anything, userID, mock.Anything).
		Return([]*service.BudgetAlert{}, nil)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewBudgetAlertsHandler(mockSvc).Register(api)

	resp := api.Get("/v1/budget/alerts")
	assert.Equal(t, 200, resp.Code)

	var body BudgetAlertsResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.Alerts)
}
