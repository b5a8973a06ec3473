package budget

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// authenticate injects a fixed user into every request, standing in for the
// bearer token middleware.
func authenticate(userID uuid.UUID) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
	}
}

func TestParseCreateBudgetInput(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	input := &CreateBudgetInput{
		Body: CreateBudgetBody{
			CategoryID: categoryID.String(),
			Amount:     "500.00",
			Month:      "2025-06",
		},
	}

	action, err := parseCreateBudgetInput(input)
	assert.NoError(t, err)

	assert.Equal(t, categoryID, action.CategoryID)
	assert.True(t, action.Amount.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), action.Month)
}

func TestParseCreateBudgetInput_TooManyDecimalPlaces(t *testing.T) {
	input := &CreateBudgetInput{
		Body: CreateBudgetBody{
			CategoryID: uuid.Must(uuid.NewV4()).String(),
			Amount:     "50.005",
			Month:      "2025-06",
		},
	}

	_, err := parseCreateBudgetInput(input)
	assert.Error(t, err)
}

func TestParseCreateBudgetInput_BadMonth(t *testing.T) {
	input := &CreateBudgetInput{
		Body: CreateBudgetBody{
			CategoryID: uuid.Must(uuid.NewV4()).String(),
			Amount:     "500.00",
			Month:      "June 2025",
		},
	}

	_, err := parseCreateBudgetInput(input)
	assert.Error(t, err)
}

func TestHTTP_CreateBudget(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateBudget")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.CreateBudget)
			assert.Equal(t, userID, action.UserID)
			action.CreatedID = createdID
		}).
		Return(nil)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewCreateBudgetHandler(op).Register(api)

	resp := api.Post("/v1/budget", map[string]any{
		"categoryID": uuid.Must(uuid.NewV4()).String(),
		"amount":     "500.00",
		"month":      "2025-06",
	})
	assert.Equal(t, 201, resp.Code)

	var body CreateBudgetResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, createdID.String(), body.ID)
	op.AssertExpectations(t)
}

func TestHTTP_CreateBudget_Duplicate(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).Return(dberr.ErrConflict)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(uuid.Must(uuid.NewV4())))
	NewCreateBudgetHandler(op).Register(api)

	resp := api.Post("/v1/budget", map[string]any{
		"categoryID": uuid.Must(uuid.NewV4()).String(),
		"amount":     "500.00",
		"month":      "2025-06",
	})
	assert.Equal(t, 409, resp.Code)
}
