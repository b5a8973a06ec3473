package transaction

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
	transactionstore "github.com/carson-networks/finance-tracker/internal/storage/transaction"
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

func TestParseCreateTransactionInput_Defaults(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Amount:      "25.50",
			Description: "Lunch at the deli",
			Type:        "expense",
		},
	}

	action, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)

	assert.True(t, action.Amount.Equal(decimal.RequireFromString("25.50")))
	assert.Equal(t, transactionstore.TypeExpense, action.Type)
	assert.False(t, action.CategoryID.Valid)
	assert.False(t, action.Date.IsZero())
}

func TestParseCreateTransactionInput_NegativeAmount(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Amount:      "-10.00",
			Description: "Refund",
			Type:        "expense",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

func TestParseCreateTransactionInput_TooManyDecimalPlaces(t *testing.T) {
	for _, amount := range []string{"0.001", "10.005"} {
		input := &CreateTransactionInput{
			Body: CreateTransactionBody{
				Amount:      amount,
				Description: "Fractional cents",
				Type:        "expense",
			},
		}

		_, err := parseCreateTransactionInput(input)
		assert.Error(t, err, amount)
	}
}

func TestParseCreateTransactionInput_FutureDate(t *testing.T) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Amount:      "10.00",
			Description: "Time travel",
			Type:        "expense",
			Date:        tomorrow.Format(time.RFC3339),
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

func TestParseCreateTransactionInput_PastDateAccepted(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Amount:      "10.00",
			Description: "Back-dated groceries",
			Type:        "expense",
			Date:        "2025-06-10T09:00:00Z",
		},
	}

	action, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, 10, action.Date.Day())
}

func TestParseCreateTransactionInput_BadType(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Amount:      "10.00",
			Description: "Something",
			Type:        "transfer",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

func TestHTTP_CreateTransaction(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateTransaction")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.CreateTransaction)
			assert.Equal(t, userID, action.UserID)
			assert.Equal(t, categoryID, action.CategoryID.UUID)
			assert.True(t, action.Amount.Equal(decimal.RequireFromString("42.00")))
			action.CreatedID = createdID
		}).
		Return(nil)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewCreateTransactionHandler(op).Register(api)

	resp := api.Post("/v1/transaction", map[string]any{
		"amount":      "42.00",
		"description": "Weekly groceries",
		"categoryID":  categoryID.String(),
		"type":        "expense",
		"date":        "2025-06-10T09:00:00Z",
	})
	assert.Equal(t, 201, resp.Code)

	var body CreateTransactionResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, createdID.String(), body.ID)
	op.AssertExpectations(t)
}
