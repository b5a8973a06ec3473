package transaction

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	transactionstore "github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description string `json:"description" required:"true" minLength:"1" doc:"What the money was for"`
	CategoryID  string `json:"categoryID" doc:"Category UUID, omit for uncategorized"`
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Date        string `json:"date" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a transaction.
type CreateTransactionResponseBody struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new transaction for the authenticated user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Body.Description)
	if description == "" {
		return nil, huma.NewError(http.StatusBadRequest, "description must not be blank")
	}

	transactionType := transactionstore.Type(input.Body.Type)
	if !transactionType.Valid() {
		return nil, huma.NewError(http.StatusBadRequest, "type must be income or expense")
	}

	var categoryID uuid.NullUUID
	if input.Body.CategoryID != "" {
		parsed, parseErr := uuid.FromString(input.Body.CategoryID)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", parseErr)
		}
		categoryID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	var transactionDate time.Time
	if input.Body.Date != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if transactionDate.UTC().Truncate(24 * time.Hour).After(today) {
			return nil, huma.NewError(http.StatusBadRequest, "date must not be in the future")
		}
	} else {
		transactionDate = time.Now()
	}

	return &actions.CreateTransaction{
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		Type:        transactionType,
		Date:        transactionDate,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return nil, httperr.FromError("authentication required", err)
	}

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	action.UserID = userID

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromError("failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponseBody{ID: action.CreatedID.String()},
	}, nil
}
