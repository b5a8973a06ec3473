package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Description string `json:"description" doc:"What the money was for"`
	CategoryID  string `json:"categoryID,omitempty" doc:"Category UUID, empty when uncategorized"`
	Type        string `json:"type" doc:"income or expense"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
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

func fromService(tx service.Transaction) Transaction {
	converted := Transaction{
		ID:          tx.ID.String(),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Type:        string(tx.Type),
		Date:        tx.Date.Format(time.RFC3339),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID.Valid {
		converted.CategoryID = tx.CategoryID.UUID.String()
	}
	return converted
}
