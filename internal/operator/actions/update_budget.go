package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// UpdateBudget changes the amount of one of the user's budgets.
type UpdateBudget struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
	Amount   decimal.Decimal
}

func (a *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Budgets.UpdateAmount(ctx, a.UserID, a.BudgetID, a.Amount)
}
