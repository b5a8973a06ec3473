package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteBudget removes one of the user's budgets. Transactions are untouched.
type DeleteBudget struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

func (a *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Budgets.Delete(ctx, a.UserID, a.BudgetID)
}
