package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// CreateBudget inserts a monthly budget for one of the user's categories.
// The month is normalized to its first day; a second budget for the same
// (user, category, month) surfaces as dberr.ErrConflict.
type CreateBudget struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Month      time.Time

	// Set by Perform.
	CreatedID uuid.UUID
}

func (a *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Categories.FindByID(ctx, a.UserID, a.CategoryID); err != nil {
		return err
	}

	id, err := writer.Budgets.Insert(ctx, &budget.BudgetCreate{
		UserID:     a.UserID,
		CategoryID: a.CategoryID,
		Amount:     a.Amount,
		Month:      a.Month,
	})
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
