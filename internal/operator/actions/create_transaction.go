package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CreateTransaction inserts a transaction for the user. When a category is
// given it must belong to the same user; the ownership check runs in the same
// transaction as the insert.
type CreateTransaction struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	CategoryID  uuid.NullUUID
	Type        transaction.Type
	Date        time.Time

	// Set by Perform.
	CreatedID uuid.UUID
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.CategoryID.Valid {
		if _, err := writer.Categories.FindByID(ctx, a.UserID, a.CategoryID.UUID); err != nil {
			return err
		}
	}

	id, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		Amount:      a.Amount,
		Description: a.Description,
		CategoryID:  a.CategoryID,
		Type:        a.Type,
		Date:        a.Date,
	})
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
