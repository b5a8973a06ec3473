package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// SetTransactionCategory assigns (or clears) the category on one of the
// user's transactions, e.g. when a suggestion is accepted. An assigned
// category must belong to the same user.
type SetTransactionCategory struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	CategoryID    uuid.NullUUID
}

func (a *SetTransactionCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.CategoryID.Valid {
		if _, err := writer.Categories.FindByID(ctx, a.UserID, a.CategoryID.UUID); err != nil {
			return err
		}
	}

	return writer.Transactions.SetCategory(ctx, a.UserID, a.TransactionID, a.CategoryID)
}
