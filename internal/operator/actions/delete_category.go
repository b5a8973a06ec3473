package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteCategory removes one of the user's categories. Dependent transactions
// survive with their category reference nulled out; they are never deleted.
type DeleteCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Categories.Delete(ctx, a.UserID, a.CategoryID)
}
