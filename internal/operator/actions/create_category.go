package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

// CreateCategory inserts a category for the user. A duplicate name for the
// same user surfaces as dberr.ErrConflict.
type CreateCategory struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Color       string

	// Set by Perform.
	CreatedID uuid.UUID
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
		UserID:      a.UserID,
		Name:        a.Name,
		Description: a.Description,
		Color:       a.Color,
	})
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
