package actions

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

// UpdateCategory applies a partial update to one of the user's categories.
type UpdateCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID

	Name        omit.Val[string]
	Description omit.Val[string]
	Color       omit.Val[string]
}

func (a *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Categories.Update(ctx, a.UserID, a.CategoryID, &category.CategoryUpdate{
		Name:        a.Name,
		Description: a.Description,
		Color:       a.Color,
	})
}
