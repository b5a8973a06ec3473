package category

import (
	"time"

	categorystore "github.com/carson-networks/finance-tracker/internal/storage/category"
)

// Category is the API response model for a spending category.
type Category struct {
	ID          string `json:"id" doc:"Category UUID"`
	Name        string `json:"name" doc:"Category name, unique per user"`
	Description string `json:"description" doc:"Free-form description"`
	Color       string `json:"color" doc:"Hex display color"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromStorage(row *categorystore.Category) Category {
	return Category{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		Color:       row.Color,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
}
