package category

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// DefaultColor is applied when a category is created without an explicit color.
const DefaultColor = "#3498db"

// Category represents a user-owned transaction category.
type Category struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	CreatedAt   time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Color       string // defaults to DefaultColor if empty
}

// CategoryUpdate carries the fields of a partial update. Unset fields are
// left untouched.
type CategoryUpdate struct {
	Name        omit.Val[string]
	Description omit.Val[string]
	Color       omit.Val[string]
}
