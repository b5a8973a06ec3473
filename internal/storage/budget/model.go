package budget

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly budget for a category. Month is always the
// first calendar day of the month it covers. The category name and color are
// joined in because every consumer renders them next to the amounts.
type Budget struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	CategoryID    uuid.UUID       `db:"category_id"`
	CategoryName  string          `db:"category_name"`
	CategoryColor string          `db:"category_color"`
	Amount        decimal.Decimal `db:"amount"`
	Month         time.Time       `db:"month"`
	CreatedAt     time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Month      time.Time // normalized to the first of the month on insert
}
