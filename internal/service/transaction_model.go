package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Transaction is the service-level transaction model returned to handlers.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	CategoryID  uuid.NullUUID
	Type        transaction.Type
	Date        time.Time
	CreatedAt   time.Time
}

// TransactionCursor identifies a position in a paginated transaction listing.
// MaxCreationTime is locked in on the first page so rows created while paging
// do not shift later pages.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionListFilter narrows a transaction listing.
type TransactionListFilter struct {
	CategoryID *uuid.UUID
	Type       *transaction.Type
}
