package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Type distinguishes money coming in from money going out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a transaction record. CategoryID is null for
// uncategorized transactions and when the category was deleted.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CategoryID  uuid.NullUUID   `db:"category_id"`
	Type        Type            `db:"transaction_type"`
	Date        time.Time       `db:"transaction_date"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	CategoryID  uuid.NullUUID
	Type        Type
	Date        time.Time
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	CategoryID      *uuid.UUID
	Type            *Type
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}
