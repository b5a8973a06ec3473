package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const defaultLimit = 20

type transactionLister interface {
	List(ctx context.Context, userID uuid.UUID, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error)
}

// TransactionService handles transaction read logic.
type TransactionService struct {
	transactions transactionLister
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactions transactionLister) *TransactionService {
	return &TransactionService{
		transactions: transactions,
	}
}

// GetTransaction returns one of the user's transactions.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	row, err := s.transactions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	converted := convertTransaction(row)
	return &converted, nil
}

// ListTransactions returns a page of the user's transactions using
// cursor-based pagination, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *TransactionCursor, filter *TransactionListFilter) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}
	// A client cursor carrying a zero or negative limit would otherwise page
	// forever without advancing.
	if limit <= 0 {
		limit = defaultLimit
	}

	storageFilter := &transaction.TransactionFilter{
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}
	if filter != nil {
		storageFilter.CategoryID = filter.CategoryID
		storageFilter.Type = filter.Type
	}

	rows, err := s.transactions.List(ctx, userID, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = convertTransaction(row)
	}

	return convertedTransactions, nextCursor, nil
}

func convertTransaction(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Amount:      row.Amount,
		Description: row.Description,
		CategoryID:  row.CategoryID,
		Type:        row.Type,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
	}
}
