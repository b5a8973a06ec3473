package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) List(ctx context.Context, userID uuid.UUID, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionLister) FindByID(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func makeTransactionRows(count int, createdAt time.Time) []*transaction.Transaction {
	rows := make([]*transaction.Transaction, count)
	for i := range rows {
		rows[i] = &transaction.Transaction{
			ID:          uuid.Must(uuid.NewV4()),
			Amount:      decimal.RequireFromString("10.00"),
			Description: "Coffee",
			Type:        transaction.TypeExpense,
			Date:        createdAt,
			CreatedAt:   createdAt.Add(-time.Duration(i) * time.Minute),
		}
	}
	return rows
}

func TestListTransactions_FirstPageNoNextCursor(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	lister := new(mockTransactionLister)
	lister.On("List", mock.Anything, userID, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == defaultLimit && f.Offset == 0 && f.MaxCreationTime == nil
	})).Return(makeTransactionRows(3, now), nil)

	svc := NewTransactionService(lister)
	rows, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil, nil)
	assert.NoError(t, err)

	assert.Len(t, rows, 3)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_OverfetchProducesNextCursor(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	lister := new(mockTransactionLister)
	lister.On("List", mock.Anything, userID, mock.Anything).
		Return(makeTransactionRows(defaultLimit+1, now), nil)

	svc := NewTransactionService(lister)
	rows, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil, nil)
	assert.NoError(t, err)

	assert.Len(t, rows, defaultLimit)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
	assert.Equal(t, now, nextCursor.MaxCreationTime)
}

func TestListTransactions_CursorLocksMaxCreationTime(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lockedMax := now.Add(-time.Hour)

	lister := new(mockTransactionLister)
	lister.On("List", mock.Anything, userID, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == 10 && f.Offset == 10 &&
			f.MaxCreationTime != nil && f.MaxCreationTime.Equal(lockedMax)
	})).Return(makeTransactionRows(11, now), nil)

	svc := NewTransactionService(lister)
	rows, nextCursor, err := svc.ListTransactions(context.Background(), userID, &TransactionCursor{
		Position:        10,
		Limit:           10,
		MaxCreationTime: lockedMax,
	}, nil)
	assert.NoError(t, err)

	assert.Len(t, rows, 10)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, 20, nextCursor.Position)
	assert.Equal(t, lockedMax, nextCursor.MaxCreationTime)
}

func TestListTransactions_ZeroLimitCursorDefaultsAndAdvances(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lockedMax := now.Add(-time.Hour)

	lister := new(mockTransactionLister)
	lister.On("List", mock.Anything, userID, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == defaultLimit && f.Offset == 10
	})).Return(makeTransactionRows(defaultLimit+1, now), nil)

	svc := NewTransactionService(lister)
	rows, nextCursor, err := svc.ListTransactions(context.Background(), userID, &TransactionCursor{
		Position:        10,
		Limit:           0,
		MaxCreationTime: lockedMax,
	}, nil)
	assert.NoError(t, err)

	assert.Len(t, rows, defaultLimit)
	assert.NotNil(t, nextCursor)
	assert.Equal(t, 10+defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
}

func TestListTransactions_EmptyResult(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	lister := new(mockTransactionLister)
	lister.On("List", mock.Anything, userID, mock.Anything).
		Return([]*transaction.Transaction{}, nil)

	svc := NewTransactionService(lister)
	rows, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, rows)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_FilterPassedThrough(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	expense := transaction.TypeExpense

	lister := new(mockTransactionLister)
	lister.On("List", mock.Anything, userID, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.CategoryID != nil && *f.CategoryID == categoryID &&
			f.Type != nil && *f.Type == expense
	})).Return([]*transaction.Transaction{}, nil)

	svc := NewTransactionService(lister)
	_, _, err := svc.ListTransactions(context.Background(), userID, nil, &TransactionListFilter{
		CategoryID: &categoryID,
		Type:       &expense,
	})
	assert.NoError(t, err)
	lister.AssertExpectations(t)
}

func TestListTransactions_StorageError(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	lister := new(mockTransactionLister)
	lister.On("List", mock.Anything, userID, mock.Anything).
		Return(nil, errors.New("connection refused"))

	svc := NewTransactionService(lister)
	_, _, err := svc.ListTransactions(context.Background(), userID, nil, nil)
	assert.Error(t, err)
}

func TestGetTransaction(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	row := &transaction.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      decimal.RequireFromString("42.00"),
		Description: "Weekly groceries",
		Type:        transaction.TypeExpense,
	}

	lister := new(mockTransactionLister)
	lister.On("FindByID", mock.Anything, userID, row.ID).Return(row, nil)

	svc := NewTransactionService(lister)
	found, err := svc.GetTransaction(context.Background(), userID, row.ID)
	assert.NoError(t, err)

	assert.Equal(t, row.ID, found.ID)
	assert.Equal(t, "Weekly groceries", found.Description)
	assert.True(t, found.Amount.Equal(row.Amount))
}
