package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/mail"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	BudgetTracking *BudgetTrackingService
	Suggestions    *CategorySuggestionService
	Transactions   *TransactionService
	Auth           *AuthService
}

// NewService creates a new Service wired to the given storage.
func NewService(store *storage.Storage, tokens *auth.Tokens, mailer mail.Mailer, logger *logrus.Logger) *Service {
	return &Service{
		BudgetTracking: NewBudgetTrackingService(store.Budgets, store.Transactions),
		Suggestions:    NewCategorySuggestionService(store.Categories, store.Transactions),
		Transactions:   NewTransactionService(store.Transactions),
		Auth:           NewAuthService(store, tokens, mailer, logger),
	}
}
