package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/revokedtoken"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// Writer bundles per-entity writers over a single transaction.
type Writer struct {
	tx            bob.Tx
	Users         *user.Writer
	Categories    *category.Writer
	Transactions  *transaction.Writer
	Budgets       *budget.Writer
	RevokedTokens *revokedtoken.Writer
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:            tx,
		Users:         user.NewWriter(tx),
		Categories:    category.NewWriter(tx),
		Transactions:  transaction.NewWriter(tx),
		Budgets:       budget.NewWriter(tx),
		RevokedTokens: revokedtoken.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
