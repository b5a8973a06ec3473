package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/revokedtoken"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// Storage exposes read access per entity plus Write for transactional
// mutations.
type Storage struct {
	DB            bob.DB
	Users         *user.Reader
	Categories    *category.Reader
	Transactions  *transaction.Reader
	Budgets       *budget.Reader
	RevokedTokens *revokedtoken.Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	bdb := bob.NewDB(db)
	return &Storage{
		DB:            bdb,
		Users:         user.NewReader(bdb),
		Categories:    category.NewReader(bdb),
		Transactions:  transaction.NewReader(bdb),
		Budgets:       budget.NewReader(bdb),
		RevokedTokens: revokedtoken.NewReader(bdb),
	}, nil
}

// Write opens a transaction and returns a Writer scoped to it. The caller
// must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
