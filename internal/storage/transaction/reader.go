package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

var columns = []any{
	"id", "user_id", "amount", "description", "category_id",
	"transaction_type", "transaction_date", "created_at", "updated_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns the user's transactions matching the filter, newest first.
// One extra row beyond the limit is fetched so callers can detect another page.
func (r *Reader) List(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if filter != nil {
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.Type != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_type").EQ(psql.Arg(string(*filter.Type)))))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return rows, nil
}

// FindByID retrieves one of the user's transactions by primary key.
func (r *Reader) FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return row, nil
}

// SumExpenses sums the user's expense amounts for a category within the
// inclusive date range. Zero when nothing matches.
func (r *Reader) SumExpenses(ctx context.Context, userID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("transaction_type").EQ(psql.Arg(string(TypeExpense)))),
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(to))),
	)

	total, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, dberr.Classify(err)
	}
	return total, nil
}

// ListCategorized returns all of the user's transactions that carry a
// category, newest first. Used for history-based category suggestions.
func (r *Reader) ListCategorized(ctx context.Context, userID uuid.UUID) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("category_id").IsNotNull()),
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return rows, nil
}

// ListUncategorized returns up to limit of the user's transactions without a
// category, newest first.
func (r *Reader) ListUncategorized(ctx context.Context, userID uuid.UUID, limit int) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("category_id").IsNull()),
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("created_at").Desc(),
	}
	if limit > 0 {
		queryMods = append(queryMods, sm.Limit(limit))
	}

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return rows, nil
}
