package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

var columns = []any{
	"budgets.id", "budgets.user_id", "budgets.category_id",
	psql.Raw("categories.name AS category_name"),
	psql.Raw("categories.color AS category_color"),
	"budgets.amount", "budgets.month", "budgets.created_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns all of the user's budgets for the given month, ordered by
// category name.
func (r *Reader) List(ctx context.Context, userID uuid.UUID, month time.Time) ([]*Budget, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.InnerJoin("categories").On(
			psql.Quote("budgets", "category_id").EQ(psql.Quote("categories", "id")),
		),
		sm.Where(psql.Quote("budgets", "user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("budgets", "month").EQ(psql.Arg(month))),
		sm.OrderBy("categories.name").Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return rows, nil
}

// FindByCategoryMonth retrieves the user's budget for a category and month,
// or dberr.ErrNotFound when none was set up.
func (r *Reader) FindByCategoryMonth(ctx context.Context, userID, categoryID uuid.UUID, month time.Time) (*Budget, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.InnerJoin("categories").On(
			psql.Quote("budgets", "category_id").EQ(psql.Quote("categories", "id")),
		),
		sm.Where(psql.Quote("budgets", "user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("budgets", "category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("budgets", "month").EQ(psql.Arg(month))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return row, nil
}

// FindByID retrieves one of the user's budgets by primary key.
func (r *Reader) FindByID(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("budgets"),
		sm.InnerJoin("categories").On(
			psql.Quote("budgets", "category_id").EQ(psql.Quote("categories", "id")),
		),
		sm.Where(psql.Quote("budgets", "id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("budgets", "user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return row, nil
}
