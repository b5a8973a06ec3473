package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns all of the user's categories ordered by name.
func (r *Reader) List(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	query := psql.Select(
		sm.Columns("id", "user_id", "name", "description", "color", "created_at"),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[*Category]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return rows, nil
}

// FindByID retrieves one of the user's categories by primary key.
func (r *Reader) FindByID(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	query := psql.Select(
		sm.Columns("id", "user_id", "name", "description", "color", "created_at"),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Category]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return row, nil
}
