package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a new category and returns its generated ID. A duplicate
// (user, name) pair surfaces as dberr.ErrConflict.
func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	color := create.Color
	if color == "" {
		color = DefaultColor
	}

	query := psql.Insert(
		im.Into("categories", "user_id", "name", "description", "color"),
		im.Values(psql.Arg(create.UserID, create.Name, create.Description, color)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, dberr.Classify(err)
	}
	return id, nil
}

// Update applies the set fields of the update to one of the user's categories.
func (w *Writer) Update(ctx context.Context, userID, id uuid.UUID, update *CategoryUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("categories"),
	}
	if name, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(name))
	}
	if description, ok := update.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol("description").ToArg(description))
	}
	if color, ok := update.Color.Get(); ok {
		queryMods = append(queryMods, um.SetCol("color").ToArg(color))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	result, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...))
	if err != nil {
		return dberr.Classify(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Delete removes one of the user's categories. Transactions referencing it
// keep their rows; the category reference is nulled out by the schema's
// ON DELETE SET NULL.
func (w *Writer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	result, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return dberr.Classify(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
