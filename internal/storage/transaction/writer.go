package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
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

// Insert creates a new transaction and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("transactions",
			"user_id", "amount", "description", "category_id",
			"transaction_type", "transaction_date",
		),
		im.Values(psql.Arg(
			create.UserID, create.Amount, create.Description,
			create.CategoryID, string(create.Type), create.Date,
		)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, dberr.Classify(err)
	}
	return id, nil
}

// SetCategory assigns or clears the category on one of the user's
// transactions.
func (w *Writer) SetCategory(ctx context.Context, userID, id uuid.UUID, categoryID uuid.NullUUID) error {
	query := psql.Update(
		um.Table("transactions"),
		um.SetCol("category_id").ToArg(categoryID),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
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

// Delete removes one of the user's transactions.
func (w *Writer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("transactions"),
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
