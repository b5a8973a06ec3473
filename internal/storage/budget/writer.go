package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
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

// Insert creates a new budget and returns its generated ID. The month is
// normalized to its first calendar day; a duplicate (user, category, month)
// surfaces as dberr.ErrConflict so a racing insert never silently wins.
func (w *Writer) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	month := time.Date(create.Month.Year(), create.Month.Month(), 1, 0, 0, 0, 0, time.UTC)

	query := psql.Insert(
		im.Into("budgets", "user_id", "category_id", "amount", "month"),
		im.Values(psql.Arg(create.UserID, create.CategoryID, create.Amount, month)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, dberr.Classify(err)
	}
	return id, nil
}

// UpdateAmount changes the amount on one of the user's budgets.
func (w *Writer) UpdateAmount(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) error {
	query := psql.Update(
		um.Table("budgets"),
		um.SetCol("amount").ToArg(amount),
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

// Delete removes one of the user's budgets.
func (w *Writer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("budgets"),
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
