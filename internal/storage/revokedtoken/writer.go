package revokedtoken

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"

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

// Insert records a revoked token. Revoking the same token twice surfaces as
// dberr.ErrConflict.
func (w *Writer) Insert(ctx context.Context, create *RevokedTokenCreate) error {
	query := psql.Insert(
		im.Into("revoked_tokens", "token_id", "user_id", "expires_at"),
		im.Values(psql.Arg(create.TokenID, create.UserID, create.ExpiresAt)),
	)

	if _, err := bob.Exec(ctx, w.tx, query); err != nil {
		return dberr.Classify(err)
	}
	return nil
}
