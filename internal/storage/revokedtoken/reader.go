// Package revokedtoken records refresh tokens invalidated by logout before
// their natural expiry.
package revokedtoken

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
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

// IsRevoked reports whether the token ID has been revoked.
func (r *Reader) IsRevoked(ctx context.Context, tokenID uuid.UUID) (bool, error) {
	query := psql.Select(
		sm.Columns("token_id"),
		sm.From("revoked_tokens"),
		sm.Where(psql.Quote("token_id").EQ(psql.Arg(tokenID))),
	)

	_, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dberr.Classify(err)
	}
	return true, nil
}
