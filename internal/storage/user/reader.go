package user

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

var columns = []any{
	"id", "email", "password_hash", "first_name", "last_name",
	"email_verified", "created_at", "updated_at",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a user by primary key.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*User]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return row, nil
}

// FindByEmail retrieves a user by email, matched case-insensitively.
func (r *Reader) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(strings.ToLower(email)))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*User]())
	if err != nil {
		return nil, dberr.Classify(err)
	}
	return row, nil
}
