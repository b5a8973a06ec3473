package user

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
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

// Insert creates a new user and returns the generated ID. A duplicate email
// surfaces as dberr.ErrConflict.
func (w *Writer) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("users", "email", "password_hash", "first_name", "last_name"),
		im.Values(psql.Arg(
			strings.ToLower(create.Email), create.PasswordHash,
			create.FirstName, create.LastName,
		)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, dberr.Classify(err)
	}
	return id, nil
}

// UpdateEmail replaces the user's email and records the verification state.
func (w *Writer) UpdateEmail(ctx context.Context, id uuid.UUID, email string, verified bool) error {
	query := psql.Update(
		um.Table("users"),
		um.SetCol("email").ToArg(strings.ToLower(email)),
		um.SetCol("email_verified").ToArg(verified),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
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

// UpdateProfile applies the set fields of the update to the user's profile.
func (w *Writer) UpdateProfile(ctx context.Context, id uuid.UUID, update *UserUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("users"),
	}
	if firstName, ok := update.FirstName.Get(); ok {
		queryMods = append(queryMods, um.SetCol("first_name").ToArg(firstName))
	}
	if lastName, ok := update.LastName.Get(); ok {
		queryMods = append(queryMods, um.SetCol("last_name").ToArg(lastName))
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

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

// UpdatePassword replaces the user's password hash.
func (w *Writer) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := psql.Update(
		um.Table("users"),
		um.SetCol("password_hash").ToArg(passwordHash),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
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
