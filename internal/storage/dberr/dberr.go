// Package dberr maps driver-level failures onto the sentinel errors the
// service layer branches on.
package dberr

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound indicates the referenced row does not exist for the owner.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a unique constraint rejected the write.
	ErrConflict = errors.New("already exists")
)

const uniqueViolation = "23505"

// Classify converts sql and pq errors into sentinel errors, passing anything
// unrecognized through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrConflict
	}

	return err
}
