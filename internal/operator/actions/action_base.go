package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is one unit of transactional write work. Perform runs inside a
// single storage transaction owned by the operator; actions that produce
// output store it on their own fields before returning.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
