package auth

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
)

type userIDKey struct{}

// ErrNoUser means the request context carries no authenticated user, i.e. the
// middleware did not run or rejected the request.
var ErrNoUser = errors.New("no authenticated user in context")

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID extracts the authenticated user's ID from the request context.
func UserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoUser
	}
	return userID, nil
}
