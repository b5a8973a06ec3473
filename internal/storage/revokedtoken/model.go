package revokedtoken

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// RevokedTokenCreate is the input for revoking a refresh token. ExpiresAt
// comes from the token itself so expired rows can be purged.
type RevokedTokenCreate struct {
	TokenID   uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
}
