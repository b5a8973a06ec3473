package auth

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func newTestTokens() *Tokens {
	tokens := NewTokens("test-secret", 15*time.Minute, 7*24*time.Hour)
	tokens.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return tokens
}

func TestIssuePair_RoundTrip(t *testing.T) {
	tokens := newTestTokens()
	userID := uuid.Must(uuid.NewV4())

	pair, err := tokens.IssuePair(userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	accessUser, err := tokens.VerifyAccess(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, accessUser)

	refreshUser, err := tokens.VerifyRefresh(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, refreshUser)
}

func TestVerifyRefreshClaims(t *testing.T) {
	tokens := newTestTokens()
	userID := uuid.Must(uuid.NewV4())

	pair, err := tokens.IssuePair(userID)
	assert.NoError(t, err)

	claims, err := tokens.VerifyRefreshClaims(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEqual(t, uuid.Nil, claims.TokenID)
	assert.True(t, claims.ExpiresAt.Equal(time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)))
}

func TestVerifyRefreshClaims_DistinctTokenIDs(t *testing.T) {
	tokens := newTestTokens()
	userID := uuid.Must(uuid.NewV4())

	first, err := tokens.IssuePair(userID)
	assert.NoError(t, err)
	second, err := tokens.IssuePair(userID)
	assert.NoError(t, err)

	firstClaims, err := tokens.VerifyRefreshClaims(first.RefreshToken)
	assert.NoError(t, err)
	secondClaims, err := tokens.VerifyRefreshClaims(second.RefreshToken)
	assert.NoError(t, err)

	assert.NotEqual(t, firstClaims.TokenID, secondClaims.TokenID)
}

func TestVerifyRefreshClaims_RejectsAccessToken(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.IssuePair(uuid.Must(uuid.NewV4()))
	assert.NoError(t, err)

	_, err = tokens.VerifyRefreshClaims(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccess_RejectsRefreshToken(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.IssuePair(uuid.Must(uuid.NewV4()))
	assert.NoError(t, err)

	_, err = tokens.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccess_Expired(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.IssuePair(uuid.Must(uuid.NewV4()))
	assert.NoError(t, err)

	tokens.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 16, 0, 0, time.UTC)
	}

	_, err = tokens.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccess_WrongSecret(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.IssuePair(uuid.Must(uuid.NewV4()))
	assert.NoError(t, err)

	other := NewTokens("another-secret", 15*time.Minute, 7*24*time.Hour)
	other.now = tokens.now

	_, err = other.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccess_Garbage(t *testing.T) {
	tokens := newTestTokens()

	_, err := tokens.VerifyAccess("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordResetToken_RoundTrip(t *testing.T) {
	tokens := newTestTokens()
	userID := uuid.Must(uuid.NewV4())

	raw, err := tokens.IssuePasswordReset(userID)
	assert.NoError(t, err)

	resetUser, err := tokens.VerifyPasswordReset(raw)
	assert.NoError(t, err)
	assert.Equal(t, userID, resetUser)

	_, err = tokens.VerifyAccess(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
