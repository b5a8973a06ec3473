package auth

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess        = "access"
	tokenTypeRefresh       = "refresh"
	tokenTypePasswordReset = "password_reset"

	passwordResetTTL = time.Duration(24) * time.Hour
)

// ErrInvalidToken covers expired, malformed, mis-signed, and wrong-type
// tokens. Callers only need to know the token was rejected.
var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// RefreshClaims are the verified contents of a refresh token. TokenID is the
// handle logout uses to revoke the token before it expires.
type RefreshClaims struct {
	UserID    uuid.UUID
	TokenID   uuid.UUID
	ExpiresAt time.Time
}

// TokenPair is issued on login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // access token lifetime in seconds
}

// Tokens signs and verifies the HS256 JWTs used for API authentication and
// password reset links.
type Tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokens(secret string, accessTTL, refreshTTL time.Duration) *Tokens {
	return &Tokens{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair mints an access/refresh token pair for the user.
func (t *Tokens) IssuePair(userID uuid.UUID) (*TokenPair, error) {
	access, err := t.sign(userID, tokenTypeAccess, t.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := t.sign(userID, tokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(t.accessTTL.Seconds()),
	}, nil
}

// IssuePasswordReset mints a single-purpose reset token valid for 24 hours.
func (t *Tokens) IssuePasswordReset(userID uuid.UUID) (string, error) {
	return t.sign(userID, tokenTypePasswordReset, passwordResetTTL)
}

// VerifyAccess returns the user ID carried by a valid access token.
func (t *Tokens) VerifyAccess(raw string) (uuid.UUID, error) {
	return t.verify(raw, tokenTypeAccess)
}

// VerifyRefresh returns the user ID carried by a valid refresh token.
func (t *Tokens) VerifyRefresh(raw string) (uuid.UUID, error) {
	return t.verify(raw, tokenTypeRefresh)
}

// VerifyRefreshClaims returns the full claims of a valid refresh token, for
// callers that need the token ID and expiry as well as the user.
func (t *Tokens) VerifyRefreshClaims(raw string) (*RefreshClaims, error) {
	claims, err := t.verifyClaims(raw, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	tokenID, err := uuid.FromString(claims.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &RefreshClaims{
		UserID:    userID,
		TokenID:   tokenID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// VerifyPasswordReset returns the user ID carried by a valid reset token.
func (t *Tokens) VerifyPasswordReset(raw string) (uuid.UUID, error) {
	return t.verify(raw, tokenTypePasswordReset)
}

func (t *Tokens) sign(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	tokenID, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "generate token id")
	}

	now := t.now()
	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

func (t *Tokens) verify(raw, wantType string) (uuid.UUID, error) {
	claims, err := t.verifyClaims(raw, wantType)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

func (t *Tokens) verifyClaims(raw, wantType string) (*tokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
