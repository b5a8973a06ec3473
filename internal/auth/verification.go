package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// EmailChangeToken encodes the identity of an email change request so the
// confirmation step can prove the caller saw the verification email. The
// token is bound to the user, the current address, and the requested one.
func EmailChangeToken(userID uuid.UUID, currentEmail, newEmail string) string {
	payload := fmt.Sprintf("%s:%s:%s", userID, currentEmail, newEmail)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// VerifyEmailChangeToken checks a token against the expected identity triple.
func VerifyEmailChangeToken(token string, userID uuid.UUID, currentEmail, newEmail string) bool {
	expected := EmailChangeToken(userID, currentEmail, newEmail)
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}
