// Package authv1 exposes registration, login, token refresh, and the email
// and password maintenance endpoints.
package authv1

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/auth"
	userstore "github.com/carson-networks/finance-tracker/internal/storage/user"
)

// User is the API response model for an account holder.
type User struct {
	ID            string `json:"id" doc:"User UUID"`
	Email         string `json:"email" doc:"Login email"`
	FirstName     string `json:"firstName" doc:"First name"`
	LastName      string `json:"lastName" doc:"Last name"`
	EmailVerified bool   `json:"emailVerified" doc:"Whether the email was confirmed"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

// TokenPair is the API response model for an access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken" doc:"Short-lived bearer token"`
	RefreshToken string `json:"refreshToken" doc:"Long-lived token for /v1/auth/refresh"`
}

func userFromStorage(row *userstore.User) User {
	return User{
		ID:            row.ID.String(),
		Email:         row.Email,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		EmailVerified: row.EmailVerified,
		CreatedAt:     row.CreatedAt.Format(time.RFC3339),
	}
}

func pairFromService(pair *auth.TokenPair) TokenPair {
	return TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
