package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/mail"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
	"github.com/carson-networks/finance-tracker/internal/storage/revokedtoken"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

const minPasswordLength = 8

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so login failures don't reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService handles registration, login, token refresh, and the email
// change / password reset workflows.
type AuthService struct {
	storage *storage.Storage
	tokens  *auth.Tokens
	mailer  mail.Mailer
	logger  *logrus.Logger
}

func NewAuthService(store *storage.Storage, tokens *auth.Tokens, mailer mail.Mailer, logger *logrus.Logger) *AuthService {
	return &AuthService{
		storage: store,
		tokens:  tokens,
		mailer:  mailer,
		logger:  logger,
	}
}

// Register creates the account, issues a token pair, and sends the welcome
// email. A failed welcome email is logged, never surfaced.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*user.User, *auth.TokenPair, error) {
	if input.Email == "" || input.FirstName == "" || input.LastName == "" {
		return nil, nil, errors.Wrap(ErrInvalidInput, "missing required field")
	}
	if len(input.Password) < minPasswordLength {
		return nil, nil, errors.Wrap(ErrInvalidInput, "password too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, errors.Wrap(err, "hash password")
	}

	writer, err := s.storage.Write(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "begin write")
	}

	userID, err := writer.Users.Insert(ctx, &user.UserCreate{
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	})
	if err != nil {
		_ = writer.Rollback()
		return nil, nil, err
	}
	if err = writer.Commit(); err != nil {
		return nil, nil, errors.Wrap(err, "commit")
	}

	created, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.IssuePair(userID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.mailer.Send(ctx, mail.Welcome(created.Email, created.FirstName)); err != nil {
		s.logger.WithError(err).WithField("email", created.Email).Error("AuthService.Register.welcome email")
	}

	return created, pair, nil
}

// Login verifies the password and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.User, *auth.TokenPair, error) {
	found, err := s.storage.Users.FindByEmail(ctx, email)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(found.ID)
	if err != nil {
		return nil, nil, err
	}
	return found, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. Tokens revoked
// by logout are rejected even before their natural expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshClaims(refreshToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.storage.RevokedTokens.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, auth.ErrInvalidToken
	}

	// The account may have been removed since the token was minted.
	if _, err := s.storage.Users.FindByID(ctx, claims.UserID); err != nil {
		return nil, err
	}

	return s.tokens.IssuePair(claims.UserID)
}

// Logout revokes the refresh token so it can no longer mint new pairs. The
// access token is short-lived and simply ages out.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	claims, err := s.tokens.VerifyRefreshClaims(refreshToken)
	if err != nil {
		return err
	}
	if claims.UserID != userID {
		return auth.ErrInvalidToken
	}

	writer, err := s.storage.Write(ctx)
	if err != nil {
		return errors.Wrap(err, "begin write")
	}
	if err = writer.RevokedTokens.Insert(ctx, &revokedtoken.RevokedTokenCreate{
		TokenID:   claims.TokenID,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt,
	}); err != nil {
		_ = writer.Rollback()
		// Revoking an already-revoked token is a no-op.
		if errors.Is(err, dberr.ErrConflict) {
			return nil
		}
		return err
	}
	return errors.Wrap(writer.Commit(), "commit")
}

// Profile returns the authenticated user's record.
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return s.storage.Users.FindByID(ctx, userID)
}

// UpdateProfile applies the set name fields and returns the fresh record.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, update *user.UserUpdate) (*user.User, error) {
	if name, ok := update.FirstName.Get(); ok && name == "" {
		return nil, errors.Wrap(ErrInvalidInput, "first name must not be blank")
	}
	if name, ok := update.LastName.Get(); ok && name == "" {
		return nil, errors.Wrap(ErrInvalidInput, "last name must not be blank")
	}

	writer, err := s.storage.Write(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "begin write")
	}
	if err = writer.Users.UpdateProfile(ctx, userID, update); err != nil {
		_ = writer.Rollback()
		return nil, err
	}
	if err = writer.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}

	return s.storage.Users.FindByID(ctx, userID)
}

// ChangePassword verifies the current password before storing the new one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errors.Wrap(ErrInvalidInput, "password too short")
	}

	found, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(currentPassword)) != nil {
		return errors.Wrap(ErrInvalidInput, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	writer, err := s.storage.Write(ctx)
	if err != nil {
		return errors.Wrap(err, "begin write")
	}
	if err = writer.Users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		_ = writer.Rollback()
		return err
	}
	return errors.Wrap(writer.Commit(), "commit")
}

// RequestEmailChange sends a verification token to the new address. The
// address only changes once ConfirmEmailChange sees that token back.
func (s *AuthService) RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error {
	if newEmail == "" {
		return errors.Wrap(ErrInvalidInput, "missing new email")
	}

	found, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	token := auth.EmailChangeToken(found.ID, found.Email, newEmail)
	if err := s.mailer.Send(ctx, mail.EmailVerification(newEmail, found.FirstName, found.Email, token)); err != nil {
		return errors.Wrap(err, "send verification email")
	}
	return nil
}

// ConfirmEmailChange verifies the token, switches the address, marks it
// verified, and notifies the old address. The notification is best effort.
func (s *AuthService) ConfirmEmailChange(ctx context.Context, userID uuid.UUID, newEmail, token string) error {
	found, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.VerifyEmailChangeToken(token, found.ID, found.Email, newEmail) {
		return errors.Wrap(ErrInvalidInput, "verification token mismatch")
	}

	writer, err := s.storage.Write(ctx)
	if err != nil {
		return errors.Wrap(err, "begin write")
	}
	if err = writer.Users.UpdateEmail(ctx, found.ID, newEmail, true); err != nil {
		_ = writer.Rollback()
		return err
	}
	if err = writer.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}

	if err := s.mailer.Send(ctx, mail.EmailChangeNotification(found.Email, found.FirstName, newEmail)); err != nil {
		s.logger.WithError(err).WithField("email", found.Email).Error("AuthService.ConfirmEmailChange.notification email")
	}
	return nil
}

// RequestPasswordReset emails a reset token. An unknown email is treated as
// success so the endpoint doesn't reveal which addresses have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	found, err := s.storage.Users.FindByEmail(ctx, email)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token, err := s.tokens.IssuePasswordReset(found.ID)
	if err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, mail.PasswordReset(found.Email, found.FirstName, token)); err != nil {
		return errors.Wrap(err, "send reset email")
	}
	return nil
}

// ConfirmPasswordReset verifies the reset token and stores the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errors.Wrap(ErrInvalidInput, "password too short")
	}

	userID, err := s.tokens.VerifyPasswordReset(token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	writer, err := s.storage.Write(ctx)
	if err != nil {
		return errors.Wrap(err, "begin write")
	}
	if err = writer.Users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		_ = writer.Rollback()
		return err
	}
	return errors.Wrap(writer.Commit(), "commit")
}
