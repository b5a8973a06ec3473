package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeAddressesNewUser(t *testing.T) {
	msg := Welcome("jordan@example.com", "Jordan")

	assert.Equal(t, "jordan@example.com", msg.To)
	assert.Equal(t, "Welcome to Personal Finance Tracker", msg.Subject)
	assert.Contains(t, msg.Body, "Hi Jordan,")
}

func TestEmailVerificationGoesToNewAddress(t *testing.T) {
	msg := EmailVerification("new@example.com", "Jordan", "old@example.com", "tok-123")

	assert.Equal(t, "new@example.com", msg.To)
	assert.Contains(t, msg.Body, "from old@example.com to new@example.com")
	assert.Contains(t, msg.Body, "Verification Token: tok-123")
}

func TestEmailChangeNotificationGoesToOldAddress(t *testing.T) {
	msg := EmailChangeNotification("old@example.com", "Jordan", "new@example.com")

	assert.Equal(t, "old@example.com", msg.To)
	assert.Contains(t, msg.Body, "changed from old@example.com to new@example.com")
}

func TestPasswordResetIncludesToken(t *testing.T) {
	msg := PasswordReset("jordan@example.com", "Jordan", "reset-456")

	assert.Equal(t, "jordan@example.com", msg.To)
	assert.Equal(t, "Password Reset - Personal Finance Tracker", msg.Subject)
	assert.Contains(t, msg.Body, "Reset Token: reset-456")
}
