package mail

import "fmt"

// Plain-text bodies for the account lifecycle emails.

func Welcome(to, firstName string) Message {
	body := fmt.Sprintf(`Hi %s,

Welcome to Personal Finance Tracker! Your account has been successfully created.

You can now start tracking your finances and managing your budget.

Best regards,
The Personal Finance Tracker Team`, firstName)

	return Message{
		To:      to,
		Subject: "Welcome to Personal Finance Tracker",
		Body:    body,
	}
}

func EmailVerification(newEmail, firstName, currentEmail, token string) Message {
	body := fmt.Sprintf(`Hi %s,

You requested to change your email address from %s to %s.

To complete this change, please use the following verification token:
Verification Token: %s

Security Notice: This verification token will expire in 24 hours.
If you didn't request this change, please contact our support team immediately.

Best regards,
The Personal Finance Tracker Team`, firstName, currentEmail, newEmail, token)

	return Message{
		To:      newEmail,
		Subject: "Email Verification - Personal Finance Tracker",
		Body:    body,
	}
}

func EmailChangeNotification(oldEmail, firstName, newEmail string) Message {
	body := fmt.Sprintf(`Hi %s,

This is to notify you that your email address for Personal Finance Tracker
has been successfully changed from %s to %s.

Security Notice: If you didn't make this change, please contact our support team immediately.

Best regards,
The Personal Finance Tracker Team`, firstName, oldEmail, newEmail)

	return Message{
		To:      oldEmail,
		Subject: "Email Address Changed - Personal Finance Tracker",
		Body:    body,
	}
}

func PasswordReset(to, firstName, token string) Message {
	body := fmt.Sprintf(`Hi %s,

You requested a password reset for your Personal Finance Tracker account.

Reset Token: %s

Security Notice: This reset link will expire in 24 hours.
If you didn't request this reset, please ignore this email.

Best regards,
The Personal Finance Tracker Team`, firstName, token)

	return Message{
		To:      to,
		Subject: "Password Reset - Personal Finance Tracker",
		Body:    body,
	}
}
