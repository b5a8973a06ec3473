// Package mail delivers the account lifecycle emails. Delivery failures are
// reported to the caller but are never allowed to fail the request that
// triggered them; callers log and move on.
package mail

import "context"

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends messages. The SMTP implementation is used in production;
// tests substitute a recorder.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
