package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/pkg/errors"

	"github.com/carson-networks/finance-tracker/internal/config"
)

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(env *config.Config) *SMTPMailer {
	var auth smtp.Auth
	if env.SMTPUsername != "" {
		auth = smtp.PlainAuth("", env.SMTPUsername, env.SMTPPassword, env.SMTPAddress)
	}

	return &SMTPMailer{
		addr: env.SMTPAddress + ":" + env.SMTPPort,
		from: env.SMTPFrom,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	payload := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.from, msg.To, msg.Subject, msg.Body,
	)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{msg.To}, []byte(payload)); err != nil {
		return errors.Wrap(err, "smtp send")
	}
	return nil
}
