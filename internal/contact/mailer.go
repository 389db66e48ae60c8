package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/amriteshrai/portfolio-backend/config"
)

// ErrNotConfigured is returned when SMTP credentials are missing from the
// environment.
var ErrNotConfigured = errors.New("mail transport is not configured")

// Message is a contact form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Mailer dispatches a contact message to the site owner's inbox. Dispatch is
// awaited in full: success means the submission was accepted by the outbound
// server, not that it was delivered.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends contact mail over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	if cfg.User == "" || cfg.Password == "" {
		return &SMTPMailer{}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
		to:     cfg.To,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.to)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", fmt.Sprintf("New Contact Form Submission from %s", msg.Name))
	mail.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", msg.Name, msg.Email, msg.Body))
	mail.AddAlternative("text/html", fmt.Sprintf(
		"<h3>New Contact Form Submission</h3><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><br/><p><strong>Message:</strong></p><p>%s</p>",
		msg.Name, msg.Email, strings.ReplaceAll(msg.Body, "\n", "<br>"),
	))

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}
