package notify

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

// Notifier dispatches a notice blast to the student body. Delivery is
// fire-and-forget with at-least-once semantics; the outcome never feeds back
// into the notice record beyond its sent_via_email flag.
type Notifier interface {
	BroadcastNotice(title, content string) error
}

// SMTPConfig holds configuration for the mail relay.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	ListAddr  string // distribution list that reaches all students
}

// EmailNotifier implements Notifier over SMTP. When credentials are not
// configured it degrades to logging the blast, which keeps development
// environments working without a relay.
type EmailNotifier struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailNotifier creates a new EmailNotifier.
func NewEmailNotifier(config SMTPConfig, logger zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{config: config, logger: logger}
}

// BroadcastNotice sends the notice to the student distribution list.
func (n *EmailNotifier) BroadcastNotice(title, content string) error {
	if n.config.Username == "" || n.config.Password == "" {
		n.logger.Info().
			Str("title", title).
			Msg("SMTP credentials not configured - notice blast logged instead of sent")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: [Campus Notice] %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		n.config.FromName, n.config.FromEmail, n.config.ListAddr, title, content)

	if err := smtp.SendMail(addr, auth, n.config.FromEmail, []string{n.config.ListAddr}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send notice blast: %w", err)
	}
	return nil
}
