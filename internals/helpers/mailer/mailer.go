// internals/helpers/mailer/mailer.go
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Sender is the notification capability the workflow consumes. Delivery is
// best effort: callers log failures and never roll back domain state on them.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text mail over SMTP with optional AUTH.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func NewFromEnv(getEnv func(key string, def ...string) string) *SMTPMailer {
	return &SMTPMailer{
		Host: getEnv("SMTP_HOST"),
		Port: getEnv("SMTP_PORT", "587"),
		User: getEnv("SMTP_USER"),
		Pass: getEnv("SMTP_PASS"),
		From: getEnv("SMTP_FROM", getEnv("SMTP_USER")),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if strings.TrimSpace(m.Host) == "" {
		return fmt.Errorf("smtp host not configured")
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient")
	}

	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := m.Host + ":" + m.Port
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg))
}

// SendAsync fires the send on a goroutine; a failure is logged, never
// propagated.
func SendAsync(s Sender, to, subject, body string) {
	go func() {
		if err := s.Send(to, subject, body); err != nil {
			log.Printf("[MAIL] send to %s failed: %v", to, err)
		} else {
			log.Printf("[MAIL] sent to %s: %s", to, subject)
		}
	}()
}
