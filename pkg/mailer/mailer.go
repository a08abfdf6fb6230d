package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/usama228/AMS-Backend/config"
)

// Mailer sends plain notification mails over SMTP. Delivery is best-effort:
// account creation must not fail because the mail server is down, so callers
// use SendAsync and failures only reach the log.
type Mailer struct {
	host string
	user string
	pass string
}

func NewMailer(cfg *config.AppConfig) *Mailer {
	return &Mailer{
		host: cfg.EmailHost,
		user: cfg.EmailUser,
		pass: cfg.EmailPass,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("mail host is not configured")
	}

	msg := []byte("From: " + m.user + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := smtp.SendMail(m.host+":587", auth, m.user, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		if err := m.Send(to, subject, body); err != nil {
			log.Printf("mailer: %v", err)
		}
	}()
}
