package contact

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/devfolio/portfolio-backend/config"
)

// Mailer sends the owner a notification for each contact message.
type Mailer struct {
	dialer    *gomail.Dialer
	sender    string
	recipient string
}

// NewMailer builds a mailer from config, or nil when no recipient is
// configured (notifications disabled).
func NewMailer(cfg *config.MailConfig) *Mailer {
	if cfg.Recipient == "" || cfg.SMTPHost == "" {
		return nil
	}

	return &Mailer{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		sender:    cfg.Sender,
		recipient: cfg.Recipient,
	}
}

func (m *Mailer) Send(msg *Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.sender)
	mail.SetHeader("To", m.recipient)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", fmt.Sprintf("[portfolio] %s", msg.Subject))
	mail.SetBody("text/plain", fmt.Sprintf("From: %s\n\n%s", msg.Email, msg.Body))

	return m.dialer.DialAndSend(mail)
}
