package contact

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// Message is a visitor's contact form submission.
type Message struct {
	ID        string    `firestore:"-" json:"id"`
	Email     string    `firestore:"email" json:"email"`
	Subject   string    `firestore:"subject" json:"subject"`
	Body      string    `firestore:"message" json:"message"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

const (
	maxSubjectLen = 200
	maxBodyLen    = 5000
)

// Validate trims and checks the caller-supplied fields.
func (m *Message) Validate() error {
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Body = strings.TrimSpace(m.Body)

	if m.Email == "" || !strings.Contains(m.Email, "@") {
		return domain.Validationf("A valid email address is required")
	}
	if m.Subject == "" {
		return domain.Validationf("Subject is required")
	}
	if utf8.RuneCountInString(m.Subject) > maxSubjectLen {
		return domain.Validationf("Subject must be %d characters or fewer", maxSubjectLen)
	}
	if m.Body == "" {
		return domain.Validationf("Message is required")
	}
	if utf8.RuneCountInString(m.Body) > maxBodyLen {
		return domain.Validationf("Message must be %d characters or fewer", maxBodyLen)
	}
	return nil
}
