package contact

import (
	"context"
	"log"
	"time"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// MessageStore is the persistence contract for contact messages.
type MessageStore interface {
	Create(ctx context.Context, m *Message) (*Message, error)
}

// Notifier forwards a stored message to the site owner.
type Notifier interface {
	Send(msg *Message) error
}

// Service validates and stores contact messages. Once a message is
// persisted, a notification failure is logged but does not fail the request.
type Service struct {
	store    MessageStore
	notifier Notifier
	now      func() time.Time
}

// NewService creates a contact service. notifier may be nil.
func NewService(store MessageStore, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Submit(ctx context.Context, m Message) (*Message, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.CreatedAt = s.now()

	stored, err := s.store.Create(ctx, &m)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "store contact message", Err: err}
	}

	if s.notifier != nil {
		if err := s.notifier.Send(stored); err != nil {
			log.Printf("contact notification failed: %v", err)
		}
	}

	return stored, nil
}
