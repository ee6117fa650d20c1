package contact

import (
	"context"

	"cloud.google.com/go/firestore"
)

// MessageRepository persists contact messages in a single collection; they
// are read from the Firebase console, not through this API.
type MessageRepository struct {
	client *firestore.Client
}

func NewMessageRepository(client *firestore.Client) *MessageRepository {
	return &MessageRepository{client: client}
}

func (r *MessageRepository) Create(ctx context.Context, m *Message) (*Message, error) {
	ref := r.client.Collection("contactMessages").NewDoc()
	if _, err := ref.Set(ctx, m); err != nil {
		return nil, err
	}

	created := *m
	created.ID = ref.ID
	return &created, nil
}
