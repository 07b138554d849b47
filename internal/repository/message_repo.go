package repository

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/Cheertaboi/minimal-shop/internal/models"
)

// MessageStore keeps accepted contact-form messages.
type MessageStore interface {
	SaveMessage(ctx context.Context, msg models.ContactMessage) (int64, error)
}

type MemoryMessageStore struct {
	mu       sync.RWMutex
	messages []models.ContactMessage
	nextID   int64
}

func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{nextID: 1}
}

func (s *MemoryMessageStore) SaveMessage(ctx context.Context, msg models.ContactMessage) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = s.nextID
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	s.nextID++
	s.messages = append(s.messages, msg)
	return msg.ID, nil
}

// MessageRepo stores contact messages in the contact_messages table.
type MessageRepo struct {
	db *sql.DB
}

func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

func (r *MessageRepo) SaveMessage(ctx context.Context, msg models.ContactMessage) (int64, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	insert := `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, insert, msg.Name, msg.Email, msg.Message, msg.CreatedAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
