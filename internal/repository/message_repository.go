package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gradeview/gradeview-api/internal/models"
)

// MessageRepository persists contact-form submissions.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Insert stores a message, stamping id and submission time when absent.
func (r *MessageRepository) Insert(ctx context.Context, message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Date == 0 {
		message.Date = time.Now().Unix()
	}
	const query = `INSERT INTO messages (id, name, email, message, date, ip_addr)
        VALUES (:id, :name, :email, :message, :date, :ip_addr)`
	if _, err := r.db.NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListByDateDesc returns all messages, newest first.
func (r *MessageRepository) ListByDateDesc(ctx context.Context) ([]models.Message, error) {
	const query = "SELECT id, name, email, message, date, ip_addr FROM messages ORDER BY date DESC"

	var messages []models.Message
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
