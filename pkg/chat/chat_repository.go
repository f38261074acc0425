package chat

import (
	"MediAssist-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ChatSessionRow struct {
		SessionID string    `gorm:"column:session_id"`
		Content   string    `gorm:"column:content"`
		CreatedAt time.Time `gorm:"column:created_at"`
	}

	ChatRepository interface {
		CreateMessage(ctx context.Context, message *entities.ChatMessage) error
		GetMessages(ctx context.Context, userID string, sessionID string, limit int) ([]*entities.ChatMessage, error)
		GetSessions(ctx context.Context, userID string, limit int) ([]ChatSessionRow, error)
	}

	chatRepository struct {
		db *gorm.DB
	}
)

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *entities.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *chatRepository) GetMessages(ctx context.Context, userID string, sessionID string, limit int) ([]*entities.ChatMessage, error) {
	var messages []*entities.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at asc").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetSessions returns one row per session carrying the latest message, newest
// session first.
func (r *chatRepository) GetSessions(ctx context.Context, userID string, limit int) ([]ChatSessionRow, error) {
	var sessions []ChatSessionRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT session_id, content, created_at FROM (
			SELECT DISTINCT ON (session_id) session_id, content, created_at
			FROM chat_messages
			WHERE user_id = ?
			ORDER BY session_id, created_at DESC
		) latest
		ORDER BY created_at DESC
		LIMIT ?`, userID, limit).
		Scan(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
