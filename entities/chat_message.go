package entities

import (
	"github.com/google/uuid"
)

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	SessionID uuid.UUID `gorm:"index" json:"session_id"`
	Role      string    `json:"role"` // "user", "assistant"
	Content   string    `gorm:"type:text" json:"content"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
