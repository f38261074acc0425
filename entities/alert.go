package entities

import (
	"github.com/google/uuid"
)

type Alert struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Type     string    `json:"type"`     // "expiry", "stock", "conflict", "reminder"
	Severity string    `json:"severity"` // "low", "medium", "high"
	Title    string    `json:"title"`
	Message  string    `gorm:"type:text" json:"message"`
	IsRead   bool      `json:"is_read"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
