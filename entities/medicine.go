package entities

import (
	"time"

	"github.com/google/uuid"
)

type Medicine struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Dosage         string    `json:"dosage"`
	Quantity       int       `json:"quantity"`
	DailyUsage     int       `json:"daily_usage"`
	ExpiryDate     time.Time `json:"expiry_date"`
	PrescriptionID *string   `json:"prescription_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
