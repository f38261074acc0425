package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Prescription struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID      `json:"user_id"`
	Type              string         `json:"type"` // "image", "text"
	OriginalText      string         `gorm:"type:text" json:"original_text,omitempty"`
	ExtractedText     string         `gorm:"type:text" json:"extracted_text,omitempty"`
	ImageBase64       string         `gorm:"type:text" json:"image_base64,omitempty"`
	ImageURL          string         `json:"image_url,omitempty"`
	Medicines         datatypes.JSON `json:"medicines"`
	Conflicts         datatypes.JSON `json:"conflicts"`
	VerificationScore float64        `json:"verification_score"`
	Status            string         `json:"status"` // "pending", "verified", "flagged"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
