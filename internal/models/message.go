package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is a direct message between two users. Immutable once
// created; the read flag is the only mutation.
type ChatMessage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair" json:"senderId"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair" json:"receiverId"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Read       bool      `gorm:"default:false" json:"read"`
	CreatedAt  time.Time `json:"timestamp"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
