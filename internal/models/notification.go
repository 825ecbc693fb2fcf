package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types.
const (
	NotifLike              = "LIKE"
	NotifSystem            = "SYSTEM"
	NotifLevel             = "LEVEL"
	NotifComment           = "COMMENT"
	NotifMessage           = "MESSAGE"
	NotifConnectionRequest = "CONNECTION_REQUEST"
)

// Notification is a per-user event entry. Cleared by bulk mark-read,
// never fanned out beyond this server.
type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	Icon       string     `gorm:"size:60" json:"icon"`
	Type       string     `gorm:"size:30;not null" json:"type"`
	FromUserID *uuid.UUID `gorm:"type:uuid" json:"fromUserId,omitempty"`
	Read       bool       `gorm:"default:false" json:"read"`
	CreatedAt  time.Time  `json:"timestamp"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
