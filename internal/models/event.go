package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event types.
const (
	EventLive      = "LIVE"
	EventGathering = "EVENTO"
	EventMentoring = "MENTORIA"
)

// AppEvent is a scheduled live, gathering or mentoring session.
type AppEvent struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string    `gorm:"size:200;not null" json:"title"`
	Date     string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time     string    `gorm:"size:5" json:"time"`                 // HH:MM
	Link     string    `gorm:"type:text" json:"link,omitempty"`
	ImageURL string    `gorm:"type:text" json:"imageUrl,omitempty"`
	Type     string    `gorm:"size:10;default:'EVENTO'" json:"type"`
	XPReward int       `gorm:"default:0" json:"xpReward"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (e *AppEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EventAttendance marks that a user attended an event. One row per
// (user, event) pair; attendance is never revoked.
type EventAttendance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_user_event" json:"user_id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_user_event" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *EventAttendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
