package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task categories.
const (
	CategoryBody   = "Corpo"
	CategorySoul   = "Alma"
	CategorySpirit = "Espírito"
)

var TaskCategories = []string{CategoryBody, CategorySoul, CategorySpirit}

// Task is a daily mission. Templates forged by admins have a nil UserID
// and are copied per user when their day is materialized.
type Task struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Category      string     `gorm:"size:20;not null;index" json:"category"`
	XP            int        `gorm:"not null" json:"xp"`
	Completed     bool       `gorm:"default:false" json:"completed"`
	Icon          string     `gorm:"size:60" json:"icon"`
	ImageURL      string     `gorm:"type:text" json:"imageUrl,omitempty"`
	ScheduledDate string     `gorm:"size:10;index" json:"scheduledDate"` // YYYY-MM-DD

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
