package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting keys.
const SettingWisdom = "wisdom_of_the_day"

// DefaultWisdom is served until an admin reveals a new one.
const DefaultWisdom = "O equilíbrio é a chave para a ascensão plena."

// AppSetting stores application-level key/value configuration, such as
// the wisdom of the day.
type AppSetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Key       string    `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AppSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (AppSetting) TableName() string {
	return "app_settings"
}
