package services

import (
	"errors"

	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"gorm.io/gorm"
)

// WisdomService manages the wisdom of the day, stored as an app setting.
type WisdomService struct {
	db     *gorm.DB
	notifs *NotificationService
}

func NewWisdomService(db *gorm.DB, notifs *NotificationService) *WisdomService {
	return &WisdomService{db: db, notifs: notifs}
}

// Get returns the current wisdom text, falling back to the default.
func (s *WisdomService) Get() (string, error) {
	var setting models.AppSetting
	err := s.db.Where("key = ?", models.SettingWisdom).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultWisdom, nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Set replaces the wisdom of the day and announces it to everyone.
func (s *WisdomService) Set(text string) error {
	if text == "" {
		return errors.New("wisdom text is required")
	}

	var setting models.AppSetting
	err := s.db.Where("key = ?", models.SettingWisdom).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.AppSetting{Key: models.SettingWisdom, Value: text}
		err = s.db.Create(&setting).Error
	} else if err == nil {
		err = s.db.Model(&setting).Update("value", text).Error
	}
	if err != nil {
		return err
	}

	return s.notifs.Broadcast("Nova Sabedoria do Dia revelada.", "spa")
}
