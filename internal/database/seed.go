package database

import (
	"errors"
	"log/slog"
	"time"

	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GuardianEmail identifies the support peer. Messages sent to this user
// receive an automated reply from the Guardião.
const GuardianEmail = "guardiao@triuno.app"

// SeedGuardian ensures the support peer exists and returns its id.
func SeedGuardian(db *gorm.DB) (uuid.UUID, error) {
	var guardian models.User
	err := db.Where("email = ?", GuardianEmail).First(&guardian).Error
	if err == nil {
		return guardian.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	// The guardian never logs in with a password; store an unusable hash.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	guardian = models.User{
		Name:                  "Guardião Mor",
		Email:                 GuardianEmail,
		Password:              string(hash),
		Role:                  models.RoleAdmin,
		Status:                models.StatusActive,
		HasAcceptedCommitment: true,
		IsVerified:            true,
	}
	if err := db.Create(&guardian).Error; err != nil {
		return uuid.Nil, err
	}

	slog.Info("guardian user seeded", "user_id", guardian.ID)
	return guardian.ID, nil
}

// SeedDefaults inserts the default task templates and wisdom when the
// corresponding tables are empty. Safe to run on every boot.
func SeedDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Task{}).Where("user_id IS NULL").Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		today := time.Now().Format("2006-01-02")
		templates := []models.Task{
			{Title: "Beber 2L de água", Category: models.CategoryBody, XP: 10, Icon: "water_drop", ScheduledDate: today},
			{Title: "Meditação Matinal", Category: models.CategorySpirit, XP: 50, Icon: "self_improvement", ScheduledDate: today},
			{Title: "Ler 10 Páginas", Category: models.CategorySoul, XP: 30, Icon: "menu_book", ScheduledDate: today},
			{Title: "Dormir 8h", Category: models.CategoryBody, XP: 20, Icon: "bed", ScheduledDate: today},
		}
		if err := db.Create(&templates).Error; err != nil {
			return err
		}
		slog.Info("default tasks seeded", "count", len(templates))
	}

	var wisdom models.AppSetting
	err := db.Where("key = ?", models.SettingWisdom).First(&wisdom).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&models.AppSetting{
			Key:   models.SettingWisdom,
			Value: models.DefaultWisdom,
		}).Error
	}
	return err
}
