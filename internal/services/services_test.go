package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/ManifoldAI-Apps/triuno-app/internal/config"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Task{},
		&models.GratitudePost{},
		&models.PostComment{},
		&models.PostLike{},
		&models.ChatMessage{},
		&models.Notification{},
		&models.AppEvent{},
		&models.EventAttendance{},
		&models.AppSetting{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:            name,
		Email:           fmt.Sprintf("%s-%s@triuno.app", name, uuid.NewString()[:8]),
		Password:        "irrelevant",
		Level:           1,
		Role:            models.RoleUser,
		Status:          models.StatusActive,
		Connections:     datatypes.JSONSlice[string]{},
		PendingRequests: datatypes.JSONSlice[string]{},
		SentRequests:    datatypes.JSONSlice[string]{},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uuid.UUID, notifType string) []models.Notification {
	t.Helper()

	var out []models.Notification
	require.NoError(t, db.Where("user_id = ? AND type = ?", userID, notifType).Find(&out).Error)
	return out
}
