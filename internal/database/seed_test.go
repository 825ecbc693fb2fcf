package database

import (
	"fmt"
	"testing"

	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}, &models.AppSetting{}))
	return db
}

func TestSeedGuardianIsIdempotent(t *testing.T) {
	db := newSeedDB(t)

	first, err := SeedGuardian(db)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first)

	second, err := SeedGuardian(db)
	require.NoError(t, err)
	require.Equal(t, first, second)

	var guardian models.User
	require.NoError(t, db.First(&guardian, "id = ?", first).Error)
	require.Equal(t, "Guardião Mor", guardian.Name)
	require.Equal(t, GuardianEmail, guardian.Email)
	require.True(t, guardian.HasAcceptedCommitment)
}

func TestSeedDefaults(t *testing.T) {
	db := newSeedDB(t)

	require.NoError(t, SeedDefaults(db))
	require.NoError(t, SeedDefaults(db))

	var taskCount int64
	require.NoError(t, db.Model(&models.Task{}).Where("user_id IS NULL").Count(&taskCount).Error)
	require.EqualValues(t, 4, taskCount)

	var wisdom models.AppSetting
	require.NoError(t, db.Where("key = ?", models.SettingWisdom).First(&wisdom).Error)
	require.Equal(t, models.DefaultWisdom, wisdom.Value)
}
