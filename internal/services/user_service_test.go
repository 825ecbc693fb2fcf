package services

import (
	"testing"

	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/stretchr/testify/require"
)

func TestGrantXPCrossesLevels(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	require.NoError(t, db.Model(ana).Updates(map[string]interface{}{"level": 3, "xp": 95}).Error)

	got, err := svc.GrantXP(ana.ID, 230)
	require.NoError(t, err)
	require.Equal(t, 6, got.Level)
	require.Equal(t, 25, got.XP)

	// One notification per level crossed.
	notifs := notificationsFor(t, db, ana.ID, models.NotifLevel)
	require.Len(t, notifs, 3)
}

func TestUpdateProfileAppliesFieldsAndXPDelta(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")

	name := "Ana Clara"
	focus := "Alma"
	delta := 110
	got, err := svc.UpdateProfile(ana.ID, &dto.UpdateProfileRequest{
		Name:    &name,
		Focus:   &focus,
		XPDelta: &delta,
	})
	require.NoError(t, err)
	require.Equal(t, "Ana Clara", got.Name)
	require.Equal(t, "Alma", got.Focus)
	require.Equal(t, 2, got.Level)
	require.Equal(t, 10, got.XP)
}

func TestUpdateProfileIgnoresNonPositiveXPDelta(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	require.NoError(t, db.Model(ana).Update("xp", 40).Error)

	delta := -30
	got, err := svc.UpdateProfile(ana.ID, &dto.UpdateProfileRequest{XPDelta: &delta})
	require.NoError(t, err)
	require.Equal(t, 40, got.XP)
	require.Equal(t, 1, got.Level)
}

func TestRankingOrdersByProgressionAndExcludesAdmins(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	bruno := createUser(t, db, "Bruno")
	clara := createUser(t, db, "Clara")
	admin := createUser(t, db, "Admin")

	require.NoError(t, db.Model(ana).Updates(map[string]interface{}{"level": 2, "xp": 10}).Error)
	require.NoError(t, db.Model(bruno).Updates(map[string]interface{}{"level": 2, "xp": 90}).Error)
	require.NoError(t, db.Model(clara).Updates(map[string]interface{}{"level": 5, "xp": 0}).Error)
	require.NoError(t, db.Model(admin).Updates(map[string]interface{}{"level": 99, "role": models.RoleAdmin}).Error)

	ranking, err := svc.Ranking(10)
	require.NoError(t, err)
	require.Len(t, ranking, 3)
	require.Equal(t, clara.ID, ranking[0].ID)
	require.Equal(t, bruno.ID, ranking[1].ID)
	require.Equal(t, ana.ID, ranking[2].ID)
}

func TestSetStatusValidatesAndRevokesSessionsOnBan(t *testing.T) {
	db := newTestDB(t)
	authSvc := NewAuthService(db, testConfig())
	svc := NewUserService(db, NewNotificationService(db))

	resp, err := authSvc.Register(&dto.RegisterRequest{Name: "Ana", Email: "ana@triuno.app", Password: "senha-forte"})
	require.NoError(t, err)

	_, err = svc.SetStatus(resp.User.ID, "Suspenso")
	require.ErrorIs(t, err, ErrInvalidStatus)

	got, err := svc.SetStatus(resp.User.ID, models.StatusBanned)
	require.NoError(t, err)
	require.Equal(t, models.StatusBanned, got.Status)

	_, err = authSvc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAcceptCommitment(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	require.False(t, ana.HasAcceptedCommitment)

	got, err := svc.AcceptCommitment(ana.ID)
	require.NoError(t, err)
	require.True(t, got.HasAcceptedCommitment)
}

func TestCategoryStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	date := "2026-08-31"

	tasks := []models.Task{
		{UserID: &ana.ID, Title: "Água", Category: models.CategoryBody, ScheduledDate: date, Completed: true},
		{UserID: &ana.ID, Title: "Dormir", Category: models.CategoryBody, ScheduledDate: date, Completed: false},
		{UserID: &ana.ID, Title: "Ler", Category: models.CategorySoul, ScheduledDate: date, Completed: true},
	}
	require.NoError(t, db.Create(&tasks).Error)

	stats, err := svc.CategoryStats(ana.ID, date)
	require.NoError(t, err)
	require.Equal(t, 50, stats.Corpo)
	require.Equal(t, 100, stats.Alma)
	require.Equal(t, 0, stats.Espirito)
}

func TestDeleteUserRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	require.NoError(t, db.Create(&models.Task{UserID: &ana.ID, Title: "Ler", Category: models.CategorySoul, ScheduledDate: "2026-08-31"}).Error)
	require.NoError(t, db.Create(&models.Notification{UserID: ana.ID, Message: "oi", Type: models.NotifSystem}).Error)

	require.NoError(t, svc.Delete(ana.ID))

	_, err := svc.GetByID(ana.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	var taskCount, notifCount int64
	require.NoError(t, db.Model(&models.Task{}).Where("user_id = ?", ana.ID).Count(&taskCount).Error)
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", ana.ID).Count(&notifCount).Error)
	require.Zero(t, taskCount)
	require.Zero(t, notifCount)
}
