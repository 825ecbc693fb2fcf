package services

import (
	"testing"

	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func forgeTemplate(t *testing.T, db *gorm.DB, title, category, date string) models.Task {
	t.Helper()

	task := models.Task{Title: title, Category: category, XP: 10, ScheduledDate: date}
	require.NoError(t, db.Create(&task).Error)
	return task
}

func TestListForUserMaterializesTemplates(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	date := "2026-08-31"
	forgeTemplate(t, db, "Beber água", models.CategoryBody, date)
	forgeTemplate(t, db, "Meditar", models.CategorySpirit, date)
	forgeTemplate(t, db, "Outro dia", models.CategorySoul, "2026-09-01")

	ana := createUser(t, db, "Ana")

	tasks, err := svc.ListForUser(ana.ID, date)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		require.NotNil(t, task.UserID)
		require.Equal(t, ana.ID, *task.UserID)
		require.False(t, task.Completed)
	}

	// A second listing reuses the personal copies instead of cloning again.
	again, err := svc.ListForUser(ana.ID, date)
	require.NoError(t, err)
	require.Len(t, again, 2)

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Where("user_id = ?", ana.ID).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestListForUserWithoutTemplates(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	ana := createUser(t, db, "Ana")
	tasks, err := svc.ListForUser(ana.ID, "2026-08-31")
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestToggleFlipsCompletionWithoutXP(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	date := "2026-08-31"
	forgeTemplate(t, db, "Beber água", models.CategoryBody, date)

	ana := createUser(t, db, "Ana")
	tasks, err := svc.ListForUser(ana.ID, date)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	toggled, err := svc.Toggle(ana.ID, tasks[0].ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	toggled, err = svc.Toggle(ana.ID, tasks[0].ID)
	require.NoError(t, err)
	require.False(t, toggled.Completed)

	// Completion never moves progression.
	var got models.User
	require.NoError(t, db.First(&got, "id = ?", ana.ID).Error)
	require.Equal(t, 0, got.XP)
	require.Equal(t, 1, got.Level)
}

func TestToggleForeignTaskIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	date := "2026-08-31"
	forgeTemplate(t, db, "Beber água", models.CategoryBody, date)

	ana := createUser(t, db, "Ana")
	bruno := createUser(t, db, "Bruno")
	tasks, err := svc.ListForUser(ana.ID, date)
	require.NoError(t, err)

	// Bruno cannot toggle Ana's task, nor a random id.
	toggled, err := svc.Toggle(bruno.ID, tasks[0].ID)
	require.NoError(t, err)
	require.Nil(t, toggled)

	toggled, err = svc.Toggle(ana.ID, uuid.New())
	require.NoError(t, err)
	require.Nil(t, toggled)
}

func TestForgeValidatesCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	_, err := svc.Forge(&dto.CreateTaskRequest{Title: "Correr", Category: "Mente", ScheduledDate: "2026-08-31"})
	require.ErrorIs(t, err, ErrInvalidCategory)

	task, err := svc.Forge(&dto.CreateTaskRequest{Title: "Correr", Category: models.CategoryBody, XP: 20, ScheduledDate: "2026-08-31"})
	require.NoError(t, err)
	require.Nil(t, task.UserID)
}

func TestUpdateAndDeleteTask(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)

	task, err := svc.Forge(&dto.CreateTaskRequest{Title: "Correr", Category: models.CategoryBody, XP: 20, ScheduledDate: "2026-08-31"})
	require.NoError(t, err)

	title := "Correr 5km"
	xp := 30
	updated, err := svc.Update(task.ID, &dto.UpdateTaskRequest{Title: &title, XP: &xp})
	require.NoError(t, err)
	require.Equal(t, "Correr 5km", updated.Title)
	require.Equal(t, 30, updated.XP)

	require.NoError(t, svc.Delete(task.ID))
	require.ErrorIs(t, svc.Delete(task.ID), ErrTaskNotFound)
}
