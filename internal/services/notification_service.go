package services

import (
	"fmt"
	"log/slog"

	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService is the sink for user-facing events. Creation is a
// side effect of other operations and must never fail them: Notify logs
// failures instead of returning errors to primary paths.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify records a notification for a user. Failures are logged to the
// diagnostic channel only.
func (s *NotificationService) Notify(userID uuid.UUID, notifType, message, icon string, fromUserID *uuid.UUID) {
	n := models.Notification{
		UserID:     userID,
		Message:    message,
		Icon:       icon,
		Type:       notifType,
		FromUserID: fromUserID,
	}
	if err := s.db.Create(&n).Error; err != nil {
		slog.Error("notification write failed", "action", "notify",
			"user_id", userID.String(), "error", err.Error())
	}
}

// NotifyLevelUps emits one LEVEL notification per level crossed.
func (s *NotificationService) NotifyLevelUps(userID uuid.UUID, levels []int) {
	for _, level := range levels {
		s.Notify(userID, models.NotifLevel,
			fmt.Sprintf("Ascensão alcançada! Bem-vindo ao nível %d.", level),
			"stars", nil)
	}
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(userID uuid.UUID, limit int) ([]models.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// MarkAllRead clears the unread state in bulk.
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true).Error
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error
	return count, err
}

// Broadcast creates a SYSTEM notification for every active non-guardian
// user. Used by admin actions (new wisdom, forged task, new event).
func (s *NotificationService) Broadcast(message, icon string) error {
	var userIDs []uuid.UUID
	if err := s.db.Model(&models.User{}).
		Where("status = ?", models.StatusActive).
		Pluck("id", &userIDs).Error; err != nil {
		return err
	}

	notifications := make([]models.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		notifications = append(notifications, models.Notification{
			UserID:  id,
			Message: message,
			Icon:    icon,
			Type:    models.NotifSystem,
		})
	}
	if len(notifications) == 0 {
		return nil
	}
	return s.db.CreateInBatches(notifications, 100).Error
}
