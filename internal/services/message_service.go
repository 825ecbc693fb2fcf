package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ManifoldAI-Apps/triuno-app/internal/ai"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmptyMessage = errors.New("message text is required")

// MessageService stores direct messages. Messages addressed to the
// guardian (the support peer) receive an automated reply generated with
// the Guardião persona; generation failures substitute the fixed
// fallback string and are only logged. Ordinary receivers get no
// automatic reply.
type MessageService struct {
	db         *gorm.DB
	generator  ai.Generator
	guardianID uuid.UUID
	notifs     *NotificationService
}

func NewMessageService(db *gorm.DB, generator ai.Generator, guardianID uuid.UUID, notifs *NotificationService) *MessageService {
	return &MessageService{db: db, generator: generator, guardianID: guardianID, notifs: notifs}
}

// GuardianID exposes the support peer identity to handlers.
func (s *MessageService) GuardianID() uuid.UUID {
	return s.guardianID
}

// Send appends the outbound message and, for the support peer, the
// generated (or fallback) reply. Returned messages are in append order:
// the user's message first, then the reply when one was produced.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID uuid.UUID, text string) ([]models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	message := models.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	if receiverID != s.guardianID {
		return []models.ChatMessage{message}, nil
	}

	replyText, err := s.generator.Reply(ctx, text)
	if err != nil || replyText == "" {
		if err != nil {
			slog.Error("guardian reply generation failed", "action", "guardian_reply",
				"user_id", senderID.String(), "error", err.Error())
		}
		replyText = ai.FallbackReply
	}

	reply := models.ChatMessage{
		SenderID:   s.guardianID,
		ReceiverID: senderID,
		Text:       replyText,
	}
	if err := s.db.Create(&reply).Error; err != nil {
		// The sender already has their message; losing the stored reply
		// degrades to the fallback policy of never surfacing errors.
		slog.Error("guardian reply write failed", "action", "guardian_reply",
			"user_id", senderID.String(), "error", err.Error())
		return []models.ChatMessage{message}, nil
	}

	s.notifs.Notify(senderID, models.NotifMessage, "Novo eco do Guardião Mor", "auto_awesome", &s.guardianID)

	return []models.ChatMessage{message, reply}, nil
}

// Conversation returns all messages between two users in chronological order.
func (s *MessageService) Conversation(userID, otherID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID,
	).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

// MarkRead flags everything the other user sent as read.
func (s *MessageService) MarkRead(userID, otherID uuid.UUID) error {
	return s.db.Model(&models.ChatMessage{}).
		Where("sender_id = ? AND receiver_id = ? AND read = false", otherID, userID).
		Update("read", true).Error
}

// UnreadCount counts unread messages addressed to the user.
func (s *MessageService) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.ChatMessage{}).
		Where("receiver_id = ? AND read = false", userID).
		Count(&count).Error
	return count, err
}
