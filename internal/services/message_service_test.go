package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ManifoldAI-Apps/triuno-app/internal/ai"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Reply(ctx context.Context, text string) (string, error) {
	return s.reply, s.err
}

func TestSendToOrdinaryReceiverStoresOneMessage(t *testing.T) {
	db := newTestDB(t)
	guardian := createUser(t, db, "Guardião")
	svc := NewMessageService(db, &stubGenerator{reply: "nunca"}, guardian.ID, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	bruno := createUser(t, db, "Bruno")

	messages, err := svc.Send(context.Background(), ana.ID, bruno.ID, "Paz e luz")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, ana.ID, messages[0].SenderID)
	require.Equal(t, bruno.ID, messages[0].ReceiverID)
	require.False(t, messages[0].Read)

	var count int64
	require.NoError(t, db.Model(&models.ChatMessage{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSendToGuardianGeneratesReply(t *testing.T) {
	db := newTestDB(t)
	guardian := createUser(t, db, "Guardião")
	svc := NewMessageService(db, &stubGenerator{reply: "Siga a Senda, buscador."}, guardian.ID, NewNotificationService(db))

	ana := createUser(t, db, "Ana")

	messages, err := svc.Send(context.Background(), ana.ID, guardian.ID, "Estou perdido")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, "Estou perdido", messages[0].Text)
	require.Equal(t, guardian.ID, messages[1].SenderID)
	require.Equal(t, ana.ID, messages[1].ReceiverID)
	require.Equal(t, "Siga a Senda, buscador.", messages[1].Text)

	require.Len(t, notificationsFor(t, db, ana.ID, models.NotifMessage), 1)
}

func TestSendToGuardianFallsBackOnGeneratorError(t *testing.T) {
	db := newTestDB(t)
	guardian := createUser(t, db, "Guardião")
	svc := NewMessageService(db, &stubGenerator{err: errors.New("api down")}, guardian.ID, NewNotificationService(db))

	ana := createUser(t, db, "Ana")

	messages, err := svc.Send(context.Background(), ana.ID, guardian.ID, "Alguém aí?")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, ai.FallbackReply, messages[1].Text)
}

func TestSendToGuardianFallsBackOnEmptyReply(t *testing.T) {
	db := newTestDB(t)
	guardian := createUser(t, db, "Guardião")
	svc := NewMessageService(db, &stubGenerator{reply: ""}, guardian.ID, NewNotificationService(db))

	ana := createUser(t, db, "Ana")

	messages, err := svc.Send(context.Background(), ana.ID, guardian.ID, "...")
	require.NoError(t, err)
	require.Equal(t, ai.FallbackReply, messages[1].Text)
}

func TestSendRejectsBlankText(t *testing.T) {
	db := newTestDB(t)
	guardian := createUser(t, db, "Guardião")
	svc := NewMessageService(db, &stubGenerator{}, guardian.ID, NewNotificationService(db))

	ana := createUser(t, db, "Ana")

	_, err := svc.Send(context.Background(), ana.ID, guardian.ID, "   ")
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestConversationAndMarkRead(t *testing.T) {
	db := newTestDB(t)
	guardian := createUser(t, db, "Guardião")
	svc := NewMessageService(db, &stubGenerator{}, guardian.ID, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	bruno := createUser(t, db, "Bruno")
	clara := createUser(t, db, "Clara")

	_, err := svc.Send(context.Background(), ana.ID, bruno.ID, "oi")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), bruno.ID, ana.ID, "olá")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), clara.ID, ana.ID, "paz")
	require.NoError(t, err)

	conversation, err := svc.Conversation(ana.ID, bruno.ID)
	require.NoError(t, err)
	require.Len(t, conversation, 2)

	unread, err := svc.UnreadCount(ana.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, unread)

	require.NoError(t, svc.MarkRead(ana.ID, bruno.ID))

	unread, err = svc.UnreadCount(ana.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, unread)
}
