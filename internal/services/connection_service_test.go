package services

import (
	"testing"

	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestConnectionRequestAndAccept(t *testing.T) {
	db := newTestDB(t)
	svc := NewConnectionService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	bruno := createUser(t, db, "Bruno")

	require.NoError(t, svc.Request(ana.ID, bruno.ID))

	var gotAna, gotBruno models.User
	require.NoError(t, db.First(&gotAna, "id = ?", ana.ID).Error)
	require.NoError(t, db.First(&gotBruno, "id = ?", bruno.ID).Error)
	require.True(t, gotAna.HasSentRequestTo(bruno.ID.String()))
	require.Contains(t, []string(gotBruno.PendingRequests), ana.ID.String())

	notifs := notificationsFor(t, db, bruno.ID, models.NotifConnectionRequest)
	require.Len(t, notifs, 1)
	require.Contains(t, notifs[0].Message, "Ana")

	require.NoError(t, svc.Accept(bruno.ID, ana.ID))

	require.NoError(t, db.First(&gotAna, "id = ?", ana.ID).Error)
	require.NoError(t, db.First(&gotBruno, "id = ?", bruno.ID).Error)
	require.True(t, gotAna.IsConnectedTo(bruno.ID.String()))
	require.True(t, gotBruno.IsConnectedTo(ana.ID.String()))
	require.Empty(t, []string(gotAna.SentRequests))
	require.Empty(t, []string(gotBruno.PendingRequests))
}

func TestConnectionRequestIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewConnectionService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	bruno := createUser(t, db, "Bruno")

	require.NoError(t, svc.Request(ana.ID, bruno.ID))
	require.NoError(t, svc.Request(ana.ID, bruno.ID))

	var gotAna, gotBruno models.User
	require.NoError(t, db.First(&gotAna, "id = ?", ana.ID).Error)
	require.NoError(t, db.First(&gotBruno, "id = ?", bruno.ID).Error)
	require.Len(t, []string(gotAna.SentRequests), 1)
	require.Len(t, []string(gotBruno.PendingRequests), 1)

	// Only one notification for the single effective request.
	require.Len(t, notificationsFor(t, db, bruno.ID, models.NotifConnectionRequest), 1)
}

func TestConnectionRequestToSelfIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewConnectionService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	require.NoError(t, svc.Request(ana.ID, ana.ID))

	var got models.User
	require.NoError(t, db.First(&got, "id = ?", ana.ID).Error)
	require.Empty(t, []string(got.SentRequests))
	require.Empty(t, []string(got.PendingRequests))
}

func TestConnectionRequestToUnknownTargetIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewConnectionService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	require.NoError(t, svc.Request(ana.ID, uuid.New()))

	var got models.User
	require.NoError(t, db.First(&got, "id = ?", ana.ID).Error)
	require.Empty(t, []string(got.SentRequests))
}

func TestConnectionRequestWhenAlreadyConnectedIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewConnectionService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	bruno := createUser(t, db, "Bruno")

	require.NoError(t, svc.Request(ana.ID, bruno.ID))
	require.NoError(t, svc.Accept(bruno.ID, ana.ID))
	require.NoError(t, svc.Request(ana.ID, bruno.ID))

	var gotAna, gotBruno models.User
	require.NoError(t, db.First(&gotAna, "id = ?", ana.ID).Error)
	require.NoError(t, db.First(&gotBruno, "id = ?", bruno.ID).Error)
	require.Empty(t, []string(gotAna.SentRequests))
	require.Empty(t, []string(gotBruno.PendingRequests))
	require.Len(t, []string(gotAna.Connections), 1)
	require.Len(t, []string(gotBruno.Connections), 1)
}

func TestConnectionAcceptUnknownRequesterIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewConnectionService(db, NewNotificationService(db))

	bruno := createUser(t, db, "Bruno")
	require.NoError(t, svc.Accept(bruno.ID, uuid.New()))

	var got models.User
	require.NoError(t, db.First(&got, "id = ?", bruno.ID).Error)
	require.Empty(t, []string(got.Connections))
}

func TestConnectionAcceptTwiceKeepsSingleEntry(t *testing.T) {
	db := newTestDB(t)
	svc := NewConnectionService(db, NewNotificationService(db))

	ana := createUser(t, db, "Ana")
	bruno := createUser(t, db, "Bruno")

	require.NoError(t, svc.Request(ana.ID, bruno.ID))
	require.NoError(t, svc.Accept(bruno.ID, ana.ID))
	require.NoError(t, svc.Accept(bruno.ID, ana.ID))

	var gotAna, gotBruno models.User
	require.NoError(t, db.First(&gotAna, "id = ?", ana.ID).Error)
	require.NoError(t, db.First(&gotBruno, "id = ?", bruno.ID).Error)
	require.Len(t, []string(gotAna.Connections), 1)
	require.Len(t, []string(gotBruno.Connections), 1)
}
