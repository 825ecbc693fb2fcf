package services

import (
	"testing"

	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEventService(db *gorm.DB) *EventService {
	notifs := NewNotificationService(db)
	return NewEventService(db, NewUserService(db, notifs), notifs)
}

func TestCreateEventBroadcasts(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(db)

	ana := createUser(t, db, "Ana")
	bruno := createUser(t, db, "Bruno")

	event, err := svc.Create(&dto.CreateEventRequest{
		Title:    "Meditação Coletiva",
		Date:     "2026-09-07",
		Time:     "20:00",
		Type:     models.EventLive,
		XPReward: 50,
	})
	require.NoError(t, err)
	require.Equal(t, models.EventLive, event.Type)

	require.Len(t, notificationsFor(t, db, ana.ID, models.NotifSystem), 1)
	require.Len(t, notificationsFor(t, db, bruno.ID, models.NotifSystem), 1)
}

func TestCreateEventNormalizesUnknownType(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(db)

	event, err := svc.Create(&dto.CreateEventRequest{Title: "Encontro", Date: "2026-09-07", Type: "FESTA"})
	require.NoError(t, err)
	require.Equal(t, models.EventGathering, event.Type)
}

func TestAttendGrantsCappedXP(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(db)

	ana := createUser(t, db, "Ana")
	require.NoError(t, db.Model(ana).Update("xp", 95).Error)

	event, err := svc.Create(&dto.CreateEventRequest{Title: "Live", Date: "2026-09-07", Type: models.EventLive, XPReward: 50})
	require.NoError(t, err)

	require.NoError(t, svc.Attend(ana.ID, event.ID))

	// 95 + reward is capped at the level boundary: finishes the level,
	// never skips past it.
	var got models.User
	require.NoError(t, db.First(&got, "id = ?", ana.ID).Error)
	require.Equal(t, 2, got.Level)
	require.Equal(t, 0, got.XP)
}

func TestAttendIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(db)

	ana := createUser(t, db, "Ana")
	event, err := svc.Create(&dto.CreateEventRequest{Title: "Live", Date: "2026-09-07", Type: models.EventLive, XPReward: 30})
	require.NoError(t, err)

	require.NoError(t, svc.Attend(ana.ID, event.ID))
	require.NoError(t, svc.Attend(ana.ID, event.ID))

	var got models.User
	require.NoError(t, db.First(&got, "id = ?", ana.ID).Error)
	require.Equal(t, 30, got.XP)

	ids, err := svc.AttendedIDs(ana.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{event.ID}, ids)
}

func TestAttendUnknownEventIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(db)

	ana := createUser(t, db, "Ana")
	require.NoError(t, svc.Attend(ana.ID, uuid.New()))

	var got models.User
	require.NoError(t, db.First(&got, "id = ?", ana.ID).Error)
	require.Equal(t, 0, got.XP)
}

func TestListOrdersBySchedule(t *testing.T) {
	db := newTestDB(t)
	svc := newEventService(db)

	_, err := svc.Create(&dto.CreateEventRequest{Title: "Depois", Date: "2026-09-10", Time: "10:00", Type: models.EventGathering})
	require.NoError(t, err)
	_, err = svc.Create(&dto.CreateEventRequest{Title: "Antes", Date: "2026-09-07", Time: "20:00", Type: models.EventLive})
	require.NoError(t, err)

	events, err := svc.List()
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Antes", events[0].Title)
	require.Equal(t, "Depois", events[1].Title)
}
