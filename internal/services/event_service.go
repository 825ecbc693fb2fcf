package services

import (
	"errors"

	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/ManifoldAI-Apps/triuno-app/internal/progression"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

// EventService manages scheduled events and attendance. Attendance XP is
// capped at the call site so a single attendance completes at most the
// current level; the engine itself stays uncapped.
type EventService struct {
	db     *gorm.DB
	users  *UserService
	notifs *NotificationService
}

func NewEventService(db *gorm.DB, users *UserService, notifs *NotificationService) *EventService {
	return &EventService{db: db, users: users, notifs: notifs}
}

func (s *EventService) List() ([]models.AppEvent, error) {
	var events []models.AppEvent
	err := s.db.Order("date ASC, time ASC").Find(&events).Error
	return events, err
}

// Create opens a new event and broadcasts it.
func (s *EventService) Create(req *dto.CreateEventRequest) (*models.AppEvent, error) {
	if req.Title == "" || req.Date == "" {
		return nil, errors.New("title and date are required")
	}

	eventType := req.Type
	switch eventType {
	case models.EventLive, models.EventGathering, models.EventMentoring:
	default:
		eventType = models.EventGathering
	}

	event := models.AppEvent{
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Link:     req.Link,
		ImageURL: req.ImageURL,
		Type:     eventType,
		XPReward: req.XPReward,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}

	if err := s.notifs.Broadcast("Novo Portal Temporal aberto: "+event.Title, "event"); err != nil {
		return &event, nil
	}
	return &event, nil
}

// Attend records attendance once per (user, event) and grants the capped
// XP reward. Repeat calls and unknown event ids are silent no-ops.
func (s *EventService) Attend(userID, eventID uuid.UUID) error {
	var event models.AppEvent
	if err := s.db.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var existing models.EventAttendance
	err := s.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	attendance := models.EventAttendance{UserID: userID, EventID: eventID}
	if err := s.db.Create(&attendance).Error; err != nil {
		return err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	delta := progression.CapDelta(user.XP, event.XPReward)
	if delta > 0 {
		if _, err := s.users.GrantXP(userID, delta); err != nil {
			return err
		}
	}
	return nil
}

// AttendedIDs returns the event ids the user already attended.
func (s *EventService) AttendedIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.Model(&models.EventAttendance{}).
		Where("user_id = ?", userID).
		Pluck("event_id", &ids).Error
	return ids, err
}
