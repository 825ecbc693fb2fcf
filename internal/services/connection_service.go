package services

import (
	"errors"
	"fmt"

	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConnectionService applies the request/accept transitions of the social
// graph. Per ordered pair the states are NONE -> REQUESTED -> CONNECTED;
// CONNECTED is terminal (no disconnect operation exists).
//
// Both transitions read-then-save two full user rows with no
// optimistic-concurrency token, so two concurrent accepts on the same
// pair can race. Known limitation carried over from the original system.
type ConnectionService struct {
	db     *gorm.DB
	notifs *NotificationService
}

func NewConnectionService(db *gorm.DB, notifs *NotificationService) *ConnectionService {
	return &ConnectionService{db: db, notifs: notifs}
}

// Request records that requester solicited a connection to target.
// Idempotent: a repeated request, a self-request, a request to an
// already-connected user or to an unknown id all leave state unchanged.
func (s *ConnectionService) Request(requesterID, targetID uuid.UUID) error {
	if requesterID == targetID {
		return nil
	}

	var requester models.User
	if err := s.db.First(&requester, "id = ?", requesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	target := targetID.String()
	if requester.HasSentRequestTo(target) || requester.IsConnectedTo(target) {
		return nil
	}

	var targetUser models.User
	if err := s.db.First(&targetUser, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	requester.SentRequests = appendID(requester.SentRequests, target)
	targetUser.PendingRequests = appendID(targetUser.PendingRequests, requesterID.String())

	if err := s.db.Save(&requester).Error; err != nil {
		return err
	}
	if err := s.db.Save(&targetUser).Error; err != nil {
		return err
	}

	s.notifs.Notify(targetUser.ID, models.NotifConnectionRequest,
		fmt.Sprintf("%s deseja sincronizar almas com você.", requester.Name),
		"sync", &requester.ID)
	return nil
}

// Accept establishes the mutual connection. The only transition that
// writes symmetric state: it must update both records or the symmetry
// invariant breaks. A requester id absent from the directory is a
// silent no-op.
func (s *ConnectionService) Accept(accepterID, requesterID uuid.UUID) error {
	var requester models.User
	if err := s.db.First(&requester, "id = ?", requesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var accepter models.User
	if err := s.db.First(&accepter, "id = ?", accepterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if accepter.IsConnectedTo(requesterID.String()) {
		return nil
	}

	accepter.PendingRequests = removeID(accepter.PendingRequests, requesterID.String())
	accepter.Connections = appendID(accepter.Connections, requesterID.String())

	requester.SentRequests = removeID(requester.SentRequests, accepterID.String())
	requester.Connections = appendID(requester.Connections, accepterID.String())

	if err := s.db.Save(&accepter).Error; err != nil {
		return err
	}
	return s.db.Save(&requester).Error
}

func appendID(list datatypes.JSONSlice[string], id string) datatypes.JSONSlice[string] {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}

func removeID(list datatypes.JSONSlice[string], id string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(list))
	for _, existing := range list {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
