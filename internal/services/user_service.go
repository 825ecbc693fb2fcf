package services

import (
	"errors"

	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/ManifoldAI-Apps/triuno-app/internal/progression"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidStatus = errors.New("invalid user status")

// UserService owns the user directory: lookups, profile mutation, XP
// grants and the admin management surface.
type UserService struct {
	db     *gorm.DB
	notifs *NotificationService
}

func NewUserService(db *gorm.DB, notifs *NotificationService) *UserService {
	return &UserService{db: db, notifs: notifs}
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns the full directory. The client keeps this as its local
// cache of all known users.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at ASC").Find(&users).Error
	return users, err
}

// Ranking orders users by progression, strongest first.
func (s *UserService) Ranking(limit int) ([]models.User, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	var users []models.User
	err := s.db.Where("role = ?", models.RoleUser).
		Order("level DESC, xp DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// UpdateProfile applies profile edits and, when XPDelta is present, runs
// the delta through the progression engine. Level-up notifications are
// emitted once per level crossed.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Focus != nil {
		user.Focus = *req.Focus
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}

	if req.XPDelta != nil && *req.XPDelta > 0 {
		level, xp, ups := progression.Apply(user.Level, user.XP, *req.XPDelta)
		user.Level = level
		user.XP = xp
		defer s.notifyLevelUps(user.ID, ups)
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GrantXP applies a raw (uncapped) XP delta to the user.
func (s *UserService) GrantXP(userID uuid.UUID, delta int) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	level, xp, ups := progression.Apply(user.Level, user.XP, delta)
	user.Level = level
	user.XP = xp

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	s.notifyLevelUps(user.ID, ups)
	return user, nil
}

func (s *UserService) notifyLevelUps(userID uuid.UUID, ups []progression.LevelUp) {
	if len(ups) == 0 {
		return
	}
	levels := make([]int, len(ups))
	for i, up := range ups {
		levels[i] = up.Level
	}
	s.notifs.NotifyLevelUps(userID, levels)
}

// AcceptCommitment records the onboarding commitment.
func (s *UserService) AcceptCommitment(userID uuid.UUID) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.HasAcceptedCommitment = true
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CategoryStats computes per-category completion percentages over the
// user's tasks scheduled for the given day.
func (s *UserService) CategoryStats(userID uuid.UUID, date string) (*dto.CategoryStats, error) {
	var tasks []models.Task
	if err := s.db.Where("user_id = ? AND scheduled_date = ?", userID, date).Find(&tasks).Error; err != nil {
		return nil, err
	}

	percent := func(category string) int {
		total, completed := 0, 0
		for _, t := range tasks {
			if t.Category != category {
				continue
			}
			total++
			if t.Completed {
				completed++
			}
		}
		if total == 0 {
			return 0
		}
		return (completed*100 + total/2) / total
	}

	return &dto.CategoryStats{
		Corpo:    percent(models.CategoryBody),
		Alma:     percent(models.CategorySoul),
		Espirito: percent(models.CategorySpirit),
	}, nil
}

// SetStatus is the admin moderation lever: Ativo, Inativo or Banido.
func (s *UserService) SetStatus(userID uuid.UUID, status string) (*models.User, error) {
	switch status {
	case models.StatusActive, models.StatusInactive, models.StatusBanned:
	default:
		return nil, ErrInvalidStatus
	}

	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}

	// Banning invalidates every outstanding session.
	if status == models.StatusBanned {
		s.db.Model(&models.RefreshToken{}).
			Where("user_id = ?", userID).
			Update("revoked", true)
	}
	return user, nil
}

// Delete removes a user record and its dependents.
func (s *UserService) Delete(userID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{})
		tx.Where("user_id = ?", userID).Delete(&models.Notification{})
		tx.Where("user_id = ?", userID).Delete(&models.Task{})
		tx.Where("user_id = ?", userID).Delete(&models.EventAttendance{})
		tx.Where("user_id = ?", userID).Delete(&models.PostLike{})
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
}
