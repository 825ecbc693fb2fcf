package services

import (
	"errors"

	"github.com/ManifoldAI-Apps/triuno-app/internal/dto"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidCategory = errors.New("invalid task category")
)

// TaskService manages daily missions. Admins forge templates (no owner);
// each user's day is materialized from the templates on first listing so
// completion state stays personal.
type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// ListForUser returns the user's tasks for a day, creating personal
// copies of that day's templates when the user has none yet.
func (s *TaskService) ListForUser(userID uuid.UUID, date string) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("user_id = ? AND scheduled_date = ?", userID, date).
		Order("created_at ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	if len(tasks) > 0 {
		return tasks, nil
	}

	var templates []models.Task
	if err := s.db.Where("user_id IS NULL AND scheduled_date = ?", date).
		Order("created_at ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return []models.Task{}, nil
	}

	uid := userID
	for _, tpl := range templates {
		tasks = append(tasks, models.Task{
			UserID:        &uid,
			Title:         tpl.Title,
			Category:      tpl.Category,
			XP:            tpl.XP,
			Icon:          tpl.Icon,
			ImageURL:      tpl.ImageURL,
			ScheduledDate: tpl.ScheduledDate,
		})
	}
	if err := s.db.Create(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Toggle flips the completed flag and persists the full record. Grants
// no XP; progression is always an explicit separate operation. A
// missing or foreign id is a silent no-op.
func (s *TaskService) Toggle(userID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Forge creates a task, either a template (no user id) or a personal one.
func (s *TaskService) Forge(req *dto.CreateTaskRequest) (*models.Task, error) {
	if req.Title == "" || req.ScheduledDate == "" {
		return nil, errors.New("title and scheduled_date are required")
	}
	if !validCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	task := models.Task{
		Title:         req.Title,
		Category:      req.Category,
		XP:            req.XP,
		Icon:          req.Icon,
		ImageURL:      req.ImageURL,
		ScheduledDate: req.ScheduledDate,
	}
	if req.UserID != "" {
		uid, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, errors.New("invalid user id")
		}
		task.UserID = &uid
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update edits a forged task in place.
func (s *TaskService) Update(taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		task.Category = *req.Category
	}
	if req.XP != nil {
		task.XP = *req.XP
	}
	if req.Icon != nil {
		task.Icon = *req.Icon
	}
	if req.ImageURL != nil {
		task.ImageURL = *req.ImageURL
	}
	if req.ScheduledDate != nil {
		task.ScheduledDate = *req.ScheduledDate
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes a task. Admin only; normal users never delete tasks.
func (s *TaskService) Delete(taskID uuid.UUID) error {
	result := s.db.Delete(&models.Task{}, "id = ?", taskID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// ListTemplates returns the forged templates for the admin forge screen.
func (s *TaskService) ListTemplates() ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("user_id IS NULL").Order("scheduled_date DESC, created_at ASC").Find(&tasks).Error
	return tasks, err
}

func validCategory(category string) bool {
	for _, c := range models.TaskCategories {
		if c == category {
			return true
		}
	}
	return false
}
