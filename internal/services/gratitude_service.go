package services

import (
	"errors"
	"log/slog"

	"github.com/ManifoldAI-Apps/triuno-app/internal/feed"
	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/ManifoldAI-Apps/triuno-app/internal/progression"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyContent = errors.New("content is required")
)

// GratitudeService owns the shared gratitude feed: posts, comments and
// per-viewer likes. Posting grants a fixed XP amount through the
// progression path.
type GratitudeService struct {
	db     *gorm.DB
	users  *UserService
	notifs *NotificationService
	hub    *feed.Hub
}

func NewGratitudeService(db *gorm.DB, users *UserService, notifs *NotificationService, hub *feed.Hub) *GratitudeService {
	return &GratitudeService{db: db, users: users, notifs: notifs, hub: hub}
}

// CreatePost appends a post to the feed. Anonymous posts carry no author
// id and display as "Anônimo". The poster is granted +5 XP. The insert
// is published to the feed hub after the write succeeds.
func (s *GratitudeService) CreatePost(author *models.User, content string, anonymous bool, postType, imageURL string) (*models.GratitudePost, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if postType != models.PostTypeAmen {
		postType = models.PostTypeLight
	}

	post := models.GratitudePost{
		Author:   models.AnonymousAuthor,
		Content:  content,
		Icon:     "auto_awesome",
		ImageURL: imageURL,
		Type:     postType,
		Comments: []models.PostComment{},
	}
	if !anonymous {
		post.Author = author.Name
		post.AuthorID = &author.ID
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	if _, err := s.users.GrantXP(author.ID, progression.GratitudePostXP); err != nil {
		// The post exists; the grant follows the side-effect policy of
		// logging instead of failing the primary operation.
		slog.Error("gratitude xp grant failed", "action", "gratitude_xp",
			"user_id", author.ID.String(), "error", err.Error())
	}

	if s.hub != nil {
		s.hub.PublishPost(&post)
	}
	return &post, nil
}

// Feed returns posts newest first, comments included.
func (s *GratitudeService) Feed(page, limit int) ([]models.GratitudePost, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	var total int64
	if err := s.db.Model(&models.GratitudePost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.GratitudePost
	err := s.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// AddComment appends a comment to a post. No XP is granted. The post
// author is notified unless they commented on their own post.
func (s *GratitudeService) AddComment(postID uuid.UUID, commenter *models.User, text string) (*models.PostComment, error) {
	if text == "" {
		return nil, ErrEmptyContent
	}

	var post models.GratitudePost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := models.PostComment{
		PostID: postID,
		Author: commenter.Name,
		Text:   text,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	if post.AuthorID != nil && *post.AuthorID != commenter.ID {
		s.notifs.Notify(*post.AuthorID, models.NotifComment,
			commenter.Name+" comentou na sua gratidão.", "chat_bubble", &commenter.ID)
	}
	return &comment, nil
}

// ToggleLike flips the viewer's like on a post and adjusts the counter.
// Returns whether the post is liked by the viewer after the call.
func (s *GratitudeService) ToggleLike(postID, userID uuid.UUID) (bool, error) {
	var post models.GratitudePost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrPostNotFound
		}
		return false, err
	}

	var existing models.PostLike
	err := s.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
	if err == nil {
		if err := s.db.Delete(&existing).Error; err != nil {
			return true, err
		}
		s.db.Model(&models.GratitudePost{}).Where("id = ?", postID).
			Update("likes", gorm.Expr("likes - 1"))
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like := models.PostLike{PostID: postID, UserID: userID}
	if err := s.db.Create(&like).Error; err != nil {
		return false, err
	}
	s.db.Model(&models.GratitudePost{}).Where("id = ?", postID).
		Update("likes", gorm.Expr("likes + 1"))

	if post.AuthorID != nil && *post.AuthorID != userID {
		s.notifs.Notify(*post.AuthorID, models.NotifLike,
			"Sua gratidão recebeu uma nova luz.", "favorite", &userID)
	}
	return true, nil
}

// LikedIDs returns the ids of posts the viewer has liked, preserving the
// client's local liked-set view.
func (s *GratitudeService) LikedIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.Model(&models.PostLike{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	return ids, err
}
