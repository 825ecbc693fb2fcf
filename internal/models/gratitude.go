package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gratitude post types.
const (
	PostTypeLight = "LUZ"
	PostTypeAmen  = "AMÉM"
)

// AnonymousAuthor is the display name used when a post carries no author id.
const AnonymousAuthor = "Anônimo"

// GratitudePost is an entry on the shared gratitude feed. AuthorID is
// nil for anonymous posts; Author keeps the display name shown at the
// time of posting.
type GratitudePost struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID *uuid.UUID `gorm:"type:uuid;index" json:"authorId,omitempty"`
	Author   string     `gorm:"size:120;not null" json:"author"`
	Content  string     `gorm:"type:text;not null" json:"content"`
	Likes    int        `gorm:"default:0" json:"likes"`
	Icon     string     `gorm:"size:60" json:"icon"`
	ImageURL string     `gorm:"type:text" json:"imageUrl,omitempty"`
	Type     string     `gorm:"size:10;default:'LUZ'" json:"type"`

	Comments []PostComment `gorm:"foreignKey:PostID" json:"comments"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *GratitudePost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PostComment is appended to a post's comment list. The post is the unit
// of persistence; comments are never edited after creation.
type PostComment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	Author    string    `gorm:"size:120;not null" json:"author"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"time"`
}

func (c *PostComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// PostLike tracks which viewer liked which post. Toggling removes the row.
type PostLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *PostLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
