package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User statuses.
const (
	StatusActive   = "Ativo"
	StatusInactive = "Inativo"
	StatusBanned   = "Banido"
)

// User holds identity, profile, progression and the social id lists.
// XP is always kept in [0,100) by the progression engine; overflow is
// converted into levels before any save.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:120;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	Level  int    `gorm:"default:1" json:"level"`
	XP     int    `gorm:"default:0" json:"xp"`
	Avatar string `gorm:"type:text" json:"avatar"`
	Focus  string `gorm:"size:120" json:"focus,omitempty"`
	Bio    string `gorm:"type:text" json:"bio,omitempty"`
	City   string `gorm:"size:120" json:"city,omitempty"`
	State  string `gorm:"size:60" json:"state,omitempty"`

	Role   string `gorm:"size:20;default:'User'" json:"role"`
	Status string `gorm:"size:20;default:'Ativo'" json:"status"`

	// Mutual connections and the two halves of the request protocol.
	// An id in SentRequests of A mirrors an id in PendingRequests of B.
	Connections     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"connections"`
	PendingRequests datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"pendingRequests"`
	SentRequests    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"sentRequests"`

	HasAcceptedCommitment bool `gorm:"default:false" json:"hasAcceptedCommitment"`
	IsVerified            bool `gorm:"default:false" json:"isVerified"`

	VerifyCode *string `gorm:"size:64" json:"-"`
	ResetCode  *string `gorm:"size:64" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsConnectedTo reports whether other is in the user's connection list.
func (u *User) IsConnectedTo(otherID string) bool {
	for _, id := range u.Connections {
		if id == otherID {
			return true
		}
	}
	return false
}

// HasSentRequestTo reports whether a request to other is already pending.
func (u *User) HasSentRequestTo(otherID string) bool {
	for _, id := range u.SentRequests {
		if id == otherID {
			return true
		}
	}
	return false
}
