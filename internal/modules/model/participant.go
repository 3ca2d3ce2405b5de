package model

import "time"

// Participant roles within a meeting.
const (
	RoleOrganizer   = "organizer"
	RoleParticipant = "participant"
	RoleObserver    = "observer"
)

func ValidRole(r string) bool {
	switch r {
	case RoleOrganizer, RoleParticipant, RoleObserver:
		return true
	}
	return false
}

type Participant struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	SessionID string `gorm:"size:36;not null;index" json:"session_id"`

	Name           string `gorm:"type:text;not null" json:"name"`
	Email          string `gorm:"type:text;not null" json:"email"`
	Role           string `gorm:"type:text;not null;default:'participant';check:role IN ('organizer','participant','observer')" json:"role"`
	PlatformUserID string `gorm:"type:text" json:"platform_user_id,omitempty"`

	JoinedAt *time.Time `json:"joined_at,omitempty"`
	LeftAt   *time.Time `json:"left_at,omitempty"`

	// Participant <-> Session
	Session *Session `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Participant) TableName() string { return "participants" }
