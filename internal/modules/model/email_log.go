package model

import "time"

// Email delivery statuses. One row per delivery attempt record; retries
// update the same row's retry_count and status.
const (
	EmailStatusPending = "pending"
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
	EmailStatusBounced = "bounced"
)

func ValidEmailStatus(s string) bool {
	switch s {
	case EmailStatusPending, EmailStatusSent, EmailStatusFailed, EmailStatusBounced:
		return true
	}
	return false
}

type EmailLog struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	SessionID string `gorm:"size:36;not null;index" json:"session_id"`

	RecipientEmail string `gorm:"type:text;not null" json:"recipient_email"`
	Status         string `gorm:"type:text;not null;default:'pending';check:status IN ('pending','sent','failed','bounced');index" json:"status"`
	ErrorMessage   string `gorm:"type:text" json:"error_message,omitempty"`
	RetryCount     int    `gorm:"not null;default:0" json:"retry_count"`

	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// EmailLog <-> Session
	Session *Session `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (EmailLog) TableName() string { return "email_logs" }
