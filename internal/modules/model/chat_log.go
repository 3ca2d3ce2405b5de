package model

import "time"

// ChatLog is one assistant exchange. Append-only; the session reference is
// cleared when the owning session is deleted so chat history survives.
type ChatLog struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	SessionID *string `gorm:"size:36;index" json:"session_id,omitempty"`

	Prompt   string `gorm:"type:text;not null" json:"prompt"`
	Response string `gorm:"type:text;not null" json:"response"`
	Platform string `gorm:"type:text" json:"platform,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`

	// ChatLog <-> Session
	Session *Session `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (ChatLog) TableName() string { return "chat_logs" }
