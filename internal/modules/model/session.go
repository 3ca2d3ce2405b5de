package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Meeting platforms the capture controller knows how to join.
const (
	PlatformZoom  = "zoom"
	PlatformTeams = "teams"
	PlatformGmeet = "gmeet"
	PlatformCliq  = "cliq"
)

// Session lifecycle statuses. Created in provisioning, moves to recording
// when capture starts, then processing and finally completed or failed.
const (
	StatusProvisioning = "provisioning"
	StatusRecording    = "recording"
	StatusProcessing   = "processing"
	StatusCompleted    = "completed"
	StatusFailed       = "failed"
)

func ValidPlatform(p string) bool {
	switch p {
	case PlatformZoom, PlatformTeams, PlatformGmeet, PlatformCliq:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusProvisioning, StatusRecording, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

type Session struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Platform    string `gorm:"type:text;not null;check:platform IN ('zoom','teams','gmeet','cliq');index" json:"platform"`
	MeetingLink string `gorm:"type:text;not null" json:"meeting_link"`
	Title       string `gorm:"type:text" json:"title,omitempty"`
	Status      string `gorm:"type:text;not null;default:'provisioning';check:status IN ('provisioning','recording','processing','completed','failed');index" json:"status"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Summary        *Summary          `gorm:"type:json" json:"summary,omitempty"`
	TranscriptPath string            `gorm:"type:text" json:"transcript_path,omitempty"`
	RecordingPath  string            `gorm:"type:text" json:"recording_path,omitempty"`
	OAuthTokenRef  string            `gorm:"type:text" json:"oauth_token_ref,omitempty"`
	Metadata       datatypes.JSONMap `gorm:"type:json" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`

	// Session <-> Participant
	Participants []Participant `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Session <-> EmailLog
	EmailLogs []EmailLog `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Session <-> ChatLog (chat history survives session deletion)
	ChatLogs []ChatLog `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Session) TableName() string { return "sessions" }

// Summary is the structured output of the summarization pass, stored as a
// JSON column and decoded back on every read.
type Summary struct {
	Highlights  []string `json:"highlights"`
	ActionItems []string `json:"action_items,omitempty"`
}

// Scan implements the sql.Scanner interface for Summary
func (s *Summary) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to unmarshal JSON value")
	}
	return json.Unmarshal(bytes, s)
}

// Value implements the driver.Valuer interface for Summary
func (s *Summary) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}
