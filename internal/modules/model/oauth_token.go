package model

import "time"

// OAuthToken holds platform credentials for one user. Addressed by the
// (platform, user_email) pair; a write with the same identity replaces the
// prior row in full.
type OAuthToken struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Platform  string `gorm:"type:text;not null;uniqueIndex:uq_platform_user_email,priority:1" json:"platform"`
	UserEmail string `gorm:"type:text;not null;uniqueIndex:uq_platform_user_email,priority:2" json:"user_email"`

	AccessToken  string     `gorm:"type:text;not null" json:"access_token"`
	RefreshToken string     `gorm:"type:text" json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Scope        string     `gorm:"type:text" json:"scope,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (OAuthToken) TableName() string { return "oauth_tokens" }
