package repo

import (
	"context"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"gorm.io/gorm"
)

type ChatLogRepo interface {
	Create(ctx context.Context, l *model.ChatLog) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]model.ChatLog, error)
}

type chatLogRepo struct{ db *gorm.DB }

func NewChatLogRepo(db *gorm.DB) ChatLogRepo {
	return &chatLogRepo{db: db}
}

func (r *chatLogRepo) Create(ctx context.Context, l *model.ChatLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *chatLogRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.ChatLog, error) {
	var logs []model.ChatLog
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
