package repo

import (
	"context"
	"errors"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"gorm.io/gorm"
)

var (
	ErrEmailLogNotFound = errors.New("email log not found")
)

type EmailLogRepo interface {
	Create(ctx context.Context, l *model.EmailLog) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	ListBySession(ctx context.Context, sessionID string) ([]model.EmailLog, error)
	ListPendingOrFailed(ctx context.Context) ([]model.EmailLog, error)
}

type emailLogRepo struct{ db *gorm.DB }

func NewEmailLogRepo(db *gorm.DB) EmailLogRepo {
	return &emailLogRepo{db: db}
}

func (r *emailLogRepo) Create(ctx context.Context, l *model.EmailLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *emailLogRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.EmailLog
		if err := tx.Select("id").Where("id = ?", id).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmailLogNotFound
			}
			return err
		}
		return tx.Model(&model.EmailLog{}).Where("id = ?", id).Updates(fields).Error
	})
}

func (r *emailLogRepo) ListBySession(ctx context.Context, sessionID string) ([]model.EmailLog, error) {
	var logs []model.EmailLog
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&logs).Error
	return logs, err
}

// ListPendingOrFailed returns every attempt the external dispatcher still
// owes a delivery for, across all sessions.
func (r *emailLogRepo) ListPendingOrFailed(ctx context.Context) ([]model.EmailLog, error) {
	var logs []model.EmailLog
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{model.EmailStatusPending, model.EmailStatusFailed}).
		Order("created_at ASC, id ASC").
		Find(&logs).Error
	return logs, err
}
