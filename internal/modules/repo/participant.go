package repo

import (
	"context"
	"fmt"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"gorm.io/gorm"
)

const participantBatchSize = 100

type ParticipantRepo interface {
	Replace(ctx context.Context, sessionID string, participants []model.Participant) error
	Add(ctx context.Context, p *model.Participant) error
	ListBySession(ctx context.Context, sessionID string) ([]model.Participant, error)
}

type participantRepo struct{ db *gorm.DB }

func NewParticipantRepo(db *gorm.DB) ParticipantRepo {
	return &participantRepo{db: db}
}

// Replace swaps the full participant list for a session in one transaction.
// Either the delete and every insert commit together, or the prior set stays
// intact; concurrent readers never observe a partially replaced list.
func (r *participantRepo) Replace(ctx context.Context, sessionID string, participants []model.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&model.Participant{}).Error; err != nil {
			return fmt.Errorf("delete participants: %w", err)
		}
		if len(participants) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&participants, participantBatchSize).Error; err != nil {
			return fmt.Errorf("insert participants: %w", err)
		}
		return nil
	})
}

func (r *participantRepo) Add(ctx context.Context, p *model.Participant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *participantRepo) ListBySession(ctx context.Context, sessionID string) ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&participants).Error
	return participants, err
}
