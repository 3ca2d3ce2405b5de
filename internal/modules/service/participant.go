package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ParticipantInput struct {
	Name           string
	Email          string
	Role           string
	PlatformUserID string
	JoinedAt       *time.Time
	LeftAt         *time.Time
}

type ParticipantService interface {
	Replace(ctx context.Context, sessionID string, ins []ParticipantInput) error
	Add(ctx context.Context, sessionID string, in ParticipantInput) (*model.Participant, error)
	List(ctx context.Context, sessionID string) []model.Participant
}

type participantService struct {
	r   repo.ParticipantRepo
	log *zap.Logger
}

func NewParticipantService(r repo.ParticipantRepo, log *zap.Logger) ParticipantService {
	return &participantService{r: r, log: log}
}

func (s *participantService) toModel(sessionID string, in ParticipantInput, now time.Time) (model.Participant, error) {
	role := in.Role
	if role == "" {
		role = model.RoleParticipant
	}
	if !model.ValidRole(role) {
		return model.Participant{}, fmt.Errorf("%w: %q", ErrInvalidRole, in.Role)
	}
	joined := in.JoinedAt
	if joined == nil {
		joined = &now
	}
	return model.Participant{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		Name:           in.Name,
		Email:          in.Email,
		Role:           role,
		PlatformUserID: in.PlatformUserID,
		JoinedAt:       joined,
		LeftAt:         in.LeftAt,
	}, nil
}

// Replace swaps the session's full participant list atomically; a failed
// replacement leaves the prior set intact.
func (s *participantService) Replace(ctx context.Context, sessionID string, ins []ParticipantInput) error {
	now := time.Now()
	participants := make([]model.Participant, 0, len(ins))
	for _, in := range ins {
		p, err := s.toModel(sessionID, in, now)
		if err != nil {
			return err
		}
		participants = append(participants, p)
	}
	return s.r.Replace(ctx, sessionID, participants)
}

func (s *participantService) Add(ctx context.Context, sessionID string, in ParticipantInput) (*model.Participant, error) {
	p, err := s.toModel(sessionID, in, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.r.Add(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *participantService) List(ctx context.Context, sessionID string) []model.Participant {
	participants, err := s.r.ListBySession(ctx, sessionID)
	if err != nil {
		s.log.Error("list participants", zap.String("session_id", sessionID), zap.Error(err))
		return []model.Participant{}
	}
	return participants
}
