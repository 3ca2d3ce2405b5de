package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/pkg/pathutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const defaultCleanupDays = 90

// UpdateSessionInput is a partial update. Nil fields leave the stored
// columns untouched; callers never need to re-pass prior values.
type UpdateSessionInput struct {
	Status         *string
	StartedAt      *time.Time
	CompletedAt    *time.Time
	Summary        *model.Summary
	TranscriptPath *string
	RecordingPath  *string
	Metadata       map[string]interface{}
}

// SessionService owns the meeting-session lifecycle records. Write
// operations surface every storage error; read operations degrade to an
// empty result and log the cause, so status and dashboard queries never
// crash a caller that only wants to display data.
type SessionService interface {
	Create(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, id string, in UpdateSessionInput) error
	ListRecent(ctx context.Context, limit, offset int) ([]model.Session, error)
	CountActive(ctx context.Context) int64
	Stats(ctx context.Context) *repo.MeetingStats
	Cleanup(ctx context.Context, daysToKeep int) (int64, error)
}

type sessionService struct {
	r   repo.SessionRepo
	log *zap.Logger
}

func NewSessionService(r repo.SessionRepo, log *zap.Logger) SessionService {
	return &sessionService{r: r, log: log}
}

func (s *sessionService) Create(ctx context.Context, ss *model.Session) error {
	if !model.ValidPlatform(ss.Platform) {
		return fmt.Errorf("%w: %q", ErrInvalidPlatform, ss.Platform)
	}
	if !model.ValidStatus(ss.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, ss.Status)
	}
	if ss.ID == "" {
		ss.ID = uuid.NewString()
	}

	if _, err := s.r.Get(ctx, ss.ID); err == nil {
		return fmt.Errorf("%w: %s", ErrSessionExists, ss.ID)
	} else if !errors.Is(err, repo.ErrSessionNotFound) {
		return err
	}

	return s.r.Create(ctx, ss)
}

// Get returns (nil, nil) both for a missing id and for a storage failure;
// the failure is logged. Callers that must distinguish should not exist for
// this read path.
func (s *sessionService) Get(ctx context.Context, id string) (*model.Session, error) {
	sess, err := s.r.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, repo.ErrSessionNotFound) {
			s.log.Error("get session", zap.String("session_id", id), zap.Error(err))
		}
		return nil, nil
	}
	return sess, nil
}

func (s *sessionService) Update(ctx context.Context, id string, in UpdateSessionInput) error {
	fields := map[string]interface{}{}
	if in.Status != nil {
		if !model.ValidStatus(*in.Status) {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, *in.Status)
		}
		fields["status"] = *in.Status
	}
	if in.StartedAt != nil {
		fields["started_at"] = *in.StartedAt
	}
	if in.CompletedAt != nil {
		fields["completed_at"] = *in.CompletedAt
	}
	if in.Summary != nil {
		fields["summary"] = in.Summary
	}
	if in.TranscriptPath != nil {
		if err := pathutil.ValidateArtifactPath(*in.TranscriptPath); err != nil {
			return fmt.Errorf("%w: transcript_path: %v", ErrInvalidPath, err)
		}
		fields["transcript_path"] = *in.TranscriptPath
	}
	if in.RecordingPath != nil {
		if err := pathutil.ValidateArtifactPath(*in.RecordingPath); err != nil {
			return fmt.Errorf("%w: recording_path: %v", ErrInvalidPath, err)
		}
		fields["recording_path"] = *in.RecordingPath
	}
	if in.Metadata != nil {
		fields["metadata"] = datatypes.JSONMap(in.Metadata)
	}
	return s.r.Update(ctx, id, fields)
}

func (s *sessionService) ListRecent(ctx context.Context, limit, offset int) ([]model.Session, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidPagination
	}
	if limit == 0 {
		return []model.Session{}, nil
	}
	sessions, err := s.r.ListRecent(ctx, limit, offset)
	if err != nil {
		s.log.Error("list recent sessions", zap.Error(err))
		return []model.Session{}, nil
	}
	return sessions, nil
}

func (s *sessionService) CountActive(ctx context.Context) int64 {
	count, err := s.r.CountActive(ctx)
	if err != nil {
		s.log.Error("count active sessions", zap.Error(err))
		return 0
	}
	return count
}

func (s *sessionService) Stats(ctx context.Context) *repo.MeetingStats {
	stats, err := s.r.Stats(ctx)
	if err != nil {
		s.log.Error("meeting stats", zap.Error(err))
		return &repo.MeetingStats{
			ByPlatform: map[string]int64{},
			Last30Days: map[string]int64{},
		}
	}
	return stats
}

// Cleanup deletes completed sessions older than daysToKeep (default 90) and
// returns how many were removed. Unlike the read paths, errors surface:
// silent retention failures are a compliance concern.
func (s *sessionService) Cleanup(ctx context.Context, daysToKeep int) (int64, error) {
	if daysToKeep <= 0 {
		daysToKeep = defaultCleanupDays
	}
	cutoff := time.Now().AddDate(0, 0, -daysToKeep)

	removed, err := s.r.CleanupOld(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup old sessions: %w", err)
	}
	if removed > 0 {
		s.log.Info("old sessions removed",
			zap.Int64("count", removed),
			zap.Time("cutoff", cutoff))
	}
	return removed, nil
}
