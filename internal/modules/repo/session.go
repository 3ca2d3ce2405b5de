package repo

import (
	"context"
	"errors"
	"time"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"gorm.io/gorm"
)

// Custom error types for better error handling
var (
	ErrSessionNotFound = errors.New("session not found")
)

// MeetingStats is a point-in-time snapshot of session counts. Nothing here
// is cached; every call hits the database.
type MeetingStats struct {
	TotalSessions     int64            `json:"total_sessions"`
	CompletedSessions int64            `json:"completed_sessions"`
	ActiveSessions    int64            `json:"active_sessions"`
	CompletionRate    int              `json:"completion_rate"`
	ByPlatform        map[string]int64 `json:"by_platform"`
	Last30Days        map[string]int64 `json:"last_30_days"`
}

type SessionRepo interface {
	Create(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	ListRecent(ctx context.Context, limit, offset int) ([]model.Session, error)
	CountActive(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*MeetingStats, error)
	CleanupOld(ctx context.Context, cutoff time.Time) (int64, error)
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Update applies a partial update: only the columns present in fields are
// touched. Returns ErrSessionNotFound when no row with id exists; the
// existence check runs inside the same transaction as the update.
func (r *sessionRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Session
		if err := tx.Select("id").Where("id = ?", id).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		return tx.Model(&model.Session{}).Where("id = ?", id).Updates(fields).Error
	})
}

func (r *sessionRepo) ListRecent(ctx context.Context, limit, offset int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("status IN ?", []string{model.StatusRecording, model.StatusProcessing}).
		Count(&count).Error
	return count, err
}

func (r *sessionRepo) Stats(ctx context.Context) (*MeetingStats, error) {
	stats := &MeetingStats{
		ByPlatform: map[string]int64{},
		Last30Days: map[string]int64{},
	}

	var counts struct {
		Total     int64
		Completed int64
		Active    int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) as completed,
			COALESCE(SUM(CASE WHEN status IN ('recording','processing') THEN 1 ELSE 0 END), 0) as active
		`).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	stats.TotalSessions = counts.Total
	stats.CompletedSessions = counts.Completed
	stats.ActiveSessions = counts.Active
	if counts.Total > 0 {
		stats.CompletionRate = int(counts.Completed * 100 / counts.Total)
	}

	var byPlatform []struct {
		Platform string
		Count    int64
	}
	err = r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("platform, COUNT(*) as count").
		Group("platform").
		Scan(&byPlatform).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byPlatform {
		stats.ByPlatform[row.Platform] = row.Count
	}

	// Day bucketing happens here rather than in SQL so it is independent of
	// how the driver formats stored timestamps.
	cutoff := time.Now().AddDate(0, 0, -30)
	var createdAts []time.Time
	err = r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("created_at >= ?", cutoff).
		Pluck("created_at", &createdAts).Error
	if err != nil {
		return nil, err
	}
	for _, t := range createdAts {
		day := t.UTC().Format("2006-01-02")
		stats.Last30Days[day]++
	}

	return stats, nil
}

// CleanupOld deletes completed sessions created before cutoff. Participants
// and email logs go with them via the cascade constraints; chat logs keep
// their rows with session_id set to NULL. Sessions in any other status are
// never touched regardless of age.
func (r *sessionRepo) CleanupOld(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", model.StatusCompleted, cutoff).
		Delete(&model.Session{})
	return res.RowsAffected, res.Error
}
