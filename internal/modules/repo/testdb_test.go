package repo

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
)

// newTestDB opens a throwaway database file with the same pragmas the
// server uses, so cascade and check constraints behave as in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		filepath.Join(t.TempDir(), "test.db"),
	)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Session{},
		&model.Participant{},
		&model.EmailLog{},
		&model.ChatLog{},
		&model.OAuthToken{},
		&model.Setting{},
	))
	return db
}

func mustCreateSession(t *testing.T, db *gorm.DB, s *model.Session) *model.Session {
	t.Helper()
	if s.Status == "" {
		s.Status = model.StatusProvisioning
	}
	if s.MeetingLink == "" {
		s.MeetingLink = "https://example.com/meet"
	}
	require.NoError(t, db.Create(s).Error)
	return s
}
