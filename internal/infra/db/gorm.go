package db

import (
	"fmt"
	"time"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/config"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the embedded database file. WAL mode keeps readers from blocking
// on an in-flight writer; foreign_keys must be on for the cascade and
// set-null delete actions declared on the models.
func New(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)",
		cfg.Database.Path, cfg.Database.BusyTimeoutMS,
	)

	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	d, err := gorm.Open(sqlite.Open(dsn), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)
	return d, nil
}

// Close flushes buffered writes and releases the database file handle.
func Close(d *gorm.DB) error {
	sqlDB, err := d.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
