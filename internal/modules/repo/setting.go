package repo

import (
	"context"
	"errors"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSettingNotFound = errors.New("setting not found")
)

type SettingRepo interface {
	Set(ctx context.Context, key, raw string) error
	GetRaw(ctx context.Context, key string) (string, error)
}

type settingRepo struct{ db *gorm.DB }

func NewSettingRepo(db *gorm.DB) SettingRepo {
	return &settingRepo{db: db}
}

func (r *settingRepo) Set(ctx context.Context, key, raw string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&model.Setting{Key: key, Value: raw}).Error
}

func (r *settingRepo) GetRaw(ctx context.Context, key string) (string, error) {
	var s model.Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSettingNotFound
		}
		return "", err
	}
	return s.Value, nil
}
