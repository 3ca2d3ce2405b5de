package repo

import (
	"context"
	"errors"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTokenNotFound = errors.New("oauth token not found")
)

type OAuthTokenRepo interface {
	Upsert(ctx context.Context, t *model.OAuthToken) error
	GetByPlatformUser(ctx context.Context, platform, userEmail string) (*model.OAuthToken, error)
	Refresh(ctx context.Context, id string, fields map[string]interface{}) error
}

type oauthTokenRepo struct{ db *gorm.DB }

func NewOAuthTokenRepo(db *gorm.DB) OAuthTokenRepo {
	return &oauthTokenRepo{db: db}
}

// Upsert replaces the row addressed by (platform, user_email) in full; the
// second write's values win, there is no merge.
func (r *oauthTokenRepo) Upsert(ctx context.Context, t *model.OAuthToken) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "platform"}, {Name: "user_email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token", "refresh_token", "expires_at", "scope", "updated_at",
			}),
		}).
		Create(t).Error
}

func (r *oauthTokenRepo) GetByPlatformUser(ctx context.Context, platform, userEmail string) (*model.OAuthToken, error) {
	var t model.OAuthToken
	err := r.db.WithContext(ctx).
		Where("platform = ? AND user_email = ?", platform, userEmail).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *oauthTokenRepo) Refresh(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.OAuthToken
		if err := tx.Select("id").Where("id = ?", id).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenNotFound
			}
			return err
		}
		return tx.Model(&model.OAuthToken{}).Where("id = ?", id).Updates(fields).Error
	})
}
