package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TokenInput struct {
	AccessToken  string
	RefreshToken string
	Scope        string
	ExpiresAt    *time.Time
}

type OAuthService interface {
	Upsert(ctx context.Context, platform, userEmail string, in TokenInput) (*model.OAuthToken, error)
	Get(ctx context.Context, platform, userEmail string) (*model.OAuthToken, error)
	Refresh(ctx context.Context, tokenID string, in TokenInput) error
}

type oauthService struct {
	r   repo.OAuthTokenRepo
	log *zap.Logger
}

func NewOAuthService(r repo.OAuthTokenRepo, log *zap.Logger) OAuthService {
	return &oauthService{r: r, log: log}
}

func (s *oauthService) Upsert(ctx context.Context, platform, userEmail string, in TokenInput) (*model.OAuthToken, error) {
	if !model.ValidPlatform(platform) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlatform, platform)
	}

	t := &model.OAuthToken{
		ID:           uuid.NewString(),
		Platform:     platform,
		UserEmail:    userEmail,
		AccessToken:  in.AccessToken,
		RefreshToken: in.RefreshToken,
		Scope:        in.Scope,
		ExpiresAt:    in.ExpiresAt,
	}
	if err := s.r.Upsert(ctx, t); err != nil {
		return nil, err
	}

	// On conflict the store keeps the existing row's id; re-read so the
	// returned entity matches stored state.
	return s.r.GetByPlatformUser(ctx, platform, userEmail)
}

// Get returns (nil, nil) for a never-stored pair; absence is not an error
// for credential lookups.
func (s *oauthService) Get(ctx context.Context, platform, userEmail string) (*model.OAuthToken, error) {
	t, err := s.r.GetByPlatformUser(ctx, platform, userEmail)
	if err != nil {
		if !errors.Is(err, repo.ErrTokenNotFound) {
			s.log.Error("get oauth token",
				zap.String("platform", platform),
				zap.String("user_email", userEmail),
				zap.Error(err))
		}
		return nil, nil
	}
	return t, nil
}

func (s *oauthService) Refresh(ctx context.Context, tokenID string, in TokenInput) error {
	fields := map[string]interface{}{
		"access_token": in.AccessToken,
	}
	if in.RefreshToken != "" {
		fields["refresh_token"] = in.RefreshToken
	}
	if in.Scope != "" {
		fields["scope"] = in.Scope
	}
	if in.ExpiresAt != nil {
		fields["expires_at"] = *in.ExpiresAt
	}
	return s.r.Refresh(ctx, tokenID, fields)
}
