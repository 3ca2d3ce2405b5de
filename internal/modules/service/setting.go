package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type SettingService interface {
	Set(ctx context.Context, key string, value interface{}) error
	Get(ctx context.Context, key string, def interface{}) interface{}
}

type settingService struct {
	r   repo.SettingRepo
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewSettingService wires an optional redis read cache in front of the
// settings table; rdb may be nil, which disables caching entirely.
func NewSettingService(r repo.SettingRepo, rdb *redis.Client, ttl time.Duration, log *zap.Logger) SettingService {
	return &settingService{r: r, rdb: rdb, ttl: ttl, log: log}
}

func cacheKey(key string) string { return "setting:" + key }

// Set stores the value JSON-encoded, last write wins. A value that cannot
// be encoded is a caller error, not a store error.
func (s *settingService) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if err := s.r.Set(ctx, key, string(raw)); err != nil {
		return err
	}
	if s.rdb != nil {
		if err := s.rdb.Del(ctx, cacheKey(key)).Err(); err != nil {
			s.log.Warn("invalidate setting cache", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

// Get returns def both when the key is absent and when the stored text
// fails to decode.
func (s *settingService) Get(ctx context.Context, key string, def interface{}) interface{} {
	raw, cached := s.cachedRaw(ctx, key)
	if !cached {
		var err error
		raw, err = s.r.GetRaw(ctx, key)
		if err != nil {
			if !errors.Is(err, repo.ErrSettingNotFound) {
				s.log.Error("get setting", zap.String("key", key), zap.Error(err))
			}
			return def
		}
		if s.rdb != nil {
			if err := s.rdb.Set(ctx, cacheKey(key), raw, s.ttl).Err(); err != nil {
				s.log.Warn("fill setting cache", zap.String("key", key), zap.Error(err))
			}
		}
	}

	var v interface{}
	if err := sonic.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Warn("setting value is not valid JSON", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

func (s *settingService) cachedRaw(ctx context.Context, key string) (string, bool) {
	if s.rdb == nil {
		return "", false
	}
	raw, err := s.rdb.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("read setting cache", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return raw, true
}
