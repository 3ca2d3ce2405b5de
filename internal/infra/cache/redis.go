package cache

import (
	"context"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/config"
	"github.com/redis/go-redis/v9"
)

// New connects to redis when the settings cache is enabled. Returns nil when
// disabled; callers treat a nil client as cache-off.
func New(cfg *config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

func Close(rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Close()
}
