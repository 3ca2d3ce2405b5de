package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
)

type MockSettingRepo struct {
	mock.Mock
}

func (m *MockSettingRepo) Set(ctx context.Context, key, raw string) error {
	args := m.Called(ctx, key, raw)
	return args.Error(0)
}

func (m *MockSettingRepo) GetRaw(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestSettingService_WithoutCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set JSON-encodes the value", func(t *testing.T) {
		mockRepo := &MockSettingRepo{}
		mockRepo.On("Set", mock.Anything, "email.enabled", "true").Return(nil)

		svc := NewSettingService(mockRepo, nil, 0, zap.NewNop())
		require.NoError(t, svc.Set(ctx, "email.enabled", true))
		mockRepo.AssertExpectations(t)
	})

	t.Run("get decodes the stored text", func(t *testing.T) {
		mockRepo := &MockSettingRepo{}
		mockRepo.On("GetRaw", mock.Anything, "retention.days").Return("30", nil)

		svc := NewSettingService(mockRepo, nil, 0, zap.NewNop())
		got := svc.Get(ctx, "retention.days", float64(90))
		assert.Equal(t, float64(30), got)
	})

	t.Run("missing key returns the default", func(t *testing.T) {
		mockRepo := &MockSettingRepo{}
		mockRepo.On("GetRaw", mock.Anything, "never.stored").Return("", repo.ErrSettingNotFound)

		svc := NewSettingService(mockRepo, nil, 0, zap.NewNop())
		assert.Equal(t, "fallback", svc.Get(ctx, "never.stored", "fallback"))
	})

	t.Run("undecodable stored text returns the default", func(t *testing.T) {
		mockRepo := &MockSettingRepo{}
		mockRepo.On("GetRaw", mock.Anything, "broken").Return("{not json", nil)

		svc := NewSettingService(mockRepo, nil, 0, zap.NewNop())
		assert.Equal(t, "fallback", svc.Get(ctx, "broken", "fallback"))
	})

	t.Run("unencodable value is a caller error", func(t *testing.T) {
		svc := NewSettingService(&MockSettingRepo{}, nil, 0, zap.NewNop())
		err := svc.Set(ctx, "bad", make(chan int))
		assert.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("storage failure on read returns the default", func(t *testing.T) {
		mockRepo := &MockSettingRepo{}
		mockRepo.On("GetRaw", mock.Anything, "k").Return("", errors.New("disk io"))

		svc := NewSettingService(mockRepo, nil, 0, zap.NewNop())
		assert.Equal(t, "fallback", svc.Get(ctx, "k", "fallback"))
	})
}

func TestSettingService_WithCache(t *testing.T) {
	ctx := context.Background()

	t.Run("second read is served from the cache", func(t *testing.T) {
		mockRepo := &MockSettingRepo{}
		mockRepo.On("GetRaw", mock.Anything, "retention.days").Return("30", nil).Once()

		svc := NewSettingService(mockRepo, newTestRedis(t), time.Minute, zap.NewNop())
		assert.Equal(t, float64(30), svc.Get(ctx, "retention.days", nil))
		assert.Equal(t, float64(30), svc.Get(ctx, "retention.days", nil))
		mockRepo.AssertExpectations(t)
	})

	t.Run("set invalidates the cached value", func(t *testing.T) {
		mockRepo := &MockSettingRepo{}
		mockRepo.On("GetRaw", mock.Anything, "retention.days").Return("30", nil).Once()
		mockRepo.On("Set", mock.Anything, "retention.days", "7").Return(nil)
		mockRepo.On("GetRaw", mock.Anything, "retention.days").Return("7", nil).Once()

		svc := NewSettingService(mockRepo, newTestRedis(t), time.Minute, zap.NewNop())
		assert.Equal(t, float64(30), svc.Get(ctx, "retention.days", nil))

		require.NoError(t, svc.Set(ctx, "retention.days", 7))
		assert.Equal(t, float64(7), svc.Get(ctx, "retention.days", nil))
		mockRepo.AssertExpectations(t)
	})
}
