package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
)

type MockChatLogRepo struct {
	mock.Mock
}

func (m *MockChatLogRepo) Create(ctx context.Context, l *model.ChatLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockChatLogRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.ChatLog, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatLog), args.Error(1)
}

func TestChatService_Log(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the exchange with a generated id", func(t *testing.T) {
		mockRepo := &MockChatLogRepo{}
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *model.ChatLog) bool {
			return l.ID != "" && l.SessionID == nil && l.Prompt == "hi"
		})).Return(nil)

		svc := NewChatService(mockRepo, zap.NewNop())
		l, err := svc.Log(ctx, ChatEntry{Prompt: "hi", Response: "hello"})
		require.NoError(t, err)
		assert.NotEmpty(t, l.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		mockRepo := &MockChatLogRepo{}
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk io"))

		svc := NewChatService(mockRepo, zap.NewNop())
		_, err := svc.Log(ctx, ChatEntry{Prompt: "hi", Response: "hello"})
		assert.Error(t, err)
	})
}

func TestChatService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		mockRepo := &MockChatLogRepo{}
		mockRepo.On("ListBySession", mock.Anything, "s1", defaultChatHistoryLimit).
			Return([]model.ChatLog{{ID: "c1"}}, nil)

		svc := NewChatService(mockRepo, zap.NewNop())
		got := svc.History(ctx, "s1", 0)
		require.Len(t, got, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("storage failure degrades to empty", func(t *testing.T) {
		mockRepo := &MockChatLogRepo{}
		mockRepo.On("ListBySession", mock.Anything, "s1", 10).Return(nil, errors.New("disk io"))

		svc := NewChatService(mockRepo, zap.NewNop())
		assert.Empty(t, svc.History(ctx, "s1", 10))
	})
}
