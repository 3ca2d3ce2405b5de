package service

import (
	"context"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultChatHistoryLimit = 50

type ChatEntry struct {
	SessionID *string
	Prompt    string
	Response  string
	Platform  string
}

type ChatService interface {
	Log(ctx context.Context, in ChatEntry) (*model.ChatLog, error)
	History(ctx context.Context, sessionID string, limit int) []model.ChatLog
}

type chatService struct {
	r   repo.ChatLogRepo
	log *zap.Logger
}

func NewChatService(r repo.ChatLogRepo, log *zap.Logger) ChatService {
	return &chatService{r: r, log: log}
}

func (s *chatService) Log(ctx context.Context, in ChatEntry) (*model.ChatLog, error) {
	l := &model.ChatLog{
		ID:        uuid.NewString(),
		SessionID: in.SessionID,
		Prompt:    in.Prompt,
		Response:  in.Response,
		Platform:  in.Platform,
	}
	if err := s.r.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// History returns the newest entries first, bounded by limit (default 50).
func (s *chatService) History(ctx context.Context, sessionID string, limit int) []model.ChatLog {
	if limit <= 0 {
		limit = defaultChatHistoryLimit
	}
	logs, err := s.r.ListBySession(ctx, sessionID, limit)
	if err != nil {
		s.log.Error("list chat history", zap.String("session_id", sessionID), zap.Error(err))
		return []model.ChatLog{}
	}
	return logs
}
