package service

import (
	"context"
	"fmt"
	"time"

	mq "github.com/VJVAIRAVAN/smart-meet-cliq/internal/infra/queue"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const emailAttemptRoutingKey = "email.attempt.logged"

// EmailAttemptEvent is published when a delivery attempt is recorded, so the
// external dispatcher can pick it up without polling.
type EmailAttemptEvent struct {
	LogID          string `json:"log_id"`
	SessionID      string `json:"session_id"`
	RecipientEmail string `json:"recipient_email"`
	Status         string `json:"status"`
}

type EmailService interface {
	Log(ctx context.Context, sessionID, recipientEmail, status, errorMessage string) (*model.EmailLog, error)
	UpdateStatus(ctx context.Context, logID, status, errorMessage string, retryCount int) error
	ListBySession(ctx context.Context, sessionID string) []model.EmailLog
	ListPendingOrFailed(ctx context.Context) []model.EmailLog
}

type emailService struct {
	r   repo.EmailLogRepo
	pub *mq.Publisher
	log *zap.Logger
}

func NewEmailService(r repo.EmailLogRepo, pub *mq.Publisher, log *zap.Logger) EmailService {
	return &emailService{r: r, pub: pub, log: log}
}

// Log records one delivery attempt. sent_at is populated only when the
// status is already sent at creation time.
func (s *emailService) Log(ctx context.Context, sessionID, recipientEmail, status, errorMessage string) (*model.EmailLog, error) {
	if status == "" {
		status = model.EmailStatusPending
	}
	if !model.ValidEmailStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmailStatus, status)
	}

	l := &model.EmailLog{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		RecipientEmail: recipientEmail,
		Status:         status,
		ErrorMessage:   errorMessage,
	}
	if status == model.EmailStatusSent {
		now := time.Now()
		l.SentAt = &now
	}

	if err := s.r.Create(ctx, l); err != nil {
		return nil, err
	}

	// The row is already durable; a publish failure only delays the
	// dispatcher until its next sweep of pending rows.
	if s.pub != nil && status == model.EmailStatusPending {
		event := EmailAttemptEvent{
			LogID:          l.ID,
			SessionID:      sessionID,
			RecipientEmail: recipientEmail,
			Status:         status,
		}
		if err := s.pub.PublishJSON(ctx, emailAttemptRoutingKey, event); err != nil {
			s.log.Warn("publish email attempt event", zap.String("log_id", l.ID), zap.Error(err))
		}
	}

	return l, nil
}

// UpdateStatus retargets the same row across retries; sent_at is recomputed
// from the new status the same way as at creation.
func (s *emailService) UpdateStatus(ctx context.Context, logID, status, errorMessage string, retryCount int) error {
	if !model.ValidEmailStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidEmailStatus, status)
	}

	fields := map[string]interface{}{
		"status":        status,
		"error_message": errorMessage,
		"retry_count":   retryCount,
	}
	if status == model.EmailStatusSent {
		fields["sent_at"] = time.Now()
	} else {
		fields["sent_at"] = nil
	}
	return s.r.Update(ctx, logID, fields)
}

func (s *emailService) ListBySession(ctx context.Context, sessionID string) []model.EmailLog {
	logs, err := s.r.ListBySession(ctx, sessionID)
	if err != nil {
		s.log.Error("list email logs", zap.String("session_id", sessionID), zap.Error(err))
		return []model.EmailLog{}
	}
	return logs
}

func (s *emailService) ListPendingOrFailed(ctx context.Context) []model.EmailLog {
	logs, err := s.r.ListPendingOrFailed(ctx)
	if err != nil {
		s.log.Error("list pending or failed email logs", zap.Error(err))
		return []model.EmailLog{}
	}
	return logs
}
