package bootstrap

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/config"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/infra/cache"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/infra/db"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/infra/logger"
	mq "github.com/VJVAIRAVAN/smart-meet-cliq/internal/infra/queue"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/handler"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/model"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/repo"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if err := d.AutoMigrate(
			&model.Session{},
			&model.Participant{},
			&model.EmailLog{},
			&model.ChatLog{},
			&model.OAuthToken{},
			&model.Setting{},
		); err != nil {
			return nil, err
		}
		return d, nil
	})

	// Redis (nil when disabled)
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// RabbitMQ Publisher (nil when disabled)
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return mq.NewPublisher(cfg, log)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.SessionRepo, error) {
		return repo.NewSessionRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ParticipantRepo, error) {
		return repo.NewParticipantRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.EmailLogRepo, error) {
		return repo.NewEmailLogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ChatLogRepo, error) {
		return repo.NewChatLogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.OAuthTokenRepo, error) {
		return repo.NewOAuthTokenRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SettingRepo, error) {
		return repo.NewSettingRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.SessionService, error) {
		return service.NewSessionService(
			do.MustInvoke[repo.SessionRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ParticipantService, error) {
		return service.NewParticipantService(
			do.MustInvoke[repo.ParticipantRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.EmailService, error) {
		return service.NewEmailService(
			do.MustInvoke[repo.EmailLogRepo](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ChatService, error) {
		return service.NewChatService(
			do.MustInvoke[repo.ChatLogRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.OAuthService, error) {
		return service.NewOAuthService(
			do.MustInvoke[repo.OAuthTokenRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SettingService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewSettingService(
			do.MustInvoke[repo.SettingRepo](i),
			do.MustInvoke[*redis.Client](i),
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.SessionHandler, error) {
		return handler.NewSessionHandler(
			do.MustInvoke[service.SessionService](i),
			do.MustInvoke[service.ParticipantService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.EmailHandler, error) {
		return handler.NewEmailHandler(do.MustInvoke[service.EmailService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ChatHandler, error) {
		return handler.NewChatHandler(do.MustInvoke[service.ChatService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.OAuthHandler, error) {
		return handler.NewOAuthHandler(do.MustInvoke[service.OAuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SettingHandler, error) {
		return handler.NewSettingHandler(do.MustInvoke[service.SettingService](i)), nil
	})

	return inj
}
