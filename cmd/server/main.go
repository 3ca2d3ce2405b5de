package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/bootstrap"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/config"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/infra/db"
	mq "github.com/VJVAIRAVAN/smart-meet-cliq/internal/infra/queue"
	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/router"
)

func main() {
	inj := bootstrap.BuildContainer()

	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync()

	cfg := do.MustInvoke[*config.Config](inj)
	d := do.MustInvoke[*gorm.DB](inj)
	pub := do.MustInvoke[*mq.Publisher](inj)

	r := router.New(inj)
	srv := &http.Server{
		Addr:    cfg.App.Addr,
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.App.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}

	if pub != nil {
		if err := pub.Close(); err != nil {
			log.Warn("publisher close failed", zap.Error(err))
		}
	}
	if err := db.Close(d); err != nil {
		log.Error("db close failed", zap.Error(err))
	}
}
