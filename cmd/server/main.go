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

	"github.com/brickfolio/property-portal/internal/bootstrap"
	"github.com/brickfolio/property-portal/internal/config"
	"github.com/brickfolio/property-portal/internal/modules/handler"
	"github.com/brickfolio/property-portal/internal/modules/repo"
	"github.com/brickfolio/property-portal/internal/pkg/security"
	"github.com/brickfolio/property-portal/internal/router"
	"github.com/brickfolio/property-portal/internal/telemetry"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync()

	if _, err := telemetry.SetupTracing(cfg); err != nil {
		log.Warn("tracing setup failed, continuing without it", zap.Error(err))
	}

	r := router.NewRouter(router.RouterDeps{
		Config:                cfg,
		Log:                   log,
		Codec:                 do.MustInvoke[*security.TokenCodec](inj),
		Users:                 do.MustInvoke[repo.UserRepo](inj),
		AuthHandler:           do.MustInvoke[*handler.AuthHandler](inj),
		PropertyHandler:       do.MustInvoke[*handler.PropertyHandler](inj),
		PortfolioHandler:      do.MustInvoke[*handler.PortfolioHandler](inj),
		ServiceProjectHandler: do.MustInvoke[*handler.ServiceProjectHandler](inj),
		InquiryHandler:        do.MustInvoke[*handler.InquiryHandler](inj),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := telemetry.Shutdown(ctx); err != nil {
		log.Error("tracing shutdown failed", zap.Error(err))
	}

	_ = inj.Shutdown()
}
