package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/app"
	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/config"
	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/logger"
	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/seed"
	"github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/storage/memory"
	transporthttp "github.com/gavinkirchner/skills-getting-started-with-github-copilot/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("load config", zap.Error(err))
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	activities, err := loadSeed(cfg.Seed.Path)
	if err != nil {
		log.Fatal("load seed", zap.Error(err))
	}
	log.Info("registry seeded", zap.Int("activities", len(activities)))

	repo := memory.NewActivityRepository(activities)
	svc := app.NewRegistryService(repo)

	handler := transporthttp.NewRouter(svc, transporthttp.RouterConfig{
		Logger:      log,
		CORSOrigins: cfg.Server.CORSOrigins,
		StaticDir:   cfg.Server.StaticDir,
	})

	server := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: handler,
	}

	log.Info("api listening", zap.String("addr", server.Addr))

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
		}
	case <-stopCtx.Done():
		log.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}

func loadSeed(path string) ([]domain.Activity, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.Load(path)
}
