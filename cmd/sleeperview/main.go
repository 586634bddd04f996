package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/sleeperview/sleeperview/internal/api/sleeper"
	"github.com/sleeperview/sleeperview/internal/config"
	"github.com/sleeperview/sleeperview/internal/repository/memory"
	"github.com/sleeperview/sleeperview/internal/scheduler"
	"github.com/sleeperview/sleeperview/internal/service"
	transport "github.com/sleeperview/sleeperview/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	client := sleeper.NewClient(cfg.Sleeper)
	api := sleeper.NewAPI(client)

	repo := memory.NewRepository()
	fantasyService := service.NewFantasyService(api, repo, clockwork.NewRealClock())

	if cfg.Sleeper.PlayerRefresh > 0 {
		sched, err := scheduler.NewScheduler(fantasyService, cfg.Sleeper.PlayerRefresh)
		if err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Error("Error stopping scheduler", "error", err)
			}
		}()
	}

	handlers := transport.NewHandlers(fantasyService)
	router := transport.NewRouter(handlers)

	srv := &http.Server{
		Handler:      router,
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
