package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/sleeperview/sleeperview/internal/service"
)

// Scheduler periodically re-downloads the player directory so lineup
// requests can serve the in-memory snapshot instead of pulling several MB
// from Sleeper on every request.
type Scheduler struct {
	s              gocron.Scheduler
	fantasyService *service.FantasyService
	interval       time.Duration
}

func NewScheduler(fantasyService *service.FantasyService, interval time.Duration) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		fantasyService: fantasyService,
		interval:       interval,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.refreshPlayers),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create player refresh job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refreshPlayers() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.fantasyService.RefreshPlayers(ctx); err != nil {
		slog.Error("Failed to refresh player directory", "error", err)
		return
	}
	slog.Info("Player directory refreshed")
}
