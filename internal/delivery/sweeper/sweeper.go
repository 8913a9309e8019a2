// Package sweeper runs the periodic story expiry sweep as a background
// delivery alongside the HTTP server.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"pulse/config"
	"pulse/internal/delivery"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the story sweeper.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	StoryUC usecase.StoryUsecase
}

type storySweeper struct {
	interval time.Duration
	logger   *slog.Logger
	storyUC  usecase.StoryUsecase
	stop     chan struct{}
	done     chan struct{}
}

// NewSweeper builds the ticker-driven sweeper. Each tick flips every story
// past its expiry to Inactive; visibility does not depend on the sweep, so
// a missed tick only delays the storage reconciliation, never correctness.
func NewSweeper(params Params) (delivery.Delivery, error) {
	sweeper := &storySweeper{
		interval: params.Config.SweepInterval(),
		logger:   params.Logger,
		storyUC:  params.StoryUC,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: sweeper.shutdown,
	})

	return sweeper, nil
}

// Serve runs the sweep loop until shutdown. One sweep runs immediately so a
// backlog left by downtime is cleared without waiting a full interval.
func (s *storySweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting story sweeper", slog.Duration("interval", s.interval))
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		}
	}
}

func (s *storySweeper) sweep(ctx context.Context) {
	output, err := s.storyUC.SweepExpiredStories(ctx)
	if err != nil {
		// The next tick retries; a failed sweep is not fatal.
		s.logger.Error("Story sweep failed", "error", err)

		return
	}

	if output.Deactivated > 0 {
		s.logger.Info("Story sweep completed", slog.Int64("deactivated", output.Deactivated))
	}
}

func (s *storySweeper) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down story sweeper")
	close(s.stop)

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
