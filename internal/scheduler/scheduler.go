package scheduler

import (
	"context"
	"time"

	"github.com/GlebShishkov/explore-with-me/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type staleDecliner interface {
	DeclineStale(ctx context.Context) ([]*domain.Participation, error)
}

// Scheduler periodically rejects pending requests for events that already
// started.
type Scheduler struct {
	requestService staleDecliner
	interval       time.Duration
	logger         logger.Logger
}

func New(
	requestService staleDecliner,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		requestService: requestService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	declined, err := s.requestService.DeclineStale(ctx)
	if err != nil {
		s.logger.Error("failed to decline stale requests",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, p := range declined {
		s.logger.Info("stale request declined",
			logger.String("request_id", p.ID),
			logger.String("requester_id", p.RequesterID),
			logger.String("event_id", p.EventID),
		)
	}
}
