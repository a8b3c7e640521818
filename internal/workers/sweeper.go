package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/verification"
)

// sweeper periodically drops verification records whose window has
// elapsed. Such records already read as unverified, dropping them only
// frees memory and records the transition in the log.
type sweeper struct {
	sessionStore store.SessionStore
	interval     time.Duration
	now          func() time.Time

	logger *logger.Logger
}

func NewSweeper(sessionStore store.SessionStore, cfg config.Workers, logger *logger.Logger) Worker {
	return &sweeper{
		sessionStore: sessionStore,
		interval:     cfg.SweepInterval,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *sweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("verification sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("verification sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) int {
	swept := s.sessionStore.SweepExpired(ctx, verification.NowMillis(s.now()))
	if swept > 0 {
		s.logger.Info().Int("swept", swept).Msg("expired verification records dropped")
	}
	return swept
}
