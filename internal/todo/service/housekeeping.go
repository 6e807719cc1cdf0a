package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/store"
)

// HousekeepingService periodically removes session tokens that are past
// their lifetime so user_tokens does not grow without bound. Expired tokens
// already fail verification; this only reclaims their rows.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	TokenTTL time.Duration

	// Now defaults to time.Now.
	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(
	st store.Store,
	logger *slog.Logger,
	interval, tokenTTL time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		TokenTTL: tokenTTL,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "token_ttl", s.TokenTTL)
}

// Stop blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	n, err := s.PruneExpiredTokens(ctx)
	if err != nil {
		s.Logger.Error("failed to delete expired session tokens", "error", err)
		return
	}
	s.Logger.Info("housekeeping cleanup completed", "tokens_deleted", n)
}

// PruneExpiredTokens deletes tokens issued more than TokenTTL ago. With no
// TTL tokens never expire and nothing is deleted.
func (s *HousekeepingService) PruneExpiredTokens(ctx context.Context) (int64, error) {
	if s.TokenTTL <= 0 {
		return 0, nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Store.Tokens().DeleteTokensBefore(ctx, now().Add(-s.TokenTTL))
}
