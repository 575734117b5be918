package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/store"
)

// CleanupWorker periodically deletes expired reset codes and reset grants
// and evicts expired federated login states.
type CleanupWorker struct {
	resetCodes  store.ResetCodeRepository
	resetGrants store.ResetGrantRepository
	oauthStates store.OAuthStateStore

	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewCleanupWorker(storages *store.Storages, interval time.Duration, logger *logger.Logger) *CleanupWorker {
	return &CleanupWorker{
		resetCodes:  storages.ResetCodeRepository,
		resetGrants: storages.ResetGrantRepository,
		oauthStates: storages.OAuthStateStore,
		interval:    interval,
		now:         time.Now,
		logger:      logger,
	}
}

// Run performs a cleanup pass every interval until ctx is canceled.
func (w *CleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("cleanup worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

// cleanup runs one pass. A failure for one kind does not skip the others.
func (w *CleanupWorker) cleanup(ctx context.Context) {
	now := w.now()
	log := w.logger.GetChildLogger()

	if w.resetCodes != nil {
		removed, err := w.resetCodes.DeleteExpiredResetCodes(ctx, now)
		w.record(log, kindResetCode, removed, err)
	}

	if w.resetGrants != nil {
		removed, err := w.resetGrants.DeleteExpiredResetGrants(ctx, now)
		w.record(log, kindResetGrant, removed, err)
	}

	if w.oauthStates != nil {
		removed := w.oauthStates.Evict(ctx, now)
		w.record(log, kindOAuthState, int64(removed), nil)
	}
}

func (w *CleanupWorker) record(log *logger.Logger, kind string, removed int64, err error) {
	if err != nil {
		CleanupFailures.WithLabelValues(kind).Inc()
		log.Err(err).Str("func", "*CleanupWorker.cleanup").Str("kind", kind).Msg("cleanup failed")
		return
	}

	CleanupRemoved.WithLabelValues(kind).Add(float64(removed))
	if removed > 0 {
		log.Debug().Str("kind", kind).Int64("removed", removed).Msg("expired entries removed")
	}
}
