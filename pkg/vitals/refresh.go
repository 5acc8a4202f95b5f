package vitals

import (
	"context"
	"time"

	"go.uber.org/zap"
	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
)

// Refresher pre-warms the latest-vitals cache entry in the background. Its
// only effect is cache population: the foreground render never waits on it
// and its failures are swallowed after logging.
type Refresher struct {
	vitals     *Vitals
	interval   time.Duration
	staleAfter time.Duration
}

func NewRefresher(v *Vitals, interval, staleAfter time.Duration) *Refresher {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &Refresher{vitals: v, interval: interval, staleAfter: staleAfter}
}

// Start runs the timer loop until ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.refreshOnce()
			}
		}
	}()
}

func (r *Refresher) refreshOnce() {
	logger := common.GetLoggerWith(
		common.LoggerNameVitalsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCache),
	)

	params := r.vitals.latestParams()
	age, ok := r.vitals.Query.EntryAge(TemplateLatestVitals, params)
	if ok && age < r.staleAfter {
		return
	}

	if _, err := r.vitals.Query.ExecuteFresh(TemplateLatestVitals, params); err != nil {
		// Best effort only; the next render retries through the cache.
		logger.Warn("Background cache refresh failed", zap.Error(err))
		return
	}

	logger.Debug("Cache pre-warmed", zap.Duration("previous_age", age))
}
