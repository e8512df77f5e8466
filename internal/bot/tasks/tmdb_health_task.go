package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/edgard/tmdbot/internal/metrics"
)

const healthProbeTimeout = 10 * time.Second

// newTMDBHealthTask probes TMDB and records the outcome in the tmdb_up gauge.
func newTMDBHealthTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "tmdb_health")

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
		defer cancel()

		start := time.Now()
		if err := deps.TMDB.Ping(ctx); err != nil {
			metrics.TMDBUp.Set(0)
			return fmt.Errorf("tmdb health probe failed: %w", err)
		}

		metrics.TMDBUp.Set(1)
		log.DebugContext(ctx, "TMDB reachable", "latency", time.Since(start))
		return nil
	}
}
