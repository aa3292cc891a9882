package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"

	"school-transport-backend/models"
	"school-transport-backend/pkg/metrics"
	"school-transport-backend/pkg/querycache"
)

// MonthLoader loads the jobs of a month through the query cache.
type MonthLoader interface {
	LoadMonth(ctx context.Context, year int, month time.Month) ([]models.Job, error)
}

// CacheWarmer refreshes the calendar entries of the current and next month
// so the first dashboard load of the day does not wait on the database.
type CacheWarmer struct {
	loader   MonthLoader
	cache    *querycache.Cache
	metrics  *metrics.Metrics
	log      *slog.Logger
	now      func() time.Time
	location *time.Location
}

func NewCacheWarmer(loader MonthLoader, cache *querycache.Cache, m *metrics.Metrics, log *slog.Logger, loc *time.Location) *CacheWarmer {
	if loc == nil {
		loc = time.UTC
	}
	return &CacheWarmer{loader: loader, cache: cache, metrics: m, log: log, now: time.Now, location: loc}
}

// Warm drops and reloads the warmed months. It stops at the first failure.
func (w *CacheWarmer) Warm(ctx context.Context) error {
	first := now.With(w.now().In(w.location)).BeginningOfMonth()

	w.cache.Invalidate(querycache.RoutesKey)
	for _, month := range []time.Time{first, first.AddDate(0, 1, 0)} {
		w.cache.Invalidate(querycache.CalendarKey(month.Year(), int(month.Month())))
		jobs, err := w.loader.LoadMonth(ctx, month.Year(), month.Month())
		if err != nil {
			w.metrics.CacheWarmups.WithLabelValues("error").Inc()
			return fmt.Errorf("failed to warm calendar %s: %w", month.Format("2006-01"), err)
		}
		w.log.Debug("calendar cache warmed", "month", month.Format("2006-01"), "jobs", len(jobs))
	}
	w.metrics.CacheWarmups.WithLabelValues("ok").Inc()
	return nil
}

// StartCacheWarmer runs Warm on spec, a standard five-field cron expression
// evaluated in the warmer's location. Overlapping runs are skipped.
func StartCacheWarmer(spec string, w *CacheWarmer) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(w.location),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := w.Warm(ctx); err != nil {
			w.log.Error("cache warm-up failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cache warm-up schedule %q: %w", spec, err)
	}

	w.log.Info("cache warm-up scheduled", "schedule", spec, "location", w.location.String())
	c.Start()
	return c, nil
}
