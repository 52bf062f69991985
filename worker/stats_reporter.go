package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tweet-sentiment/internal/storage"

	"github.com/robfig/cron/v3"
)

// StatsReporter logs a usage snapshot on a cron schedule.
type StatsReporter struct {
	Store    storage.StatsStore
	Schedule string // cron spec or descriptor, e.g. "@every 5m"
	Timeout  time.Duration
}

func (w *StatsReporter) Start(ctx context.Context) error {
	if w.Schedule == "" {
		w.Schedule = "@every 5m"
	}
	if w.Timeout <= 0 {
		w.Timeout = 5 * time.Second
	}
	c := cron.New()
	if _, err := c.AddFunc(w.Schedule, func() { w.runOnce(ctx) }); err != nil {
		return fmt.Errorf("stats-reporter: invalid schedule %q: %w", w.Schedule, err)
	}
	c.Start()
	slog.Info("stats-reporter: scheduled", "schedule", w.Schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (w *StatsReporter) runOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.Timeout)
	defer cancel()
	st, err := w.Store.Snapshot(ctx)
	if err != nil {
		slog.Error("stats-reporter: snapshot failed", "error", err)
		return
	}
	slog.Info("stats-reporter: usage",
		"requests", st.TotalRequests,
		"posts_generated", st.PostsGenerated,
		"texts_analyzed", st.TextsAnalyzed,
		"by_label", st.ByLabel,
		"avg_response_ms", st.AvgResponseTimeMS,
	)
}
