package storage

import (
	"context"
	"time"

	"tweet-sentiment/internal/model"
)

// StatsStore keeps the API usage counters behind /api/stats.
type StatsStore interface {
	RecordRequest(ctx context.Context, latency time.Duration) error
	RecordPosts(ctx context.Context, n int) error
	RecordClassification(ctx context.Context, label model.Label) error
	Snapshot(ctx context.Context) (model.UsageStats, error)
	Reset(ctx context.Context) error
}

func avgMillis(totalMicros, requests int64) float64 {
	if requests == 0 {
		return 0
	}
	ms := float64(totalMicros) / float64(requests) / 1000
	// two decimals, as reported by the API
	return float64(int64(ms*100+0.5)) / 100
}

func emptyByLabel() map[model.Label]int64 {
	m := make(map[model.Label]int64, 3)
	for _, l := range model.Labels() {
		m[l] = 0
	}
	return m
}
