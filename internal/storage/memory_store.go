package storage

import (
	"context"
	"sync"
	"time"

	"tweet-sentiment/internal/model"
)

// MemoryStore keeps counters in process memory. Used when Redis is disabled.
type MemoryStore struct {
	mu            sync.Mutex
	requests      int64
	latencyMicros int64
	posts         int64
	analyzed      int64
	byLabel       map[model.Label]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byLabel: emptyByLabel()}
}

func (s *MemoryStore) RecordRequest(_ context.Context, latency time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++
	s.latencyMicros += latency.Microseconds()
	return nil
}

func (s *MemoryStore) RecordPosts(_ context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts += int64(n)
	return nil
}

func (s *MemoryStore) RecordClassification(_ context.Context, label model.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzed++
	s.byLabel[label]++
	return nil
}

func (s *MemoryStore) Snapshot(_ context.Context) (model.UsageStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byLabel := make(map[model.Label]int64, len(s.byLabel))
	for k, v := range s.byLabel {
		byLabel[k] = v
	}
	return model.UsageStats{
		TotalRequests:     s.requests,
		PostsGenerated:    s.posts,
		TextsAnalyzed:     s.analyzed,
		ByLabel:           byLabel,
		AvgResponseTimeMS: avgMillis(s.latencyMicros, s.requests),
	}, nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests, s.latencyMicros, s.posts, s.analyzed = 0, 0, 0, 0
	s.byLabel = emptyByLabel()
	return nil
}
