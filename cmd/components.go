package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"tweet-sentiment/internal/config"
	"tweet-sentiment/internal/mockdata"
	"tweet-sentiment/internal/random"
	"tweet-sentiment/internal/redisclient"
	"tweet-sentiment/internal/sentiment"
	"tweet-sentiment/internal/storage"
)

func parseDuration(name, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return d, nil
}

// randomSource returns the process-wide source, or a reproducible one when seed is non-zero.
func randomSource(seed uint64) random.Source {
	if seed != 0 {
		return random.NewSeeded(seed)
	}
	return random.New()
}

func newClassifier(cfg config.Config, src random.Source) (sentiment.TextClassifier, error) {
	c, err := sentiment.New(cfg.Classifier, cfg.OpenAI, src)
	if err != nil {
		return nil, err
	}
	slog.Info("classifier: ready", "model", c.Name())
	return c, nil
}

func newGenerator(cfg config.Config, src random.Source) *mockdata.Generator {
	return mockdata.NewGenerator(
		mockdata.WithSource(src),
		mockdata.WithMaxPosts(cfg.Generator.MaxPosts),
	)
}

// newStatsStore returns the Redis-backed store when enabled, else an in-memory one.
// The returned func releases the Redis connection.
func newStatsStore(cfg config.Config) (storage.StatsStore, func()) {
	if !cfg.Redis.Enabled {
		return storage.NewMemoryStore(), func() {}
	}
	rdb := redisclient.New(cfg.Redis)
	slog.Info("stats: using redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	return storage.NewRedisStore(rdb), func() { _ = rdb.Close() }
}
