package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tweet-sentiment/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps usage counters in Redis so they survive restarts and are
// shared between API replicas.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "sentiment:stats"}
}

func (s *RedisStore) counterKey(name string) string {
	return fmt.Sprintf("%s:%s", s.prefix, name)
}

func (s *RedisStore) labelsKey() string {
	return s.prefix + ":labels"
}

func (s *RedisStore) RecordRequest(ctx context.Context, latency time.Duration) error {
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, s.counterKey("requests"))
		p.IncrBy(ctx, s.counterKey("latency_us"), latency.Microseconds())
		return nil
	})
	return err
}

func (s *RedisStore) RecordPosts(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	return s.rdb.IncrBy(ctx, s.counterKey("posts"), int64(n)).Err()
}

func (s *RedisStore) RecordClassification(ctx context.Context, label model.Label) error {
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, s.counterKey("analyzed"))
		p.HIncrBy(ctx, s.labelsKey(), string(label), 1)
		return nil
	})
	return err
}

func (s *RedisStore) Snapshot(ctx context.Context) (model.UsageStats, error) {
	names := []string{"requests", "latency_us", "posts", "analyzed"}
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = s.counterKey(n)
	}
	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return model.UsageStats{}, err
	}
	counts := make([]int64, len(vals))
	for i, v := range vals {
		if counts[i], err = toInt64(v); err != nil {
			return model.UsageStats{}, fmt.Errorf("stats %s: %w", names[i], err)
		}
	}

	byLabel := emptyByLabel()
	raw, err := s.rdb.HGetAll(ctx, s.labelsKey()).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return model.UsageStats{}, err
	}
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return model.UsageStats{}, fmt.Errorf("stats label %s: %w", k, err)
		}
		byLabel[model.Label(k)] = n
	}

	return model.UsageStats{
		TotalRequests:     counts[0],
		PostsGenerated:    counts[2],
		TextsAnalyzed:     counts[3],
		ByLabel:           byLabel,
		AvgResponseTimeMS: avgMillis(counts[1], counts[0]),
	}, nil
}

func (s *RedisStore) Reset(ctx context.Context) error {
	return s.rdb.Del(ctx,
		s.counterKey("requests"),
		s.counterKey("latency_us"),
		s.counterKey("posts"),
		s.counterKey("analyzed"),
		s.labelsKey(),
	).Err()
}

// toInt64 converts an MGET reply value; missing keys read as zero.
func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseInt(x, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected reply type %T", v)
	}
}
