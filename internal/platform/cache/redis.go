package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/cricket-league/internal/platform/logging"
	"github.com/riskibarqy/cricket-league/internal/platform/resilience"
)

const scanBatch = 200

// RedisClient is the subset of go-redis commands the cache uses. *redis.Client satisfies it.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore shares computed values between replicas. Values are sonic-encoded.
// Redis failures degrade to calling load directly; the breaker stops hammering a dead server.
type RedisStore[T any] struct {
	client  RedisClient
	ttl     time.Duration
	breaker *resilience.CircuitBreaker
	flight  resilience.Flight[T]
	logger  *logging.Logger
}

func NewRedisStore[T any](client RedisClient, ttl time.Duration, breaker *resilience.CircuitBreaker, logger *logging.Logger) *RedisStore[T] {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisStore[T]{
		client:  client,
		ttl:     ttl,
		breaker: breaker,
		logger:  logger,
	}
}

func (s *RedisStore[T]) Get(ctx context.Context, key string) (T, bool) {
	if key == "" {
		var zero T
		return zero, false
	}
	return s.read(ctx, key)
}

func (s *RedisStore[T]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (T, error)) (T, error) {
	if key == "" {
		return load(ctx)
	}
	if value, ok := s.read(ctx, key); ok {
		return value, nil
	}

	value, _, err := s.flight.Do(key, func() (T, error) {
		loaded, err := load(ctx)
		if err != nil {
			return loaded, err
		}
		s.write(ctx, key, loaded)
		return loaded, nil
	})
	return value, err
}

func (s *RedisStore[T]) Invalidate(ctx context.Context, prefix string) error {
	if prefix == "" {
		return nil
	}

	return s.breaker.Execute(func() error {
		var cursor uint64
		for {
			keys, next, err := s.client.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
			if err != nil {
				return crerr.Wrapf(err, "scan cache prefix %s", prefix)
			}
			if len(keys) > 0 {
				if err := s.client.Del(ctx, keys...).Err(); err != nil {
					return crerr.Wrapf(err, "delete %d cache keys", len(keys))
				}
			}
			if next == 0 {
				return nil
			}
			cursor = next
		}
	})
}

func (s *RedisStore[T]) read(ctx context.Context, key string) (T, bool) {
	var (
		value T
		data  []byte
	)
	err := s.breaker.Execute(func() error {
		raw, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		data = raw
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "cache read failed, computing directly", "key", key, "error", err)
		return value, false
	}
	if data == nil {
		return value, false
	}
	if err := sonic.Unmarshal(data, &value); err != nil {
		s.logger.WarnContext(ctx, "cache entry undecodable, recomputing", "key", key, "error", err)
		return value, false
	}
	return value, true
}

func (s *RedisStore[T]) write(ctx context.Context, key string, value T) {
	data, err := sonic.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	err = s.breaker.Execute(func() error {
		return s.client.Set(ctx, key, data, s.ttl).Err()
	})
	if err != nil {
		s.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
