package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"padel-club/internal/domain/schedule"
	"padel-club/internal/pkg/config"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "padel:availability"
	genPrefix = "padel:availability:gen"

	// outlives any cached entry so a refill racing an invalidation still
	// sees the bumped counter.
	generationTTL = 24 * time.Hour
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// RedisAvailabilityCache stores confirmed start times per court and date as a
// JSON array of "HH:MM" strings.
type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl}
}

var _ shared.AvailabilityCache = (*RedisAvailabilityCache)(nil)

func key(courtID int64, date schedule.Date) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, courtID, date.String())
}

func genKey(courtID int64, date schedule.Date) string {
	return fmt.Sprintf("%s:%d:%s", genPrefix, courtID, date.String())
}

func parseGeneration(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	gen, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "corrupt availability generation")
	}
	return gen, nil
}

func (c *RedisAvailabilityCache) GetConfirmedStarts(ctx context.Context, courtID int64, date schedule.Date) (shared.CachedStarts, error) {
	vals, err := c.client.MGet(ctx, key(courtID, date), genKey(courtID, date)).Result()
	if err != nil {
		return shared.CachedStarts{}, errs.Wrap(err, "failed to read availability from redis")
	}

	gen, err := parseGeneration(vals[1])
	if err != nil {
		return shared.CachedStarts{}, err
	}
	val, ok := vals[0].(string)
	if !ok {
		return shared.CachedStarts{Generation: gen}, nil
	}

	var raw []string
	if err := json.Unmarshal([]byte(val), &raw); err != nil {
		return shared.CachedStarts{}, errs.Wrap(err, "failed to decode cached availability")
	}

	starts := make([]schedule.ClockTime, 0, len(raw))
	for _, s := range raw {
		ct, err := schedule.ParseClockTime(s)
		if err != nil {
			return shared.CachedStarts{}, errs.Wrap(err, "corrupt cached start time")
		}
		starts = append(starts, ct)
	}
	return shared.CachedStarts{Starts: starts, Found: true, Generation: gen}, nil
}

// SetConfirmedStarts fills the entry only while the generation counter still
// matches the one observed by the read. A stale fill is dropped silently.
func (c *RedisAvailabilityCache) SetConfirmedStarts(ctx context.Context, courtID int64, date schedule.Date, generation int64, starts []schedule.ClockTime) error {
	raw := make([]string, len(starts))
	for i, s := range starts {
		raw[i] = s.String()
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return errs.Wrap(err, "failed to encode availability")
	}

	gk := genKey(courtID, date)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, gk).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(courtID, date), data, c.ttl)
			return nil
		})
		return err
	}, gk)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return errs.Wrap(err, "failed to write availability to redis")
	}
	return nil
}

// Invalidate bumps the generation and drops the entry in one transaction.
func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, courtID int64, date schedule.Date) error {
	gk := genKey(courtID, date)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, gk)
		pipe.Expire(ctx, gk, generationTTL)
		pipe.Del(ctx, key(courtID, date))
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to invalidate availability")
	}
	return nil
}

// NoopAvailabilityCache is wired when no Redis address is configured. Every
// read is a miss.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) GetConfirmedStarts(context.Context, int64, schedule.Date) (shared.CachedStarts, error) {
	return shared.CachedStarts{}, nil
}

func (NoopAvailabilityCache) SetConfirmedStarts(context.Context, int64, schedule.Date, int64, []schedule.ClockTime) error {
	return nil
}

func (NoopAvailabilityCache) Invalidate(context.Context, int64, schedule.Date) error {
	return nil
}
