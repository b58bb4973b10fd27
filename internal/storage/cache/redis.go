package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"shortener-service/internal/domain/alias"
	"shortener-service/internal/lib/metrics"
	"shortener-service/internal/storage"

	"github.com/redis/go-redis/v9"
)

const (
	nameKeyPrefix      = "alias:name:"
	idKeyPrefix        = "alias:id:"
	tombstoneKeyPrefix = "alias:deleted:"
)

// defaultTombstoneTTL is used when entries themselves never expire.
const defaultTombstoneTTL = time.Hour

var errTombstoned = errors.New("record was deleted")

// Storage is a Redis cache in front of another storage.
//
// Only ResolveAlias is served from the cache. AliasByName and every other method go
// straight to next, so existence checks always see the database. A delete marks the
// record id as deleted before removing it from next; fills of a marked id are
// dropped. Ids are never reused, which makes the mark safe to key by id.
type Storage struct {
	next   storage.Storage
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func New(log *slog.Logger, next storage.Storage, client *redis.Client, ttl time.Duration) *Storage {
	return &Storage{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log.With(slog.String("component", "storage/cache")),
	}
}

func (s *Storage) SaveAlias(ctx context.Context, aliasName, originalURL string) (int64, error) {
	return s.next.SaveAlias(ctx, aliasName, originalURL)
}

func (s *Storage) AliasByName(ctx context.Context, aliasName string) (alias.Record, error) {
	return s.next.AliasByName(ctx, aliasName)
}

// ResolveAlias is the read-through lookup used for redirects. Redis failures
// degrade to next.
func (s *Storage) ResolveAlias(ctx context.Context, aliasName string) (alias.Record, error) {
	const op = "storage.cache.ResolveAlias"

	rec, err := s.fromCache(ctx, aliasName)
	switch {
	case err == nil:
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return rec, nil
	case errors.Is(err, redis.Nil):
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	default:
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		s.log.Warn("cache lookup failed", slog.String("op", op), slog.String("error", err.Error()))
	}

	rec, err = s.next.AliasByName(ctx, aliasName)
	if err != nil {
		return alias.Record{}, err
	}

	s.store(ctx, rec)

	return rec, nil
}

func (s *Storage) Aliases(ctx context.Context) ([]alias.Record, error) {
	return s.next.Aliases(ctx)
}

// DeleteAlias invalidates the cached record before deleting it from next. If the
// cache cannot be invalidated the record is left in place and the error returned,
// so a stale entry never outlives a successful delete.
func (s *Storage) DeleteAlias(ctx context.Context, id int64) error {
	const op = "storage.cache.DeleteAlias"

	if err := s.invalidate(ctx, id); err != nil {
		return fmt.Errorf("%s: cache invalidation failed: %w", op, err)
	}

	return s.next.DeleteAlias(ctx, id)
}

// Close closes the wrapped storage; the Redis client is owned by the caller.
func (s *Storage) Close() error {
	return s.next.Close()
}

func (s *Storage) fromCache(ctx context.Context, aliasName string) (alias.Record, error) {
	fields, err := s.client.HGetAll(ctx, nameKeyPrefix+aliasName).Result()
	if err != nil {
		return alias.Record{}, err
	}
	if len(fields) == 0 {
		return alias.Record{}, redis.Nil
	}

	id, err := strconv.ParseInt(fields["id"], 10, 64)
	if err != nil {
		return alias.Record{}, fmt.Errorf("corrupt cache entry for %q: %w", aliasName, err)
	}

	return alias.Record{
		ID:          id,
		Alias:       aliasName,
		OriginalURL: fields["original_url"],
	}, nil
}

// store caches rec unless its id has been marked deleted. The mark is watched, so a
// delete landing between the check and the write aborts the write.
func (s *Storage) store(ctx context.Context, rec alias.Record) {
	nameKey := nameKeyPrefix + rec.Alias
	idKey := idKeyPrefix + strconv.FormatInt(rec.ID, 10)
	tombstoneKey := tombstoneKeyPrefix + strconv.FormatInt(rec.ID, 10)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		deleted, err := tx.Exists(ctx, tombstoneKey).Result()
		if err != nil {
			return err
		}
		if deleted > 0 {
			return errTombstoned
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, nameKey, map[string]interface{}{
				"id":           rec.ID,
				"original_url": rec.OriginalURL,
			})
			pipe.Set(ctx, idKey, rec.Alias, s.ttl)
			if s.ttl > 0 {
				pipe.Expire(ctx, nameKey, s.ttl)
			}
			return nil
		})

		return err
	}, tombstoneKey)

	switch {
	case err == nil:
	case errors.Is(err, errTombstoned), errors.Is(err, redis.TxFailedErr):
		s.log.Debug("cache fill skipped for deleted alias", slog.String("alias", rec.Alias))
	default:
		s.log.Warn("cache write failed", slog.String("alias", rec.Alias), slog.String("error", err.Error()))
	}
}

// invalidate marks id as deleted and drops its cached entry.
func (s *Storage) invalidate(ctx context.Context, id int64) error {
	idKey := idKeyPrefix + strconv.FormatInt(id, 10)
	tombstoneKey := tombstoneKeyPrefix + strconv.FormatInt(id, 10)

	if err := s.client.Set(ctx, tombstoneKey, 1, s.tombstoneTTL()).Err(); err != nil {
		return err
	}

	aliasName, err := s.client.Get(ctx, idKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.client.Del(ctx, nameKeyPrefix+aliasName, idKey).Err()
}

// tombstoneTTL outlives any fill that read the record before it was deleted.
func (s *Storage) tombstoneTTL() time.Duration {
	if s.ttl > 0 {
		return s.ttl
	}

	return defaultTombstoneTTL
}

var _ storage.Storage = (*Storage)(nil)
