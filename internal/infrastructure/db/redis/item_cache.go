package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/drakeshop/inventory-api/internal/core/domain"
	"github.com/drakeshop/inventory-api/internal/core/ports"
)

const (
	defaultCacheTTL = 5 * time.Minute
	allItemsKey     = "items:all"
)

// CachedItemStore is a read-through cache in front of another ItemStore.
// Reads are served from Redis when possible; every write goes to the wrapped
// store and then drops the affected keys. Redis errors never fail a request.
type CachedItemStore struct {
	next   ports.ItemStore
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewCachedItemStore(next ports.ItemStore, client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CachedItemStore {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedItemStore{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedItemStore) FindAll(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if c.get(ctx, allItemsKey, &items) {
		return items, nil
	}

	items, err := c.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, allItemsKey, items)
	return items, nil
}

func (c *CachedItemStore) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	var it domain.Item
	if c.get(ctx, itemKey(id), &it) {
		return &it, nil
	}

	found, err := c.next.FindByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}
	c.set(ctx, itemKey(id), found)
	return found, nil
}

// FindForUpdate always reads the wrapped store. A cached row may have been
// filled by a reader that raced a write, so it is never used to gate one.
func (c *CachedItemStore) FindForUpdate(ctx context.Context, id int64) (*domain.Item, error) {
	return c.next.FindForUpdate(ctx, id)
}

func (c *CachedItemStore) Insert(ctx context.Context, p domain.ItemPayload) (int64, error) {
	id, err := c.next.Insert(ctx, p)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, allItemsKey)
	return id, nil
}

func (c *CachedItemStore) Update(ctx context.Context, id int64, p domain.ItemPayload) (int64, error) {
	n, err := c.next.Update(ctx, id, p)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, itemKey(id), allItemsKey)
	return n, nil
}

func (c *CachedItemStore) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := c.next.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, itemKey(id), allItemsKey)
	return n, nil
}

func (c *CachedItemStore) AdjustAmount(ctx context.Context, id int64, delta int64) error {
	if err := c.next.AdjustAmount(ctx, id, delta); err != nil {
		return err
	}
	c.invalidate(ctx, itemKey(id), allItemsKey)
	return nil
}

// get reports whether key was found and decoded into dst.
func (c *CachedItemStore) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache entry corrupt")
		return false
	}
	return true
}

func (c *CachedItemStore) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *CachedItemStore) invalidate(ctx context.Context, keys ...string) {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}

func itemKey(id int64) string {
	return fmt.Sprintf("items:%d", id)
}

// Purge drops every cached item entry. Used after the backing store is reset
// outside the decorator.
func (c *CachedItemStore) Purge(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "items:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}
