package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"content-catalog/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	contentKeyPrefix = "content:id:"
	searchKeyPrefix  = "content:search:"
)

// ContentCache holds serialized fetch-by-id and search results. A miss is
// reported as found=false with a nil error.
type ContentCache struct {
	client     *redis.Client
	contentTTL time.Duration
	searchTTL  time.Duration
}

func NewContentCache(client *redis.Client, contentTTL, searchTTL time.Duration) *ContentCache {
	return &ContentCache{
		client:     client,
		contentTTL: contentTTL,
		searchTTL:  searchTTL,
	}
}

// NewClient parses a redis:// URL such as redis://localhost:6379/0.
func NewClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func contentKey(id uuid.UUID) string {
	return contentKeyPrefix + id.String()
}

func searchKey(filter string) string {
	return searchKeyPrefix + filter
}

func (c *ContentCache) GetContent(ctx context.Context, id uuid.UUID) (*models.Content, bool, error) {
	var content models.Content
	found, err := c.get(ctx, contentKey(id), &content)
	if err != nil || !found {
		return nil, false, err
	}
	return &content, true, nil
}

func (c *ContentCache) SetContent(ctx context.Context, content *models.Content) error {
	return c.set(ctx, contentKey(content.ID), content, c.contentTTL)
}

func (c *ContentCache) GetSearch(ctx context.Context, filter string) ([]models.Content, bool, error) {
	var contents []models.Content
	found, err := c.get(ctx, searchKey(filter), &contents)
	if err != nil || !found {
		return nil, false, err
	}
	if contents == nil {
		contents = []models.Content{}
	}
	return contents, true, nil
}

func (c *ContentCache) SetSearch(ctx context.Context, filter string, contents []models.Content) error {
	return c.set(ctx, searchKey(filter), contents, c.searchTTL)
}

// Invalidate drops the cached item and every cached search, since any write
// can change which searches an item belongs to.
func (c *ContentCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, contentKey(id)).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", contentKey(id), err)
	}
	return c.ClearSearches(ctx)
}

func (c *ContentCache) ClearSearches(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, searchKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

func (c *ContentCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *ContentCache) get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("cache unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (c *ContentCache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
