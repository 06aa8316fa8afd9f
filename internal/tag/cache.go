package tag

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"terminal-terrace/medium/packages/database"

	"github.com/redis/go-redis/v9"
)

const (
	tagsCacheKey = "tags:all"
	tagsCacheTTL = 5 * time.Minute
)

// TagCache 标签列表缓存，client 为 nil 时所有操作都是空操作
type TagCache struct {
	client *database.RedisClient
}

func NewTagCache(client *database.RedisClient) *TagCache {
	return &TagCache{client: client}
}

func (c *TagCache) enabled() bool {
	return c != nil && c.client != nil
}

// Get 未命中时 ok 为 false
func (c *TagCache) Get(ctx context.Context) ([]string, bool, error) {
	if !c.enabled() {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, tagsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, false, err
	}
	return names, true, nil
}

func (c *TagCache) Set(ctx context.Context, names []string) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, tagsCacheKey, data, tagsCacheTTL).Err()
}

func (c *TagCache) Invalidate(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	return c.client.Del(ctx, tagsCacheKey).Err()
}
