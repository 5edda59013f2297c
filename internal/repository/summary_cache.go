package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"istudy_lab_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
)

// SummaryCache 进度汇总的 redis 缓存，Redis 为 nil 时所有操作都是空操作。
// 每个用户有一个代数计数器，汇总按代数存放；Invalidate 只递增代数，
// 写入前读取到旧代数的请求只会写到不再被读取的旧键上。
type SummaryCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SummaryCache{Redis: rdb, TTL: ttl}
}

func generationKey(userID uint) string {
	return fmt.Sprintf("progress:summary:gen:%d", userID)
}

func summaryKey(userID uint, gen int64) string {
	return fmt.Sprintf("progress:summary:%d:%d", userID, gen)
}

// Generation 当前代数，未写入过时为 0。必须在读取存储之前调用。
func (c *SummaryCache) Generation(ctx context.Context, userID uint) (int64, error) {
	if c == nil || c.Redis == nil {
		return 0, nil
	}

	gen, err := c.Redis.Get(ctx, generationKey(userID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

// Get 命中时返回 (summary, true, nil)
func (c *SummaryCache) Get(ctx context.Context, userID uint, gen int64) (*model.ProgressSummary, bool, error) {
	if c == nil || c.Redis == nil {
		return nil, false, nil
	}

	raw, err := c.Redis.Get(ctx, summaryKey(userID, gen)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var summary model.ProgressSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, err
	}
	return &summary, true, nil
}

func (c *SummaryCache) Set(ctx context.Context, userID uint, gen int64, summary *model.ProgressSummary) error {
	if c == nil || c.Redis == nil {
		return nil
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, summaryKey(userID, gen), raw, c.TTL).Err()
}

// Invalidate 递增代数并删除上一代的缓存
func (c *SummaryCache) Invalidate(ctx context.Context, userID uint) error {
	if c == nil || c.Redis == nil {
		return nil
	}

	gen, err := c.Redis.Incr(ctx, generationKey(userID)).Result()
	if err != nil {
		return err
	}
	return c.Redis.Del(ctx, summaryKey(userID, gen-1)).Err()
}
