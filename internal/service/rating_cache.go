package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const ratingCacheTTL = 5 * time.Minute

type ratingCacheEntry struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

func ratingCacheKey(videoID int64) string {
	return fmt.Sprintf("video:rating:%d", videoID)
}

// getCachedRating 读取评分聚合缓存。缓存未命中、未配置或出错都
// 返回 false，调用方降级到数据库聚合。
func getCachedRating(ctx context.Context, cache *redis.Client, videoID int64) (float64, int64, bool) {
	if cache == nil {
		return 0, 0, false
	}

	raw, err := cache.Get(ctx, ratingCacheKey(videoID)).Result()
	if err != nil {
		return 0, 0, false
	}

	var entry ratingCacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return 0, 0, false
	}
	return entry.Average, entry.Count, true
}

// setCachedRating 写入评分聚合缓存，失败静默忽略
func setCachedRating(ctx context.Context, cache *redis.Client, videoID int64, avg float64, count int64) {
	if cache == nil {
		return
	}

	raw, err := json.Marshal(ratingCacheEntry{Average: avg, Count: count})
	if err != nil {
		return
	}
	_ = cache.Set(ctx, ratingCacheKey(videoID), raw, ratingCacheTTL).Err()
}

// invalidateRatingCache 新评价落库后使缓存失效
func invalidateRatingCache(ctx context.Context, cache *redis.Client, videoID int64) {
	if cache == nil {
		return
	}
	_ = cache.Del(ctx, ratingCacheKey(videoID)).Err()
}
