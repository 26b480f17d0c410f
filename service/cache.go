package service

import (
	"context"
	"encoding/json"
	"log"

	"invest-agent/repository"
)

func loadCached[T any](ctx context.Context, cache repository.CacheRepository, key string) (T, bool) {
	var out T
	if cache == nil || key == "" {
		return out, false
	}
	raw, ok := cache.Get(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("Warning: discarding unreadable cache entry %s: %v", key, err)
		return out, false
	}
	return out, true
}

// storeCached is best effort: a failure is logged and the caller still gets
// its result. Results holding Inf or NaN do not encode and are not cached.
func storeCached(ctx context.Context, cache repository.CacheRepository, key string, value any) {
	if cache == nil || key == "" {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("Warning: result for %s not cached: %v", key, err)
		return
	}
	if err := cache.Set(ctx, key, string(payload)); err != nil {
		log.Printf("Warning: failed to cache result %s: %v", key, err)
	}
}

func cacheKey(kind string, request any) string {
	key, err := repository.CacheKey(kind, request)
	if err != nil {
		log.Printf("Warning: %v", err)
		return ""
	}
	return key
}
