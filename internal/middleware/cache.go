package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canakboyraz/StokTakipUygulamasi/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	DefaultTTL      time.Duration
	CacheableStatus []int
	PathPrefix      string
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      1 * time.Minute,
		CacheableStatus: []int{200},
		PathPrefix:      "/api",
	}
}

// Cache implements GET response caching with Redis for the JSON API
// paths under PathPrefix. Other routes (metrics scrapes, swagger
// assets) bypass the cache entirely. Any successful non-GET request
// under the prefix flushes the cache, so reads after a write see fresh
// data at the cost of a full invalidation.
func Cache(redisClient *redis.Client, config CacheConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if redisClient == nil || !strings.HasPrefix(r.URL.Path, config.PathPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			if r.Method != http.MethodGet {
				rec := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
				next.ServeHTTP(rec, r)
				if rec.statusCode < 400 {
					if err := InvalidateCache(redisClient, "cache:*"); err != nil {
						logger.Warn(ctx).Err(err).Msg("Failed to invalidate cache")
					}
				}
				return
			}

			cacheKey := generateCacheKey(r)

			cachedResponse, err := redisClient.Get(ctx, cacheKey).Bytes()
			if err == nil && len(cachedResponse) > 0 {
				logger.Debug(ctx).
					Str("path", r.URL.Path).
					Str("cache_key", cacheKey).
					Msg("Cache hit")

				w.Header().Set("X-Cache", "HIT")
				w.Header().Set("Content-Type", "application/json")
				w.Write(cachedResponse)
				return
			}

			rec := &cachingResponseWriter{
				loggingResponseWriter: loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK},
			}
			rec.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rec, r)

			if isStatusCacheable(rec.statusCode, config.CacheableStatus) {
				if err := redisClient.Set(ctx, cacheKey, rec.body.Bytes(), config.DefaultTTL).Err(); err != nil {
					logger.Warn(ctx).
						Err(err).
						Str("cache_key", cacheKey).
						Msg("Failed to cache response")
				}
			}
		})
	}
}

// cachingResponseWriter captures the body for caching while writing through
type cachingResponseWriter struct {
	loggingResponseWriter
	body bytes.Buffer
}

func (crw *cachingResponseWriter) Write(p []byte) (int, error) {
	crw.body.Write(p)
	return crw.ResponseWriter.Write(p)
}

// generateCacheKey generates a unique cache key for the request
func generateCacheKey(r *http.Request) string {
	keyComponents := fmt.Sprintf("%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

func isStatusCacheable(status int, cacheableStatus []int) bool {
	for _, s := range cacheableStatus {
		if s == status {
			return true
		}
	}
	return false
}

// InvalidateCache invalidates cache entries matching a key pattern
func InvalidateCache(redisClient *redis.Client, pattern string) error {
	ctx := context.Background()

	iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			return err
		}

		logger.Logger.Debug().
			Int("count", len(keys)).
			Str("pattern", pattern).
			Msg("Cache invalidated")
	}

	return nil
}
