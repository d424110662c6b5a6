// File: labura/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"labura/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces cached token hashes.
const AuthCachePrefix = "auth:"

var (
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// ViewCacheClient is the dedicated client for per-session view state.
	ViewCacheClient *redis.Client
)

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitViewCache initializes the Redis client for view-state storage.
func InitViewCache() {
	ViewCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisViewDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ViewCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (View Cache): %v", err)
	}
}

// GetViewCacheClient returns the Redis client for view-state storage.
func GetViewCacheClient() *redis.Client {
	if ViewCacheClient == nil {
		InitViewCache()
	}
	return ViewCacheClient
}
