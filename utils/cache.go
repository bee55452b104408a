package utils

import (
	"context"
	"log"
	"time"

	"inkwell/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient backs general-purpose caching.
	CacheClient *redis.Client
	// AuthCacheClient holds session token hashes, on its own DB so flushing
	// the general cache never logs everyone out.
	AuthCacheClient *redis.Client
)

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("failed to connect to Redis (%s, db %d): %v", label, db, err)
	}
	return client
}

// InitCache connects the general cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
}

// GetCacheClient returns the general cache client, connecting lazily.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache connects the session cache client.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "auth cache")
}

// GetAuthCacheClient returns the session cache client, connecting lazily.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
