package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for cached session token hashes. The
// persisted hash on the account document remains authoritative after expiry.
const AuthCacheTTL = time.Hour

// Pagination bounds for list endpoints.
const (
	DefaultPageSize int64 = 20
	MaxPageSize     int64 = 100
)
