// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session keys.
const AuthCachePrefix = "auth:"

// DefaultSessionTTL applies when SESSION_TTL is not configured.
const DefaultSessionTTL = 12 * time.Hour
