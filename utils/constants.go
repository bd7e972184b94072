// File: utils/constants.go
package utils

import "time"

// CatalogCachePrefix is the prefix used for Redis catalog cache keys.
const CatalogCachePrefix = "catalog:"

// CatalogCacheTTL is the time-to-live for cached catalog entries.
const CatalogCacheTTL = 15 * time.Minute
