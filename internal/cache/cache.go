// Package cache stores raw evidence payloads between annotation runs so
// repeated runs against the same network skip the subgraph query.
package cache

import "time"

// Cache is the payload cache used by the annotate command.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}
