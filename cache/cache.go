// Package cache provides the byte-value cache capability backing the
// read-through catalog and product lookups. A missing or failing cache never
// changes an answer, only its latency.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Options controls entry expiration: an absolute ceiling from the time of
// the write, and a sliding idle window renewed on every hit, capped by the
// ceiling.
type Options struct {
	Absolute time.Duration
	Sliding  time.Duration
}

// DefaultOptions returns the expiration policy used for catalog and product
// views: one hour absolute, ten minutes sliding.
func DefaultOptions() Options {
	return Options{
		Absolute: time.Hour,
		Sliding:  10 * time.Minute,
	}
}

// Cache is the key/byte-value collaborator with per-key expiration and
// explicit invalidation.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, opts Options) error
	Remove(ctx context.Context, key string) error
}

// Well-known aggregate keys and per-id key derivations. Key derivation is a
// pure function of entity type and id.
const (
	ProductsAllKey = "products_all"
	CatalogsAllKey = "catalogs_all"
)

// ProductKey returns the cache key for a single product view.
func ProductKey(id uint) string {
	return fmt.Sprintf("product_%d", id)
}

// CatalogKey returns the cache key for a single catalog view.
func CatalogKey(id uint) string {
	return fmt.Sprintf("catalog_%d", id)
}
