// Package cache provides caching utilities for the MCP server.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ResultCache provides thread-safe LRU caching of tool results keyed by a
// request digest.
type ResultCache[V any] struct {
	cache *lru.Cache[string, V]
}

// NewResultCache creates a new LRU cache with the specified maximum number of items.
func NewResultCache[V any](maxItems int) (*ResultCache[V], error) {
	c, err := lru.New[string, V](maxItems)
	if err != nil {
		return nil, err
	}
	return &ResultCache[V]{cache: c}, nil
}

// Get retrieves a result from the cache by its key.
// Returns the result and true if found, the zero value and false otherwise.
func (c *ResultCache[V]) Get(key string) (V, bool) {
	return c.cache.Get(key)
}

// Put adds or updates a result in the cache.
func (c *ResultCache[V]) Put(key string, v V) {
	c.cache.Add(key, v)
}

// Len returns the current number of items in the cache.
func (c *ResultCache[V]) Len() int {
	return c.cache.Len()
}

// Key digests the parts of a request into a cache key. Parts are length
// prefixed so ("ab", "c") and ("a", "bc") differ.
func Key(parts ...string) string {
	h := sha256.New()
	var size [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(size[:], uint64(len(p)))
		h.Write(size[:])
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
