package gpu

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gogpu/mixrgb"
	"github.com/gogpu/mixrgb/blend"
)

// DefaultCacheSize holds every blend mode.
const DefaultCacheSize = 18

// CacheOption configures a Cache.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	size    int
	compile func(blend.Mode) ([]uint32, error)
}

// WithCacheSize sets how many compiled modes the cache keeps.
// Values below 1 are ignored.
func WithCacheSize(n int) CacheOption {
	return func(o *cacheOptions) {
		if n > 0 {
			o.size = n
		}
	}
}

// Cache keeps SPIR-V for recently used blend modes.
//
// Compilation takes milliseconds, so a host that switches modes per node
// should resolve modules through a Cache. Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	lru     *lru.Cache[blend.Mode, []uint32]
	compile func(blend.Mode) ([]uint32, error)
}

// NewCache returns an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	o := cacheOptions{size: DefaultCacheSize, compile: Compile}
	for _, opt := range opts {
		opt(&o)
	}

	c, _ := lru.NewWithEvict[blend.Mode, []uint32](o.size, onEvict)
	return &Cache{lru: c, compile: o.compile}
}

func onEvict(mode blend.Mode, _ []uint32) {
	mixrgb.Logger().Debug("gpu: shader evicted", "mode", mode.String())
}

// Get returns the SPIR-V for mode, compiling it on first use.
// Failed compilations are not cached.
func (c *Cache) Get(mode blend.Mode) ([]uint32, error) {
	if code, ok := c.lru.Get(mode); ok {
		return code, nil
	}

	// Serialize misses so a mode compiles once even under contention.
	c.mu.Lock()
	defer c.mu.Unlock()
	if code, ok := c.lru.Get(mode); ok {
		return code, nil
	}

	code, err := c.compile(mode)
	if err != nil {
		return nil, err
	}
	c.lru.Add(mode, code)
	return code, nil
}

// Len returns the number of cached modes.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached module.
func (c *Cache) Purge() {
	c.lru.Purge()
}
