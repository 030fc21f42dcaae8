package dictionary

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/cwbudde/algo-ephys/dsp/core"
	"github.com/cwbudde/algo-ephys/dsp/wavelet"
	"github.com/cwbudde/algo-ephys/ephys"
)

// CacheStats reports cache activity.
type CacheStats struct {
	Entries int
	Hits    int64
	Misses  int64
	Builds  int64
}

// Cache shares dictionaries between traces with identical query times.
// Concurrent requests for the same key share a single build. Cached
// dictionaries are read-only and may be used from any goroutine.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*Dictionary
	flight  singleflight.Group
	opts    []core.ExecOption

	hits   int64
	misses int64
	builds int64
}

// NewCache returns an empty cache. The options are passed to every Build.
func NewCache(opts ...core.ExecOption) *Cache {
	return &Cache{
		entries: make(map[Key]*Dictionary),
		opts:    opts,
	}
}

// Get returns the dictionary for (times, family, resolution), building it
// on first use.
func (c *Cache) Get(times []float64, family string, resolution int) (*Dictionary, error) {
	w, err := wavelet.Lookup(family)
	if err != nil {
		return nil, ephys.Wrap(ephys.KindConfiguration, ephys.TraceID{}, "dictionary", err)
	}

	key := Key{Family: w.Name(), Resolution: resolution, Signature: Signature(times)}

	if d, ok := c.lookup(key, times); ok {
		atomic.AddInt64(&c.hits, 1)
		return d, nil
	}

	atomic.AddInt64(&c.misses, 1)

	flightKey := fmt.Sprintf("%s/%d/%016x", key.Family, key.Resolution, key.Signature)

	v, err, _ := c.flight.Do(flightKey, func() (any, error) {
		if d, ok := c.lookup(key, times); ok {
			return d, nil
		}

		d, err := Build(times, w.Name(), resolution, c.opts...)
		if err != nil {
			return nil, err
		}

		atomic.AddInt64(&c.builds, 1)

		c.mu.Lock()
		if _, taken := c.entries[key]; !taken {
			c.entries[key] = d
		}
		c.mu.Unlock()

		return d, nil
	})
	if err != nil {
		return nil, err
	}

	d := v.(*Dictionary)
	if !d.sameTimes(times) {
		// signature collision with a different query set
		return Build(times, w.Name(), resolution, c.opts...)
	}

	return d, nil
}

func (c *Cache) lookup(key Key, times []float64) (*Dictionary, bool) {
	c.mu.RLock()
	d, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !d.sameTimes(times) {
		return nil, false
	}

	return d, true
}

// Len returns the number of cached dictionaries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    atomic.LoadInt64(&c.hits),
		Misses:  atomic.LoadInt64(&c.misses),
		Builds:  atomic.LoadInt64(&c.builds),
	}
}
