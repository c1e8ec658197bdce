// Package cache implements the bounded, TTL-based response cache that shields
// the completion provider from repeated identical questions. Keys are a
// deterministic digest of persona and message so identical inputs map to the
// same entry across process restarts.
//
// The cache is an explicit object with injected configuration (TTL, disabled
// flag) rather than process-global state; it is constructed once at startup
// and handed to the chat orchestrator.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

// maxEntries is the capacity bound beyond which a Put triggers an expiry
// sweep. The sweep removes only expired entries, so under sustained fresh
// traffic the map can exceed the bound until entries age out.
const maxEntries = 1000

var (
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "response_cache_hits_total",
		Help: "Number of chat responses served from the cache.",
	})
	cacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "response_cache_misses_total",
		Help: "Number of cache lookups that found no fresh entry.",
	})
	cacheEvictions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "response_cache_evictions_total",
		Help: "Number of expired entries removed by cleanup sweeps.",
	})
	cacheEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "response_cache_entries",
		Help: "Current number of entries held by the response cache.",
	})
)

func init() {
	prometheus.MustRegister(cacheHits, cacheMisses, cacheEvictions, cacheEntries)
}

// entry pairs a cached response with its insertion time. Entries are never
// mutated in place; Put replaces the whole value.
type entry struct {
	value      domain.ChatResponse
	insertedAt time.Time
}

// Options configures a ResponseCache.
type Options struct {
	// TTL is the maximum age before an entry is treated as absent.
	TTL time.Duration
	// Disabled turns the cache into a no-op (development mode): Get always
	// misses and Put does nothing.
	Disabled bool
	// Now overrides the clock; nil means time.Now. Used by tests to simulate
	// expiry without sleeping.
	Now func() time.Time
}

// ResponseCache is a mutex-guarded map of digest → cached ChatResponse.
// It is safe for concurrent Get/Put/Cleanup; a Put racing a Cleanup can never
// leave a torn entry because the map value is replaced atomically under the
// lock. Two concurrent Puts for the same key race and the last writer wins.
type ResponseCache struct {
	mu       sync.Mutex
	entries  map[string]entry
	ttl      time.Duration
	disabled bool
	now      func() time.Time
}

// New constructs a ResponseCache from opts.
func New(opts Options) *ResponseCache {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &ResponseCache{
		entries:  make(map[string]entry),
		ttl:      opts.TTL,
		disabled: opts.Disabled,
		now:      now,
	}
}

// Key returns the deterministic digest for (persona, message): the SHA-256 of
// the UTF-8 bytes of "persona:message", hex-encoded. It is a pure function
// with no process-specific salt, so it is stable across restarts.
func Key(persona domain.Persona, message string) string {
	sum := sha256.Sum256([]byte(string(persona) + ":" + message))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for (persona, message) if a fresh entry
// exists. Expired entries are treated as absent but left for Cleanup to
// remove (lazy expiry).
func (c *ResponseCache) Get(persona domain.Persona, message string) (domain.ChatResponse, bool) {
	if c.disabled {
		return domain.ChatResponse{}, false
	}

	key := Key(persona, message)

	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()

	if !ok || c.now().Sub(e.insertedAt) >= c.ttl {
		cacheMisses.Inc()
		return domain.ChatResponse{}, false
	}
	cacheHits.Inc()
	return e.value, true
}

// Put inserts or overwrites the entry for (persona, message). When the entry
// count exceeds the capacity bound after insertion, an expiry sweep runs.
func (c *ResponseCache) Put(persona domain.Persona, message string, value domain.ChatResponse) {
	if c.disabled {
		return
	}

	key := Key(persona, message)

	c.mu.Lock()
	c.entries[key] = entry{value: value, insertedAt: c.now()}
	n := len(c.entries)
	// Publish the gauge inside the critical section so concurrent Puts and
	// Cleanups cannot reorder their Sets and leave a stale count.
	cacheEntries.Set(float64(n))
	c.mu.Unlock()

	if n > maxEntries {
		c.Cleanup()
	}
}

// Cleanup removes every entry whose age meets or exceeds the TTL. It is an
// expiry sweep, not an LRU eviction: it does not guarantee the entry count
// drops under the capacity bound when most entries are still fresh.
func (c *ResponseCache) Cleanup() {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for k, e := range c.entries {
		if now.Sub(e.insertedAt) >= c.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	n := len(c.entries)
	cacheEntries.Set(float64(n))
	c.mu.Unlock()

	if removed > 0 {
		cacheEvictions.Add(float64(removed))
		log.Info().Int("removed", removed).Int("remaining", n).Msg("cache cleanup")
	}
}

// Len reports the current entry count, including not-yet-swept expired
// entries.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
