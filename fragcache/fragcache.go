// Package fragcache caches generated fetch-statement text per (entity,
// fetch profile, batch size). The assembler itself is stateless, so the
// cache never has to reach into composer internals: an entry is just the
// finished SQL text, rebuilt on demand after eviction.
package fragcache

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Key identifies one generated statement.
type Key struct {
	// Entity is the root entity (or mapped class) name.
	Entity string
	// Profile names the fetch profile the chain was derived from.
	Profile string
	// BatchSize is the batch size the statement was generated for.
	BatchSize int
}

// Cache is a bounded LRU of generated statement text. It is safe for
// concurrent use; concurrent misses on the same key may build twice, with
// the last write kept.
type Cache struct {
	entries    *lru.Cache[Key, string]
	log        *slog.Logger
	registerer prometheus.Registerer
	hits       prometheus.Counter
	misses     prometheus.Counter
}

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithLogger attaches a logger; rebuilds are logged at Debug.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cache) { c.log = log }
}

// WithRegisterer registers hit/miss counters with the given registerer.
// Without it the cache records no metrics.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *Cache) { c.registerer = r }
}

// New returns a cache holding at most size entries.
func New(size int, opts ...Option) (*Cache, error) {
	c := &Cache{}
	for _, opt := range opts {
		opt(c)
	}
	entries, err := lru.New[Key, string](size)
	if err != nil {
		return nil, err
	}
	c.entries = entries
	if c.registerer != nil {
		c.hits = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fetchsql",
			Subsystem: "fragcache",
			Name:      "hits_total",
			Help:      "Number of statement cache hits.",
		})
		c.misses = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fetchsql",
			Subsystem: "fragcache",
			Name:      "misses_total",
			Help:      "Number of statement cache misses.",
		})
		c.registerer.MustRegister(c.hits, c.misses)
	}
	return c, nil
}

// Get returns the cached statement for key, calling build on a miss. Build
// errors are returned as-is and never cached.
func (c *Cache) Get(key Key, build func() (string, error)) (string, error) {
	if sqlText, ok := c.entries.Get(key); ok {
		if c.hits != nil {
			c.hits.Inc()
		}
		return sqlText, nil
	}
	if c.misses != nil {
		c.misses.Inc()
	}
	sqlText, err := build()
	if err != nil {
		return "", err
	}
	c.entries.Add(key, sqlText)
	if c.log != nil {
		c.log.Debug("rebuilt fetch statement",
			"entity", key.Entity,
			"profile", key.Profile,
			"batch_size", key.BatchSize,
		)
	}
	return sqlText, nil
}

// Len returns the number of cached statements.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every cached statement.
func (c *Cache) Purge() { c.entries.Purge() }
