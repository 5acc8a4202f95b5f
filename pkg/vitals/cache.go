package vitals

import (
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"vitalboard.xyz/vitals-telemetry-service/pkg/influx"
)

const (
	// DefaultCacheTTL bounds how old a cached read may get before a render
	// refetches it.
	DefaultCacheTTL = 60 * time.Second

	// DefaultStaleAfter is the age past which the background pre-warmer
	// refreshes an entry ahead of the next render.
	DefaultStaleAfter = 30 * time.Second
)

type cacheEntry struct {
	table     influx.Table
	fetchedAt time.Time
}

// Cache maps (query name, parameters) to a fetched table and its fetch
// time. Entries expire after a fixed TTL; concurrent renders overwriting
// the same key is fine, the data is re-derivable from the endpoint.
type Cache struct {
	store *gocache.Cache
	ttl   time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// CacheKey derives the cache key from the query name and its parameters.
func CacheKey(name string, params map[string]string) string {
	if len(params) == 0 {
		return name
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// GetOrFetch returns the cached table for key, or runs fetch and stores the
// result. Failed fetches are never cached, so the next call retries.
func (c *Cache) GetOrFetch(key string, fetch func() (influx.Table, error)) (influx.Table, bool, error) {
	if v, found := c.store.Get(key); found {
		return v.(cacheEntry).table, true, nil
	}

	table, err := fetch()
	if err != nil {
		return influx.Table{}, false, err
	}

	c.store.Set(key, cacheEntry{table: table, fetchedAt: time.Now()}, gocache.DefaultExpiration)
	return table, false, nil
}

// Invalidate force-expires one entry so the next read refetches.
func (c *Cache) Invalidate(key string) {
	c.store.Delete(key)
}

// Age reports how long ago the entry for key was fetched.
func (c *Cache) Age(key string) (time.Duration, bool) {
	v, found := c.store.Get(key)
	if !found {
		return 0, false
	}
	return time.Since(v.(cacheEntry).fetchedAt), true
}
