package search

import (
	"strings"
	"time"

	log "github.com/Sirupsen/logrus"
	"github.com/jellydator/ttlcache/v2"
)

// SearchCache memoizes filtered corpus slices by normalized query.
type SearchCache struct {
	Cache ttlcache.SimpleCache
}

func (c *SearchCache) Get(query string) ([]*SearchResult, bool) {
	key := cacheKey(query)
	res, err := c.Cache.Get(key)
	if err != nil {
		if err != ttlcache.ErrNotFound {
			log.Warnf("SearchCache.Get %q: %s", key, err.Error())
		}
		return nil, false
	}
	log.Debugf("Using cached result for %q", key)
	return res.([]*SearchResult), true
}

func (c *SearchCache) Set(query string, res []*SearchResult) {
	key := cacheKey(query)
	if err := c.Cache.Set(key, res); err != nil {
		log.Warnf("SearchCache.Set %q: %s", key, err.Error())
	}
}

func (c *SearchCache) Close() error {
	return c.Cache.Close()
}

func cacheKey(query string) string {
	q := strings.TrimSpace(query)
	if ContainsArabic(q) {
		return NormalizeArabic(q)
	}
	return strings.ToLower(q)
}

func MakeSearchCache(ttl time.Duration, size int) *SearchCache {
	cache := ttlcache.NewCache()
	cache.SetTTL(ttl)
	cache.SetCacheSizeLimit(size)
	return &SearchCache{Cache: cache}
}
