package tube

import (
	"time"

	"github.com/bluele/gcache"

	"tubemap.nanjingmetro.org/internal/mapdoc"
	"tubemap.nanjingmetro.org/internal/models"
)

const (
	routeCacheSize = 512
	routeCacheTTL  = time.Hour
)

// routeCache memoizes computed shortest routes per normalized endpoint pair.
// The network is immutable for the life of the engine, so entries never go
// stale; the TTL only bounds memory on long-running servers.
type routeCache struct {
	cache gcache.Cache
}

func newRouteCache() *routeCache {
	return &routeCache{
		cache: gcache.New(routeCacheSize).
			LRU().
			Expiration(routeCacheTTL).
			Build(),
	}
}

func cacheKey(from, to string) string {
	return mapdoc.NameKey(from) + "→" + mapdoc.NameKey(to)
}

func (rc *routeCache) get(from, to string) (models.Route, bool) {
	value, err := rc.cache.Get(cacheKey(from, to))
	if err != nil {
		return models.Route{}, false
	}
	route, ok := value.(models.Route)
	return route, ok
}

func (rc *routeCache) set(from, to string, route models.Route) {
	_ = rc.cache.Set(cacheKey(from, to), route)
}
