package nav

import (
	"strings"
	"sync"

	"github.com/golang/groupcache/lru"
)

const maxCachedPlaces = 256

// lru.Cache is not safe for concurrent use, so wrap it
type placeCache struct {
	mtx   sync.Mutex
	cache *lru.Cache
}

var geoCache = &placeCache{
	cache: lru.New(maxCachedPlaces),
}

type cachedCoords struct {
	lat float64
	lon float64
}

func cacheKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (p *placeCache) get(name string) (float64, float64, bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	v, ok := p.cache.Get(cacheKey(name))
	if !ok {
		return 0, 0, false
	}
	c := v.(cachedCoords)
	return c.lat, c.lon, true
}

func (p *placeCache) put(name string, lat, lon float64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.cache.Add(cacheKey(name), cachedCoords{lat: lat, lon: lon})
}

func (p *placeCache) clear() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.cache.Clear()
}
