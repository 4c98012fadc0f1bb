package redirect

import (
	"sync"
	"time"

	"smartlink/internal/engine/links"
	"smartlink/internal/engine/platforms"
)

type cachedLink struct {
	link     *links.Link
	cachedAt time.Time
}

// LinkCache keeps recently resolved rows out of the hot path. Entries
// are short-lived: a deactivated or deleted link may keep redirecting
// for at most the TTL.
type LinkCache struct {
	store sync.Map // map[string]*cachedLink
	ttl   time.Duration
}

func NewLinkCache(ttl time.Duration) *LinkCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &LinkCache{ttl: ttl}
}

func cacheKey(platform platforms.Platform, code string) string {
	return string(platform) + ":" + code
}

func (c *LinkCache) Get(platform platforms.Platform, code string) (*links.Link, bool) {
	val, ok := c.store.Load(cacheKey(platform, code))
	if !ok {
		return nil, false
	}

	entry := val.(*cachedLink)
	if time.Since(entry.cachedAt) > c.ttl {
		c.store.Delete(cacheKey(platform, code))
		return nil, false
	}

	return entry.link, true
}

func (c *LinkCache) Set(link *links.Link) {
	c.store.Store(cacheKey(link.Platform, link.ShortCode), &cachedLink{
		link:     link,
		cachedAt: time.Now(),
	})
}
