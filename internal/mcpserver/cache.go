package mcpserver

import (
	"strconv"
	"sync"
	"time"

	"github.com/erraggy/namecase/caser"
)

// caserEntry holds a cached Caser with LRU ordering.
type caserEntry struct {
	caser    *caser.Caser
	lastUsed time.Time
}

// caserCacheStore keeps configured Casers keyed by (language, nfc), so each
// call reuses the pooled casing state of an earlier call with the same options.
type caserCacheStore struct {
	mu      sync.Mutex
	entries map[string]*caserEntry
	maxSize int
}

var caserCache = newCaserCache(cfg.CacheMaxSize)

func newCaserCache(maxSize int) *caserCacheStore {
	return &caserCacheStore{
		entries: make(map[string]*caserEntry),
		maxSize: maxSize,
	}
}

func caserCacheKey(lang string, nfc bool) string {
	return lang + "|" + strconv.FormatBool(nfc)
}

// resolve returns the cached Caser for the options, building it on a miss.
// Invalid language tags are not cached.
func (c *caserCacheStore) resolve(lang string, nfc bool) (*caser.Caser, error) {
	key := caserCacheKey(lang, nfc)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.lastUsed = time.Now()
		return e.caser, nil
	}

	built, err := caser.New(caser.WithLanguageString(lang), caser.WithNormalizeNFC(nfc))
	if err != nil {
		return nil, err
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.lastUsed.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.lastUsed
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = &caserEntry{caser: built, lastUsed: time.Now()}
	return built, nil
}

// reset clears all cached entries. Used in tests.
func (c *caserCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*caserEntry)
}

// size returns the number of cached entries.
func (c *caserCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
