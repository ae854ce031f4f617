package comparer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/models"
	gocache "github.com/patrickmn/go-cache"
)

// resultCache memoizes comparison results. Keys cover both inputs, both
// display names and the full option set: any option change produces a
// different key, so a stale entry can never be served for new settings.
type resultCache struct {
	store *gocache.Cache
}

func newResultCache(cfg config.CacheConfig) *resultCache {
	if !cfg.Enabled {
		return nil
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Duration(config.DefaultCacheTTLSeconds) * time.Second
	}
	return &resultCache{
		store: gocache.New(ttl, ttl),
	}
}

func (rc *resultCache) get(key string) (*models.ComparisonResult, bool) {
	if rc == nil {
		return nil, false
	}
	if cached, found := rc.store.Get(key); found {
		if result, ok := cached.(*models.ComparisonResult); ok {
			return result, true
		}
	}
	return nil, false
}

func (rc *resultCache) set(key string, result *models.ComparisonResult) {
	if rc == nil {
		return
	}
	rc.store.SetDefault(key, result)
}

// cacheKey hashes inputs, names and every comparison option into one digest.
func cacheKey(a, b Source, opts config.CompareOptions) string {
	h := sha256.New()

	optBytes, _ := json.Marshal(opts)
	h.Write(optBytes)

	writeSource := func(s Source) {
		h.Write([]byte(s.Name))
		h.Write([]byte{0})
		for _, line := range s.Lines {
			h.Write([]byte(line))
			h.Write([]byte{0xff})
		}
		h.Write([]byte{0})
	}
	writeSource(a)
	writeSource(b)

	return hex.EncodeToString(h.Sum(nil))
}
