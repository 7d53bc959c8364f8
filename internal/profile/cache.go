package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/units"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte        = 1024 * 1024
	profileCacheKey = "profile::current"
	// seconds
	profileCacheExpire = 10 * 60
)

type store interface {
	Get(ctx context.Context) (*Profile, error)
	Merge(ctx context.Context, patch Patch) (*Profile, error)
}

// CachedRepo keeps the single profile in an in-process cache. Every
// evaluation reads the profile, while writes are rare.
type CachedRepo struct {
	store          store
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewCachedRepo(store store, cacheSizeMB int, metricsManager *metrics.Manager) *CachedRepo {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	return &CachedRepo{
		store:          store,
		cache:          freecache.NewCache(cacheSizeMB * megabyte),
		metricsManager: metricsManager,
	}
}

func (c *CachedRepo) Get(ctx context.Context) (*Profile, error) {
	if cached, err := c.cache.Get([]byte(profileCacheKey)); err == nil {
		var p Profile
		unmarshalErr := json.Unmarshal(cached, &p)
		if unmarshalErr == nil {
			c.count("hit")
			return &p, nil
		}
		log.Errorf("failed to unmarshal cached profile: %s", unmarshalErr)
	}
	c.count("miss")

	p, err := c.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	c.set(p)
	return p, nil
}

func (c *CachedRepo) Merge(ctx context.Context, patch Patch) (*Profile, error) {
	c.cache.Del([]byte(profileCacheKey))
	p, err := c.store.Merge(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("store merge: %w", err)
	}
	c.set(p)
	return p, nil
}

func (c *CachedRepo) set(p *Profile) {
	profileBytes, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal profile for cache: %s", err)
		return
	}
	if err := c.cache.Set([]byte(profileCacheKey), profileBytes, profileCacheExpire); err != nil {
		log.Errorf("failed to write profile cache: %s", err)
	}
}

func (c *CachedRepo) count(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterProfileCache.WithLabelValues(result).Inc()
	}
}

// UnitSystem returns the unit system the user enters weights in.
func (c *CachedRepo) UnitSystem(ctx context.Context) (units.System, error) {
	p, err := c.Get(ctx)
	if err != nil {
		return "", err
	}
	if !p.UnitSystem.IsValid() {
		return units.Imperial, nil
	}
	return p.UnitSystem, nil
}
