// Package refcache provides a short-lived read-through cache over the
// reference lookup tables used to populate selection inputs.
package refcache

import (
	"context"
	"sync"
	"time"

	"github.com/alou/yoga-journal/pkg/models"
	"github.com/alou/yoga-journal/pkg/repositories"
)

// DefaultTTL is how long a reference snapshot is served before the next
// read goes back to the warehouse.
const DefaultTTL = 60 * time.Second

// Cache is a process-wide TTL cache of the three lookup tables. Read
// failures propagate to the caller; an error is never downgraded to an
// empty snapshot.
type Cache struct {
	repo repositories.ReferenceRepository
	ttl  time.Duration
	now  func() time.Time

	mu         sync.RWMutex
	locations  []*models.Location
	classTypes []*models.ClassType
	themes     []*models.Theme
	fetchedAt  map[string]time.Time
}

// New creates a reference cache with the given TTL. A non-positive TTL
// falls back to DefaultTTL.
func New(repo repositories.ReferenceRepository, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		repo:      repo,
		ttl:       ttl,
		now:       time.Now,
		fetchedAt: make(map[string]time.Time),
	}
}

// Locations returns the active locations, refreshing from the warehouse
// when the cached snapshot is older than the TTL.
func (c *Cache) Locations(ctx context.Context) ([]*models.Location, error) {
	c.mu.RLock()
	if c.fresh("locations") {
		cached := c.locations
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	locations, err := c.repo.Locations(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.locations = locations
	c.fetchedAt["locations"] = c.now()
	c.mu.Unlock()

	return locations, nil
}

// ClassTypes returns the active class types, refreshing when stale.
func (c *Cache) ClassTypes(ctx context.Context) ([]*models.ClassType, error) {
	c.mu.RLock()
	if c.fresh("class_types") {
		cached := c.classTypes
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	classTypes, err := c.repo.ClassTypes(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.classTypes = classTypes
	c.fetchedAt["class_types"] = c.now()
	c.mu.Unlock()

	return classTypes, nil
}

// Themes returns the active catalog themes, refreshing when stale.
func (c *Cache) Themes(ctx context.Context) ([]*models.Theme, error) {
	c.mu.RLock()
	if c.fresh("themes") {
		cached := c.themes
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	themes, err := c.repo.Themes(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.themes = themes
	c.fetchedAt["themes"] = c.now()
	c.mu.Unlock()

	return themes, nil
}

// Invalidate drops every cached snapshot so the next read sees freshly
// logged data. Called after a successful class insert.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locations = nil
	c.classTypes = nil
	c.themes = nil
	c.fetchedAt = make(map[string]time.Time)
}

// fresh reports whether the named snapshot is within its TTL.
// Callers must hold at least the read lock.
func (c *Cache) fresh(key string) bool {
	fetched, ok := c.fetchedAt[key]
	if !ok {
		return false
	}
	return c.now().Sub(fetched) < c.ttl
}
