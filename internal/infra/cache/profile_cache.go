// Package cache contains the in-memory projection of the profile being viewed.
package cache

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"profilesync/internal/domain/completion"
	"profilesync/internal/domain/entity"
	"profilesync/internal/domain/repository"
)

// profileCache implements repository.ProfileCache. A single mutex guards the
// snapshot and the notification computed from it, so readers never observe a
// profile paired with a stale summary.
type profileCache struct {
	mu           sync.RWMutex
	loaded       bool
	profile      entity.Profile
	notification entity.Notification
}

// NewProfileCache returns an empty cache.
func NewProfileCache() repository.ProfileCache {
	return &profileCache{}
}

func (c *profileCache) Get() (entity.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.profile.Clone(), c.loaded
}

func (c *profileCache) View() entity.View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.viewLocked()
}

func (c *profileCache) Owner() uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.profile.UserID
}

func (c *profileCache) Replace(profile entity.Profile) entity.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.profile = profile.Clone()
	c.loaded = true
	c.recomputeLocked()

	return c.viewLocked()
}

func (c *profileCache) Patch(patch entity.ProfilePatch) (entity.Profile, entity.View) {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous := c.profile.Clone()
	patch.ApplyTo(&c.profile)
	c.recomputeLocked()

	return previous, c.viewLocked()
}

func (c *profileCache) Restore(previous entity.Profile, fields []entity.Field) entity.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	entity.CopyFields(&c.profile, previous, fields)
	c.recomputeLocked()

	return c.viewLocked()
}

func (c *profileCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.profile = entity.Profile{}
	c.notification = entity.Notification{}
	c.loaded = false
}

func (c *profileCache) recomputeLocked() {
	c.notification = completion.Estimate(c.profile)
}

func (c *profileCache) viewLocked() entity.View {
	n := c.notification
	n.MissingFields = slices.Clone(c.notification.MissingFields)

	return entity.View{Profile: c.profile.Clone(), Notification: n}
}
