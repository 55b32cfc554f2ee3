// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"github.com/google/uuid"

	"profilesync/internal/domain/entity"
)

// ProfileCache holds the last reconciled profile of one viewing session together
// with its derived notification. Every method is safe for concurrent use and
// returns copies, never references into the cache.
type ProfileCache interface {
	// Get returns the current snapshot. ok is false until the first Replace.
	Get() (profile entity.Profile, ok bool)

	// View returns the snapshot and the notification computed from it.
	View() entity.View

	// Owner returns the user the cached profile belongs to.
	Owner() uuid.UUID

	// Replace swaps the whole snapshot, typically after a fetch.
	Replace(profile entity.Profile) entity.View

	// Patch merges fields into the snapshot and returns the previous full snapshot.
	Patch(patch entity.ProfilePatch) (previous entity.Profile, view entity.View)

	// Restore copies the listed fields from previous back into the snapshot.
	Restore(previous entity.Profile, fields []entity.Field) entity.View

	// Reset empties the cache.
	Reset()
}
