// Package profiles persists the profile list and the active-profile pointer.
// The repository is the single owner of the durable store; every mutation
// path funnels through it.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/raidtracker/internal/models"
)

// Repository describes the durable storage operations for profiles.
// Implementations are backed by a local SQLite database.
type Repository interface {
	// LoadAll returns every stored profile, normalized. When the store is
	// empty it seeds and persists the default profile first, so the result
	// is never empty.
	LoadAll(ctx context.Context) ([]models.Profile, error)

	// SaveAll replaces the entire persisted profile list. Called after every
	// logical mutation; there is no partial-record update.
	SaveAll(ctx context.Context, list []models.Profile) error

	// ActiveProfileID returns the persisted active-profile pointer, or ""
	// when none has been stored yet.
	ActiveProfileID(ctx context.Context) (string, error)

	// SetActiveProfileID persists the active-profile pointer.
	SetActiveProfileID(ctx context.Context, id string) error

	// ClearAll wipes both records. Callers are expected to reseed.
	ClearAll(ctx context.Context) error
}
