// Package services implements the consumer-facing operation set of the
// tracker: profile lifecycle and switching, key/run/armor mutations, repair
// application, import/export and the full data wipe. A front-end (CLI, UI)
// calls these methods and renders whatever they return; every mutation is
// persisted through the repository before the call returns.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/raidtracker/internal/common"
	"github.com/dmitrijs2005/raidtracker/internal/logging"
	"github.com/dmitrijs2005/raidtracker/internal/models"
	"github.com/dmitrijs2005/raidtracker/internal/repositories/profiles"
)

// Tracker owns the in-memory working set (the loaded profile list and the
// active-profile pointer) and keeps it synchronized with the repository.
type Tracker struct {
	repo profiles.Repository
	log  logging.Logger

	// Seams for tests.
	now   func() time.Time
	newID func() string

	list     []models.Profile
	activeID string
	loaded   bool
}

// NewTracker wires a tracker service over the given repository.
func NewTracker(repo profiles.Repository, log logging.Logger) *Tracker {
	return &Tracker{
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load reads the profile list and the active pointer from the repository.
// A dangling or missing pointer falls back to the first profile and the
// repaired pointer is persisted.
func (t *Tracker) Load(ctx context.Context) error {
	list, err := t.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}

	activeID, err := t.repo.ActiveProfileID(ctx)
	if err != nil {
		return fmt.Errorf("loading active profile: %w", err)
	}

	if findProfile(list, activeID) == nil {
		activeID = list[0].ID
		if err := t.repo.SetActiveProfileID(ctx, activeID); err != nil {
			return fmt.Errorf("repairing active profile pointer: %w", err)
		}
		t.log.Warn(ctx, "active profile pointer repaired", "profile_id", activeID)
	}

	t.list = list
	t.activeID = activeID
	t.loaded = true
	return nil
}

// Now returns the service clock's current time. Derived views (trends,
// period comparisons) use it so tests can pin the clock.
func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) ensureLoaded(ctx context.Context) error {
	if t.loaded {
		return nil
	}
	return t.Load(ctx)
}

func findProfile(list []models.Profile, id string) *models.Profile {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

// flush persists the whole working set. Called after every mutation; the
// design saves on change rather than batching.
func (t *Tracker) flush(ctx context.Context) error {
	if err := t.repo.SaveAll(ctx, t.list); err != nil {
		return fmt.Errorf("saving profiles: %w", err)
	}
	return nil
}

// Profiles returns the loaded profile list.
func (t *Tracker) Profiles(ctx context.Context) ([]models.Profile, error) {
	if err := t.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return t.list, nil
}

// ActiveProfileID returns the id of the currently active profile.
func (t *Tracker) ActiveProfileID(ctx context.Context) (string, error) {
	if err := t.ensureLoaded(ctx); err != nil {
		return "", err
	}
	return t.activeID, nil
}

// ActiveProfile returns the currently active profile.
func (t *Tracker) ActiveProfile(ctx context.Context) (*models.Profile, error) {
	if err := t.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	p := findProfile(t.list, t.activeID)
	if p == nil {
		return nil, fmt.Errorf("%w: active profile %q", common.ErrNotFound, t.activeID)
	}
	return p, nil
}

// SwitchProfile makes the profile with the given id active. Pending edits of
// the current working set are flushed first, so no mutation is lost on the
// way out.
func (t *Tracker) SwitchProfile(ctx context.Context, id string) error {
	if err := t.ensureLoaded(ctx); err != nil {
		return err
	}
	if findProfile(t.list, id) == nil {
		t.log.Warn(ctx, "switch to unknown profile ignored", "profile_id", id)
		return fmt.Errorf("%w: profile %q", common.ErrNotFound, id)
	}
	if err := t.flush(ctx); err != nil {
		return err
	}
	if err := t.repo.SetActiveProfileID(ctx, id); err != nil {
		return err
	}
	t.activeID = id
	t.log.Info(ctx, "profile switched", "profile_id", id)
	return nil
}

// CreateProfile adds a new empty profile and persists it. The name must be
// non-empty after trimming; unknown icons fall back to the default.
func (t *Tracker) CreateProfile(ctx context.Context, name string, icon models.Icon) (*models.Profile, error) {
	if err := t.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: profile name is required", common.ErrValidation)
	}

	p := models.Profile{
		ID:        t.newID(),
		Name:      name,
		Icon:      models.NormalizeIcon(icon),
		CreatedAt: t.now().UTC(),
		Keys:      []models.Key{},
		Armors:    []models.Armor{},
	}
	t.list = append(t.list, p)
	if err := t.flush(ctx); err != nil {
		return nil, err
	}
	t.log.Info(ctx, "profile created", "profile_id", p.ID, "name", p.Name)
	return findProfile(t.list, p.ID), nil
}

// EditProfile renames and/or re-icons an existing profile.
func (t *Tracker) EditProfile(ctx context.Context, id, name string, icon models.Icon) error {
	if err := t.ensureLoaded(ctx); err != nil {
		return err
	}
	p := findProfile(t.list, id)
	if p == nil {
		return fmt.Errorf("%w: profile %q", common.ErrNotFound, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: profile name is required", common.ErrValidation)
	}
	p.Name = name
	p.Icon = models.NormalizeIcon(icon)
	return t.flush(ctx)
}

// DeleteProfile removes a profile. Deleting the last remaining profile is
// rejected before any mutation; deleting the active one re-activates the
// first remaining profile.
func (t *Tracker) DeleteProfile(ctx context.Context, id string) error {
	if err := t.ensureLoaded(ctx); err != nil {
		return err
	}
	if findProfile(t.list, id) == nil {
		t.log.Warn(ctx, "delete of unknown profile ignored", "profile_id", id)
		return fmt.Errorf("%w: profile %q", common.ErrNotFound, id)
	}
	if len(t.list) <= 1 {
		return common.ErrLastProfile
	}

	kept := make([]models.Profile, 0, len(t.list)-1)
	for i := range t.list {
		if t.list[i].ID != id {
			kept = append(kept, t.list[i])
		}
	}
	t.list = kept

	if err := t.flush(ctx); err != nil {
		return err
	}

	if t.activeID == id {
		t.activeID = t.list[0].ID
		if err := t.repo.SetActiveProfileID(ctx, t.activeID); err != nil {
			return err
		}
		t.log.Info(ctx, "active profile re-pointed", "profile_id", t.activeID)
	}
	t.log.Info(ctx, "profile deleted", "profile_id", id)
	return nil
}

// ClearAllData wipes the store and reseeds the default profile, which
// becomes active.
func (t *Tracker) ClearAllData(ctx context.Context) error {
	if err := t.repo.ClearAll(ctx); err != nil {
		return err
	}
	list, err := t.repo.LoadAll(ctx) // reseeds
	if err != nil {
		return err
	}
	t.list = list
	t.activeID = list[0].ID
	t.loaded = true
	t.log.Info(ctx, "all data cleared")
	return nil
}
