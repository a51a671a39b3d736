package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/raidtracker/internal/common"
	"github.com/dmitrijs2005/raidtracker/internal/models"
)

// AddKey records a new key on the active profile.
func (t *Tracker) AddKey(ctx context.Context, name string, location models.Location, cost int64) (*models.Key, error) {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}

	k := models.Key{
		ID:       t.newID(),
		Name:     name,
		Location: location,
		Cost:     cost,
		Runs:     []models.Run{},
	}
	if err := models.ValidateKey(&k); err != nil {
		return nil, err
	}

	p.Keys = append(p.Keys, k)
	if err := t.flush(ctx); err != nil {
		return nil, err
	}
	t.log.Info(ctx, "key added", "key_id", k.ID, "name", k.Name)
	return p.FindKey(k.ID), nil
}

// EditKey updates the descriptive fields of an existing key. Run history and
// the uses badge are untouched.
func (t *Tracker) EditKey(ctx context.Context, id, name string, location models.Location, cost int64) error {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return err
	}
	k := p.FindKey(id)
	if k == nil {
		return fmt.Errorf("%w: key %q", common.ErrNotFound, id)
	}

	updated := *k
	updated.Name = name
	updated.Location = location
	updated.Cost = cost
	if err := models.ValidateKey(&updated); err != nil {
		return err
	}

	k.Name = updated.Name
	k.Location = updated.Location
	k.Cost = updated.Cost
	return t.flush(ctx)
}

// DeleteKey removes a key together with its run history.
func (t *Tracker) DeleteKey(ctx context.Context, id string) error {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return err
	}
	kept := make([]models.Key, 0, len(p.Keys))
	found := false
	for i := range p.Keys {
		if p.Keys[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, p.Keys[i])
	}
	if !found {
		return fmt.Errorf("%w: key %q", common.ErrNotFound, id)
	}
	p.Keys = kept
	if err := t.flush(ctx); err != nil {
		return err
	}
	t.log.Info(ctx, "key deleted", "key_id", id)
	return nil
}

// ResetKeyUses zeroes the uses badge of a key without touching its runs.
func (t *Tracker) ResetKeyUses(ctx context.Context, id string) error {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return err
	}
	k := p.FindKey(id)
	if k == nil {
		return fmt.Errorf("%w: key %q", common.ErrNotFound, id)
	}
	k.ResetUses()
	return t.flush(ctx)
}

// AddRun records a raid run against a key and returns the appended run.
func (t *Tracker) AddRun(ctx context.Context, keyID string, profit int64) (models.Run, error) {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return models.Run{}, err
	}
	k := p.FindKey(keyID)
	if k == nil {
		return models.Run{}, fmt.Errorf("%w: key %q", common.ErrNotFound, keyID)
	}
	run := k.AddRun(profit, t.now().UTC())
	if err := t.flush(ctx); err != nil {
		return models.Run{}, err
	}
	return run, nil
}

// EditRun replaces the profit of an existing run.
func (t *Tracker) EditRun(ctx context.Context, keyID string, runNumber int, profit int64) error {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return err
	}
	k := p.FindKey(keyID)
	if k == nil {
		return fmt.Errorf("%w: key %q", common.ErrNotFound, keyID)
	}
	if err := k.EditRun(runNumber, profit); err != nil {
		if errors.Is(err, models.ErrRunNotFound) {
			return fmt.Errorf("%w: %v", common.ErrNotFound, err)
		}
		return err
	}
	return t.flush(ctx)
}

// DeleteRun removes a run; the remaining runs are renumbered densely.
func (t *Tracker) DeleteRun(ctx context.Context, keyID string, runNumber int) error {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return err
	}
	k := p.FindKey(keyID)
	if k == nil {
		return fmt.Errorf("%w: key %q", common.ErrNotFound, keyID)
	}
	if err := k.DeleteRun(runNumber); err != nil {
		if errors.Is(err, models.ErrRunNotFound) {
			return fmt.Errorf("%w: %v", common.ErrNotFound, err)
		}
		return err
	}
	return t.flush(ctx)
}
