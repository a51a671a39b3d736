package services

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/raidtracker/internal/common"
	"github.com/dmitrijs2005/raidtracker/internal/models"
	"github.com/dmitrijs2005/raidtracker/internal/stats"
)

// AddArmor records a new armor piece on the active profile. The caller fills
// the descriptive fields; id, purchase date and history are assigned here.
func (t *Tracker) AddArmor(ctx context.Context, a models.Armor) (*models.Armor, error) {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateArmor(&a); err != nil {
		return nil, err
	}

	a.ID = t.newID()
	a.PurchaseDate = t.now().UTC()
	a.RepairCost = 0
	a.RepairHistory = []models.RepairEntry{}
	models.NormalizeArmor(&a)

	p.Armors = append(p.Armors, a)
	if err := t.flush(ctx); err != nil {
		return nil, err
	}
	t.log.Info(ctx, "armor added", "armor_id", a.ID, "name", a.Name)
	return p.FindArmor(a.ID), nil
}

// EditArmor replaces the descriptive fields of an existing armor piece.
// Identity, purchase date, repair cost and history survive the edit.
func (t *Tracker) EditArmor(ctx context.Context, a models.Armor) error {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return err
	}
	existing := p.FindArmor(a.ID)
	if existing == nil {
		return fmt.Errorf("%w: armor %q", common.ErrNotFound, a.ID)
	}
	if err := models.ValidateArmor(&a); err != nil {
		return err
	}

	a.PurchaseDate = existing.PurchaseDate
	a.RepairCost = existing.RepairCost
	a.RepairHistory = existing.RepairHistory
	models.NormalizeArmor(&a)
	*existing = a
	return t.flush(ctx)
}

// DeleteArmor removes an armor piece together with its repair history.
func (t *Tracker) DeleteArmor(ctx context.Context, id string) error {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return err
	}
	kept := make([]models.Armor, 0, len(p.Armors))
	found := false
	for i := range p.Armors {
		if p.Armors[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, p.Armors[i])
	}
	if !found {
		return fmt.Errorf("%w: armor %q", common.ErrNotFound, id)
	}
	p.Armors = kept
	if err := t.flush(ctx); err != nil {
		return err
	}
	t.log.Info(ctx, "armor deleted", "armor_id", id)
	return nil
}

// ProjectRepair is the read-only repair calculator: it reports what accepting
// a tier at the given durability would leave, without recording anything.
func (t *Tracker) ProjectRepair(ctx context.Context, armorID string, currentDurability float64, tier models.RepairTier) (stats.RepairProjection, error) {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return stats.RepairProjection{}, err
	}
	a := p.FindArmor(armorID)
	if a == nil {
		return stats.RepairProjection{}, fmt.Errorf("%w: armor %q", common.ErrNotFound, armorID)
	}
	if !models.KnownRepairTier(tier) {
		return stats.RepairProjection{}, fmt.Errorf("%w: unknown repair tier %q", common.ErrValidation, tier)
	}
	return stats.RepairResult(a, currentDurability, tier), nil
}

// ApplyRepair records an accepted repair: the armor's current durability is
// set to the projected value (clamped to the kind's ceiling), the cost is
// added to the lifetime repair spend and a history entry is appended.
func (t *Tracker) ApplyRepair(ctx context.Context, armorID string, currentDurability float64, tier models.RepairTier, cost float64) (stats.RepairProjection, error) {
	p, err := t.ActiveProfile(ctx)
	if err != nil {
		return stats.RepairProjection{}, err
	}
	a := p.FindArmor(armorID)
	if a == nil {
		return stats.RepairProjection{}, fmt.Errorf("%w: armor %q", common.ErrNotFound, armorID)
	}
	if !models.KnownRepairTier(tier) {
		return stats.RepairProjection{}, fmt.Errorf("%w: unknown repair tier %q", common.ErrValidation, tier)
	}

	proj := stats.RepairResult(a, currentDurability, tier)
	before := a.CurrentDurability
	a.CurrentDurability = math.Min(proj.ResultingDurability, a.MaxDurability())
	a.RepairCost += cost
	a.RepairHistory = append(a.RepairHistory, models.RepairEntry{
		Date:               t.now().UTC(),
		Cost:               cost,
		DurabilityRestored: a.CurrentDurability - before,
	})

	if err := t.flush(ctx); err != nil {
		return stats.RepairProjection{}, err
	}
	t.log.Info(ctx, "repair applied", "armor_id", armorID, "tier", string(tier))
	return proj, nil
}
