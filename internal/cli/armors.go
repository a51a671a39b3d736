package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/raidtracker/internal/models"
	"github.com/dmitrijs2005/raidtracker/internal/stats"
)

// Armors prints the active profile's armor pieces, optionally filtered by a
// name substring entered at the prompt.
func (a *App) Armors(ctx context.Context) error {
	p, err := a.service.ActiveProfile(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	if len(p.Armors) == 0 {
		fmt.Fprintln(a.out, "No armor yet, use 'addarmor'")
		return nil
	}

	search, err := GetSimpleText(a.reader, "Filter by name (empty for all)", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	shown := stats.FilterArmors(p.Armors, search, "")
	for i := range shown {
		ar := &shown[i]
		fmt.Fprintf(a.out, "%d. %s  class %d %s (%s)  durability: %.1f/%.1f  repairs: %d (spent %.0f)\n",
			i+1, ar.Name, ar.ArmorClass, ar.Material, ar.Kind,
			ar.CurrentDurability, ar.MaxDurability(), len(ar.RepairHistory), ar.RepairCost)
	}
	return nil
}

// pickArmor prompts for an armor piece by list position.
func (a *App) pickArmor(ctx context.Context) (*models.Armor, error) {
	p, err := a.service.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}
	if len(p.Armors) == 0 {
		return nil, fmt.Errorf("no armor yet, use 'addarmor'")
	}
	options := make([]string, 0, len(p.Armors))
	for i := range p.Armors {
		options = append(options, fmt.Sprintf("%s (class %d)", p.Armors[i].Name, p.Armors[i].ArmorClass))
	}
	idx, err := GetChoice(a.reader, "Armor:", options, a.out)
	if err != nil {
		return nil, err
	}
	return &p.Armors[idx], nil
}

// pickMaterial prompts for one of the known armor materials.
func (a *App) pickMaterial() (models.Material, error) {
	mats := models.Materials()
	options := make([]string, 0, len(mats))
	for _, m := range mats {
		options = append(options, string(m))
	}
	idx, err := GetChoice(a.reader, "Material:", options, a.out)
	if err != nil {
		return "", err
	}
	return mats[idx], nil
}

// pickKind prompts for the armor kind.
func (a *App) pickKind() (models.ArmorType, error) {
	kinds := []models.ArmorType{models.ArmorTypeBody, models.ArmorTypeRig}
	idx, err := GetChoice(a.reader, "Kind:", []string{string(kinds[0]), string(kinds[1])}, a.out)
	if err != nil {
		return "", err
	}
	return kinds[idx], nil
}

// promptArmor collects the descriptive armor fields, prefilling from base.
func (a *App) promptArmor(base models.Armor) (models.Armor, error) {
	out := base

	name, err := GetSimpleText(a.reader, "Armor name", a.out)
	if err != nil {
		return out, err
	}
	if name != "" {
		out.Name = name
	}

	class, err := GetInt(a.reader, "Armor class (1-6)", a.out)
	if err != nil {
		return out, err
	}
	out.ArmorClass = int(class)

	out.Material, err = a.pickMaterial()
	if err != nil {
		return out, err
	}
	out.Kind, err = a.pickKind()
	if err != nil {
		return out, err
	}

	out.NewDurability, err = GetFloatDefault(a.reader, "New durability", models.DefaultNewDurability, a.out)
	if err != nil {
		return out, err
	}
	out.LikeNewDurability, err = GetFloatDefault(a.reader, "Like-new durability", models.DefaultLikeNewDurability, a.out)
	if err != nil {
		return out, err
	}
	out.WornDurability, err = GetFloatDefault(a.reader, "Worn durability", models.DefaultWornDurability, a.out)
	if err != nil {
		return out, err
	}
	return out, nil
}

// AddArmor prompts for the armor fields and records the piece.
func (a *App) AddArmor(ctx context.Context) error {
	armor, err := a.promptArmor(models.Armor{})
	if err != nil {
		a.printErr(err)
		return err
	}
	added, err := a.service.AddArmor(ctx, armor)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Added %s\n", added.Name)
	return nil
}

// EditArmor re-prompts the descriptive fields of an existing piece.
func (a *App) EditArmor(ctx context.Context) error {
	existing, err := a.pickArmor(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	armor, err := a.promptArmor(*existing)
	if err != nil {
		a.printErr(err)
		return err
	}
	if err := a.service.EditArmor(ctx, armor); err != nil {
		a.printErr(err)
		return err
	}
	return nil
}

// DeleteArmor removes an armor piece after confirmation.
func (a *App) DeleteArmor(ctx context.Context) error {
	armor, err := a.pickArmor(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %s? (y/n)", armor.Name), a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	if confirm != "y" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.service.DeleteArmor(ctx, armor.ID); err != nil {
		a.printErr(err)
		return err
	}
	return nil
}

// pickTier prompts for a repair tier, labelled with the vendor names.
func (a *App) pickTier() (models.RepairTier, error) {
	tiers := []models.RepairTier{models.RepairTierLow, models.RepairTierMedium, models.RepairTierHigh}
	options := make([]string, 0, len(tiers))
	for _, tier := range tiers {
		options = append(options, fmt.Sprintf("%s (%s)", models.RepairNPCName(tier), tier))
	}
	idx, err := GetChoice(a.reader, "Repair service:", options, a.out)
	if err != nil {
		return "", err
	}
	return tiers[idx], nil
}

// Repair runs the repair calculator for every tier without recording anything.
func (a *App) Repair(ctx context.Context) error {
	armor, err := a.pickArmor(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	durability, err := GetFloatDefault(a.reader, "Current durability", armor.CurrentDurability, a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	for _, tier := range []models.RepairTier{models.RepairTierLow, models.RepairTierMedium, models.RepairTierHigh} {
		proj, err := a.service.ProjectRepair(ctx, armor.ID, durability, tier)
		if err != nil {
			a.printErr(err)
			return err
		}
		fmt.Fprintf(a.out, "%-16s -> %.1f  %s\n", models.RepairNPCName(tier), proj.ResultingDurability, proj.Rating)
	}
	return nil
}

// ApplyRepair records an accepted repair against the armor piece.
func (a *App) ApplyRepair(ctx context.Context) error {
	armor, err := a.pickArmor(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	durability, err := GetFloatDefault(a.reader, "Current durability", armor.CurrentDurability, a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	tier, err := a.pickTier()
	if err != nil {
		a.printErr(err)
		return err
	}
	cost, err := GetFloat(a.reader, "Repair cost", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	proj, err := a.service.ApplyRepair(ctx, armor.ID, durability, tier, cost)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Repaired to %.1f (%s)\n", proj.ResultingDurability, proj.Rating)
	return nil
}
