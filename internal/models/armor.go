package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/raidtracker/internal/common"
)

// Default durability thresholds and repair deductions, matching the in-game
// values shipped with the seed armor.
const (
	DefaultNewDurability     = 70.0
	DefaultLikeNewDurability = 60.0
	DefaultWornDurability    = 49.0
)

// DefaultRepairDeductions returns the per-tier durability losses applied when
// no explicit values are known for an armor piece.
func DefaultRepairDeductions() *RepairDeductions {
	return &RepairDeductions{Low: 8.1, Medium: 6.1, High: 4.5}
}

// RepairDeductions holds the durability lost by accepting each repair tier.
type RepairDeductions struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// ForTier returns the deduction for the given tier, 0 for unknown tiers.
func (d *RepairDeductions) ForTier(t RepairTier) float64 {
	switch t {
	case RepairTierLow:
		return d.Low
	case RepairTierMedium:
		return d.Medium
	case RepairTierHigh:
		return d.High
	}
	return 0
}

// RepairEntry records one accepted repair. Entries are append-only and never
// mutated after creation.
type RepairEntry struct {
	Date               time.Time `json:"date"`
	Cost               float64   `json:"cost"`
	DurabilityRestored float64   `json:"durabilityRestored"`
}

// Armor is a durability-tracked equipment piece. The three durability
// thresholds descend: new >= like-new >= worn.
//
// The JSON field for Kind is "condition" for compatibility with previously
// persisted data; the export payload calls the same value "armorType".
type Armor struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	ArmorClass        int               `json:"armorClass"`
	ProtectedAreas    []ProtectedArea   `json:"protectedAreas"`
	Material          Material          `json:"material"`
	MovementSpeed     string            `json:"movementSpeed"`
	Ergonomics        string            `json:"ergonomics"`
	Weight            string            `json:"weight"`
	NewDurability     float64           `json:"newDurability"`
	LikeNewDurability float64           `json:"likeNewDurability"`
	WornDurability    float64           `json:"wornDurability"`
	CurrentDurability float64           `json:"currentDurability"`
	Kind              ArmorType         `json:"condition"`
	RepairCost        float64           `json:"repairCost"`
	PurchaseDate      time.Time         `json:"purchaseDate"`
	RepairHistory     []RepairEntry     `json:"repairHistory"`
	RepairDeductions  *RepairDeductions `json:"repairDeductions"`
}

// MaxDurability is the ceiling the current durability is clamped against:
// body armor can be restored toward its factory-new value, rigs only toward
// like-new.
func (a *Armor) MaxDurability() float64 {
	if a.Kind == ArmorTypeRig {
		return a.LikeNewDurability
	}
	return a.NewDurability
}

// NormalizeArmor fills in fields older records may lack. It never fails:
// missing repair deductions get the defaults, a missing (zero) current
// durability falls back to the new-durability threshold, missing collections
// become empty, and unknown kinds become body armor.
func NormalizeArmor(a *Armor) {
	if a.RepairDeductions == nil {
		a.RepairDeductions = DefaultRepairDeductions()
	}
	if a.CurrentDurability == 0 {
		a.CurrentDurability = a.NewDurability
	}
	if a.ProtectedAreas == nil {
		a.ProtectedAreas = []ProtectedArea{}
	}
	if a.RepairHistory == nil {
		a.RepairHistory = []RepairEntry{}
	}
	if !KnownArmorType(a.Kind) {
		a.Kind = ArmorTypeBody
	}
}

// ValidateArmor checks the fields required before an armor write or import
// entry is accepted: non-empty name and material, armor class present.
func ValidateArmor(a *Armor) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: armor name is required", common.ErrValidation)
	}
	if strings.TrimSpace(string(a.Material)) == "" {
		return fmt.Errorf("%w: armor material is required", common.ErrValidation)
	}
	if a.ArmorClass < 1 || a.ArmorClass > 6 {
		return fmt.Errorf("%w: armor class must be between 1 and 6", common.ErrValidation)
	}
	return nil
}

// SeedArmor is the armor piece every fresh install starts with.
func SeedArmor(now time.Time) Armor {
	return Armor{
		ID:                "1",
		Name:              "926 Composite Body Armor",
		ArmorClass:        5,
		ProtectedAreas:    []ProtectedArea{AreaChest},
		Material:          MaterialComposite,
		MovementSpeed:     "-4%",
		Ergonomics:        "-3",
		Weight:            "6.20kg",
		NewDurability:     DefaultNewDurability,
		LikeNewDurability: DefaultLikeNewDurability,
		WornDurability:    DefaultWornDurability,
		CurrentDurability: DefaultNewDurability,
		Kind:              ArmorTypeBody,
		RepairCost:        0,
		PurchaseDate:      now,
		RepairHistory:     []RepairEntry{},
		RepairDeductions:  DefaultRepairDeductions(),
	}
}
