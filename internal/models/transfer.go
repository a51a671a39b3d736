package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/raidtracker/internal/common"
)

// ExportVersion is the armor transfer payload version written on export.
const ExportVersion = "1.0"

// ExportPayload wraps armor pieces in the shareable transfer format.
type ExportPayload struct {
	Version    string          `json:"version"`
	ExportDate time.Time       `json:"exportDate"`
	Armors     []ArmorTransfer `json:"armors"`
}

// ArmorTransfer is the portable projection of an Armor. Identity and
// instance-local fields (id, purchase date, repair cost and history) are
// deliberately absent: importing always creates fresh instances.
//
// ArmorClass is a pointer so a missing field is distinguishable from class 0
// when validating imports.
type ArmorTransfer struct {
	Name              string            `json:"name"`
	ArmorClass        *int              `json:"armorClass"`
	ProtectedAreas    []ProtectedArea   `json:"protectedAreas"`
	Material          Material          `json:"material"`
	MovementSpeed     string            `json:"movementSpeed"`
	Ergonomics        string            `json:"ergonomics"`
	Weight            string            `json:"weight"`
	NewDurability     float64           `json:"newDurability"`
	LikeNewDurability float64           `json:"likeNewDurability"`
	WornDurability    float64           `json:"wornDurability"`
	CurrentDurability float64           `json:"currentDurability"`
	ArmorType         ArmorType         `json:"armorType"`
	RepairDeductions  *RepairDeductions `json:"repairDeductions"`
}

// Transfer projects the armor to its portable shape.
func (a *Armor) Transfer() ArmorTransfer {
	class := a.ArmorClass
	return ArmorTransfer{
		Name:              a.Name,
		ArmorClass:        &class,
		ProtectedAreas:    a.ProtectedAreas,
		Material:          a.Material,
		MovementSpeed:     a.MovementSpeed,
		Ergonomics:        a.Ergonomics,
		Weight:            a.Weight,
		NewDurability:     a.NewDurability,
		LikeNewDurability: a.LikeNewDurability,
		WornDurability:    a.WornDurability,
		CurrentDurability: a.CurrentDurability,
		ArmorType:         a.Kind,
		RepairDeductions:  a.RepairDeductions,
	}
}

// ExportArmors wraps the profile's armor pieces in a versioned payload.
func ExportArmors(armors []Armor, now time.Time) ExportPayload {
	out := make([]ArmorTransfer, 0, len(armors))
	for i := range armors {
		out = append(out, armors[i].Transfer())
	}
	return ExportPayload{Version: ExportVersion, ExportDate: now, Armors: out}
}

// ValidateTransfer checks the fields an import entry must carry. Violations
// wrap common.ErrField; the import batch is rejected as a whole.
func ValidateTransfer(t *ArmorTransfer) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name", common.ErrField)
	}
	if strings.TrimSpace(string(t.Material)) == "" {
		return fmt.Errorf("%w: material", common.ErrField)
	}
	if t.ArmorClass == nil {
		return fmt.Errorf("%w: armorClass", common.ErrField)
	}
	return nil
}

// ToArmor materializes a transfer entry as a brand-new armor instance:
// fresh id, purchase date set to now, zero repair cost, empty repair history.
// Optional fields absent from the payload get the standard defaults.
func (t *ArmorTransfer) ToArmor(id string, now time.Time) Armor {
	a := Armor{
		ID:                id,
		Name:              t.Name,
		ArmorClass:        *t.ArmorClass,
		ProtectedAreas:    t.ProtectedAreas,
		Material:          t.Material,
		MovementSpeed:     t.MovementSpeed,
		Ergonomics:        t.Ergonomics,
		Weight:            t.Weight,
		NewDurability:     t.NewDurability,
		LikeNewDurability: t.LikeNewDurability,
		WornDurability:    t.WornDurability,
		CurrentDurability: t.CurrentDurability,
		Kind:              t.ArmorType,
		RepairCost:        0,
		PurchaseDate:      now,
		RepairHistory:     []RepairEntry{},
		RepairDeductions:  t.RepairDeductions,
	}
	if a.NewDurability == 0 {
		a.NewDurability = DefaultNewDurability
	}
	if a.LikeNewDurability == 0 {
		a.LikeNewDurability = DefaultLikeNewDurability
	}
	if a.WornDurability == 0 {
		a.WornDurability = DefaultWornDurability
	}
	NormalizeArmor(&a)
	return a
}
