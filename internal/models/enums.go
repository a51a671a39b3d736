package models

// Location is a raid map a key belongs to.
type Location string

const (
	LocationFarm       Location = "Farm"
	LocationArmory     Location = "Armory"
	LocationTVStation  Location = "TV Station"
	LocationNorthridge Location = "Northridge"
)

// Locations lists every known raid location in display order.
func Locations() []Location {
	return []Location{LocationFarm, LocationArmory, LocationTVStation, LocationNorthridge}
}

// KnownLocation reports whether l is one of the supported raid locations.
func KnownLocation(l Location) bool {
	switch l {
	case LocationFarm, LocationArmory, LocationTVStation, LocationNorthridge:
		return true
	}
	return false
}

// ArmorType distinguishes standalone body armor from armored rigs.
type ArmorType string

const (
	ArmorTypeBody ArmorType = "Body Armor"
	ArmorTypeRig  ArmorType = "Armored Rig"
)

// KnownArmorType reports whether t is a supported armor kind.
func KnownArmorType(t ArmorType) bool {
	return t == ArmorTypeBody || t == ArmorTypeRig
}

// Material is an armor plate material.
type Material string

const (
	MaterialAramid        Material = "Aramid"
	MaterialHardenedSteel Material = "Hardened Steel"
	MaterialPolyethylene  Material = "Polyethylene"
	MaterialAluminum      Material = "Aluminum"
	MaterialComposite     Material = "Composite"
	MaterialTitanium      Material = "Titanium"
	MaterialCeramic       Material = "Ceramic"
)

// Materials lists every known armor material.
func Materials() []Material {
	return []Material{
		MaterialAramid, MaterialHardenedSteel, MaterialPolyethylene,
		MaterialAluminum, MaterialComposite, MaterialTitanium, MaterialCeramic,
	}
}

// ProtectedArea is a body zone an armor piece covers.
type ProtectedArea string

const (
	AreaChest        ProtectedArea = "Chest"
	AreaShoulder     ProtectedArea = "Shoulder"
	AreaUpperAbdomen ProtectedArea = "Upper Abdomen"
	AreaLowerAbdomen ProtectedArea = "Lower Abdomen"
)

// ProtectedAreas lists every known protected area.
func ProtectedAreas() []ProtectedArea {
	return []ProtectedArea{AreaChest, AreaShoulder, AreaUpperAbdomen, AreaLowerAbdomen}
}

// RepairTier selects one of the three repair services. Tiers are named after
// service quality; each maps to a fixed NPC in game.
type RepairTier string

const (
	RepairTierLow    RepairTier = "low"
	RepairTierMedium RepairTier = "medium"
	RepairTierHigh   RepairTier = "high"
)

// RepairNPCName returns the in-game vendor offering the given repair tier.
func RepairNPCName(t RepairTier) string {
	switch t {
	case RepairTierLow:
		return "Joel Garrison"
	case RepairTierMedium:
		return "Deke Vinson"
	case RepairTierHigh:
		return "Randall Fisher"
	}
	return ""
}

// KnownRepairTier reports whether t is one of the three repair tiers.
func KnownRepairTier(t RepairTier) bool {
	return t == RepairTierLow || t == RepairTierMedium || t == RepairTierHigh
}

// Icon is a profile avatar handle. The set of valid icons is fixed; the
// rendering layer maps each name to its glyph.
type Icon string

const (
	IconUser      Icon = "User"
	IconCrown     Icon = "Crown"
	IconShield    Icon = "Shield"
	IconStar      Icon = "Star"
	IconZap       Icon = "Zap"
	IconTarget    Icon = "Target"
	IconTrophy    Icon = "Trophy"
	IconGamepad   Icon = "Gamepad2"
	IconSword     Icon = "Sword"
	IconCrosshair Icon = "Crosshair"
	IconSkull     Icon = "Skull"
	IconHeart     Icon = "Heart"
	IconDiamond   Icon = "Diamond"
	IconFlame     Icon = "Flame"
	IconRocket    Icon = "Rocket"
)

// Icons lists every selectable profile icon.
func Icons() []Icon {
	return []Icon{
		IconUser, IconCrown, IconShield, IconStar, IconZap, IconTarget,
		IconTrophy, IconGamepad, IconSword, IconCrosshair, IconSkull,
		IconHeart, IconDiamond, IconFlame, IconRocket,
	}
}

// NormalizeIcon maps unknown icon names to the default avatar.
func NormalizeIcon(i Icon) Icon {
	for _, known := range Icons() {
		if i == known {
			return i
		}
	}
	return IconUser
}
