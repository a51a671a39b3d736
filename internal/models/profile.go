package models

import "time"

// DefaultProfileID is the id of the profile seeded on first start.
const DefaultProfileID = "default"

// Profile is a named, switchable scope holding one independent set of keys
// and armor pieces. At least one profile always exists; exactly one is
// active at a time.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      Icon      `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
	Keys      []Key     `json:"keys"`
	Armors    []Armor   `json:"armors"`
}

// NormalizeProfile ensures the collections are present and every armor piece
// has its defaults filled in. Applied once at the repository's load boundary
// so downstream code never needs defensive defaulting.
func NormalizeProfile(p *Profile) {
	if p.Keys == nil {
		p.Keys = []Key{}
	}
	if p.Armors == nil {
		p.Armors = []Armor{}
	}
	for i := range p.Armors {
		NormalizeArmor(&p.Armors[i])
	}
	p.Icon = NormalizeIcon(p.Icon)
}

// SeedProfile builds the default profile created on first start (and after a
// full data wipe): no keys, one seed armor.
func SeedProfile(now time.Time) Profile {
	return Profile{
		ID:        DefaultProfileID,
		Name:      "Default Profile",
		Icon:      IconUser,
		CreatedAt: now,
		Keys:      []Key{},
		Armors:    []Armor{SeedArmor(now)},
	}
}

// FindKey returns a pointer to the key with the given id, nil if absent.
func (p *Profile) FindKey(id string) *Key {
	for i := range p.Keys {
		if p.Keys[i].ID == id {
			return &p.Keys[i]
		}
	}
	return nil
}

// FindArmor returns a pointer to the armor with the given id, nil if absent.
func (p *Profile) FindArmor(id string) *Armor {
	for i := range p.Armors {
		if p.Armors[i].ID == id {
			return &p.Armors[i]
		}
	}
	return nil
}
