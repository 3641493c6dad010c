package house

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// House is one of the four teams a player is permanently assigned to.
type House string

const (
	Gryffindor House = "Gryffindor"
	Hufflepuff House = "Hufflepuff"
	Ravenclaw  House = "Ravenclaw"
	Slytherin  House = "Slytherin"
)

// All returns the houses in their fixed enumeration order. Tie-breaking in
// the sorting ceremony and key ordering in persisted records both depend on
// this order, so it must never change.
func All() []House {
	return []House{Gryffindor, Hufflepuff, Ravenclaw, Slytherin}
}

// FromKey resolves a storage key back to a House. Returns false for unknown keys.
func FromKey(key string) (House, bool) {
	for _, h := range All() {
		if h.Key() == key {
			return h, true
		}
	}
	return "", false
}

// Key returns the lower-case key used in persisted records.
func (h House) Key() string {
	switch h {
	case Gryffindor:
		return "gryffindor"
	case Hufflepuff:
		return "hufflepuff"
	case Ravenclaw:
		return "ravenclaw"
	case Slytherin:
		return "slytherin"
	default:
		return ""
	}
}

// Color returns the house's banner color.
func (h House) Color() color.Color {
	switch h {
	case Gryffindor:
		return lipgloss.Color("#B91C1C") // Scarlet
	case Hufflepuff:
		return lipgloss.Color("#EAB308") // Gold
	case Ravenclaw:
		return lipgloss.Color("#3B82F6") // Blue
	case Slytherin:
		return lipgloss.Color("#15803D") // Emerald
	default:
		return lipgloss.Color("#94A3B8")
	}
}

// Emblem returns the display glyph for the house.
func (h House) Emblem() string {
	switch h {
	case Gryffindor:
		return "🦁"
	case Hufflepuff:
		return "🦡"
	case Ravenclaw:
		return "🦅"
	case Slytherin:
		return "🐍"
	default:
		return "🏰"
	}
}

// Trait returns a short flavor line shown on the assignment screen.
func (h House) Trait() string {
	switch h {
	case Gryffindor:
		return "Daring, nerve, and chivalry"
	case Hufflepuff:
		return "Hard work, patience, and loyalty"
	case Ravenclaw:
		return "Wit, learning, and wisdom"
	case Slytherin:
		return "Ambition, cunning, and resourcefulness"
	default:
		return ""
	}
}
