package game

import "fmt"

// Faction distinguishes the player's side from the opposing force.
// Fixed per unit at creation, never changes.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Opponent returns the other faction.
func (f Faction) Opponent() Faction {
	if f == FactionPlayer {
		return FactionEnemy
	}
	return FactionPlayer
}

// UnitKind tags a unit's role. Capabilities (selectable, AI-controlled)
// derive from the kind rather than from attachable markers.
type UnitKind int

const (
	KindPlayer UnitKind = iota // human-commanded unit
	KindEnemy                  // AI-controlled unit
)

func (k UnitKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Faction returns the faction implied by the kind.
func (k UnitKind) Faction() Faction {
	if k == KindPlayer {
		return FactionPlayer
	}
	return FactionEnemy
}

// Selectable reports whether units of this kind respond to selection clicks.
func (k UnitKind) Selectable() bool {
	return k == KindPlayer
}

// AIControlled reports whether units of this kind move themselves during
// the enemy phase.
func (k UnitKind) AIControlled() bool {
	return k == KindEnemy
}

// UnitID identifies a unit within one simulation run. Zero is never a
// valid ID, so it doubles as the "no unit" sentinel in weak references.
type UnitID int

// NoUnit is the absent-unit sentinel.
const NoUnit UnitID = 0

// TurnStatus tracks what a unit has done in the current phase. Reset for
// a faction's units when that faction's phase begins.
type TurnStatus struct {
	HasActed bool
	HasMoved bool
}

// Stats holds combat attributes. Dormant: present on every unit but not
// consumed by any system in this core.
type Stats struct {
	MaxHP   int
	HP      int
	Attack  int
	Defense int
}

// NewStats creates stats at full health.
func NewStats(maxHP, attack, defense int) Stats {
	return Stats{MaxHP: maxHP, HP: maxHP, Attack: attack, Defense: defense}
}

// Alive reports whether the unit has hit points remaining.
func (s Stats) Alive() bool {
	return s.HP > 0
}

// Unit is one simulated combatant occupying a single grid tile.
type Unit struct {
	ID     UnitID
	Label  string // short display label, e.g. "P0", "E1"
	Kind   UnitKind
	Pos    GridPosition
	Status TurnStatus
	Stats  Stats
}

// Faction returns the unit's faction, derived from its kind.
func (u *Unit) Faction() Faction {
	return u.Kind.Faction()
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s %s@%s", u.Label, u.Kind, u.Pos)
}
