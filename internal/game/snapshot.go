package game

// UnitSnapshot is a read-only copy of one unit's observable state.
type UnitSnapshot struct {
	ID       int          `json:"id"`
	Label    string       `json:"label"`
	Kind     string       `json:"kind"`
	Faction  string       `json:"faction"`
	Pos      GridPosition `json:"pos"`
	Selected bool         `json:"selected"`
	HasActed bool         `json:"hasActed"`
	HasMoved bool         `json:"hasMoved"`
	HP       int          `json:"hp"`
	MaxHP    int          `json:"maxHp"`
}

// SimSnapshot is the per-tick read-only view handed to presentation
// collaborators: unit states, the current phase and turn bookkeeping,
// and the valid-move tiles for the selected unit. Building a snapshot
// mutates nothing.
type SimSnapshot struct {
	Tick          int            `json:"tick"`
	Turn          int            `json:"turn"`
	Phase         string         `json:"phase"`
	ActiveFaction string         `json:"activeFaction"`
	GridWidth     int            `json:"gridWidth"`
	GridHeight    int            `json:"gridHeight"`
	Units         []UnitSnapshot `json:"units"`
	ValidMoves    []GridPosition `json:"validMoves,omitempty"`
	Hovered       *GridPosition  `json:"hovered,omitempty"`
}

// Snapshot captures the current simulation state for presentation.
func (s *Sim) Snapshot() SimSnapshot {
	snap := SimSnapshot{
		Tick:          s.tick,
		Turn:          s.turns.CurrentTurn,
		Phase:         s.phase.String(),
		ActiveFaction: s.turns.ActiveFaction.String(),
		GridWidth:     s.grid.Width,
		GridHeight:    s.grid.Height,
	}
	selected := s.selection.SelectedID()
	for _, u := range s.units {
		snap.Units = append(snap.Units, UnitSnapshot{
			ID:       int(u.ID),
			Label:    u.Label,
			Kind:     u.Kind.String(),
			Faction:  u.Faction().String(),
			Pos:      u.Pos,
			Selected: u.ID == selected,
			HasActed: u.Status.HasActed,
			HasMoved: u.Status.HasMoved,
			HP:       u.Stats.HP,
			MaxHP:    u.Stats.MaxHP,
		})
	}
	// Move highlights only make sense while the player is acting.
	if selected != NoUnit && s.phase == PhasePlayer {
		snap.ValidMoves = s.ValidMoves(selected)
	}
	if h, ok := s.selection.Hovered(); ok {
		hov := h
		snap.Hovered = &hov
	}
	return snap
}
