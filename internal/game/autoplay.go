package game

import "math/rand"

// AutoPilot issues click inputs for player units so headless tools can
// run complete matches without a human. It drives the same public input
// boundary a real player uses: one click per tick, first to select a
// unit, then to move it.
//
// Policy: each unacted player unit takes the adjacent step that most
// reduces Manhattan distance to the nearest enemy; if no step improves,
// it takes any legal step. Ties break by seeded RNG so different seeds
// explore different matches. A unit with no legal step at all is left
// alone; if every remaining unit is boxed in the phase cannot complete,
// and callers bound their runs with RunUntil.
type AutoPilot struct {
	rng *rand.Rand
}

// NewAutoPilot creates a pilot with a deterministic seed.
func NewAutoPilot(seed int64) *AutoPilot {
	return &AutoPilot{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- simulation driver, not crypto
}

// Next returns the input for the coming tick. Outside the player phase
// it returns an empty input and lets the phase timer run.
func (ap *AutoPilot) Next(s *Sim) Input {
	if s.Phase() != PhasePlayer {
		return Input{}
	}

	u := ap.nextActor(s)
	if u == nil {
		return Input{}
	}

	// Select first; the move click follows on a later tick.
	if s.Selection().SelectedID() != u.ID {
		return ClickAt(u.Pos)
	}

	target, ok := nearestOf(u.Pos, s.Units(), FactionEnemy)
	moves := s.ValidMoves(u.ID)
	if len(moves) == 0 {
		return Input{}
	}
	if !ok {
		return ClickAt(moves[ap.rng.Intn(len(moves))])
	}

	cur := u.Pos.DistanceTo(target)
	var best []GridPosition
	bestDist := cur
	for _, m := range moves {
		d := m.DistanceTo(target)
		if d < bestDist {
			bestDist = d
			best = best[:0]
			best = append(best, m)
		} else if d == bestDist && len(best) > 0 {
			best = append(best, m)
		}
	}
	if len(best) == 0 {
		// Nothing improves; sidestep to keep the phase moving.
		best = moves
	}
	return ClickAt(best[ap.rng.Intn(len(best))])
}

// nextActor returns the first player unit that has not acted this phase.
func (ap *AutoPilot) nextActor(s *Sim) *Unit {
	for _, u := range s.Units() {
		if u.Kind.Selectable() && !u.Status.HasActed {
			return u
		}
	}
	return nil
}

// nearestOf returns the position of the closest unit of faction f to
// from, by Manhattan distance. First seen wins ties.
func nearestOf(from GridPosition, units []*Unit, f Faction) (GridPosition, bool) {
	var best GridPosition
	bestDist := 0
	found := false
	for _, u := range units {
		if u.Faction() != f {
			continue
		}
		d := from.DistanceTo(u.Pos)
		if !found || d < bestDist {
			best = u.Pos
			bestDist = d
			found = true
		}
	}
	return best, found
}
