package game

// MoveResult classifies the outcome of a movement attempt. Every value
// except MoveOK is an expected rejection of invalid input or a blocked
// path, never a fault. Rejections produce no state change.
type MoveResult int

const (
	MoveOK           MoveResult = iota
	MoveNotSelected             // unit is not the currently selected unit
	MoveAlreadyActed            // unit already acted this phase
	MoveNotAdjacent             // target is not a 4-connected neighbour
	MoveOutOfBounds             // target lies outside the grid
	MoveOccupied                // another unit holds the target tile
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveNotSelected:
		return "not_selected"
	case MoveAlreadyActed:
		return "already_acted"
	case MoveNotAdjacent:
		return "not_adjacent"
	case MoveOutOfBounds:
		return "out_of_bounds"
	case MoveOccupied:
		return "occupied"
	default:
		return "unknown"
	}
}

// Accepted reports whether the move was applied.
func (r MoveResult) Accepted() bool {
	return r == MoveOK
}

// TryMove attempts to move the unit with the given ID to target. Checks
// run in a fixed order and the first failure short-circuits:
//
//  1. the unit must be the selected unit
//  2. the unit must not have acted this phase
//  3. target must be 4-adjacent to the unit's position
//  4. target must be inside the grid
//  5. target must be unoccupied (either faction)
//
// On success the unit's position is updated and its turn status marked.
// This is the only path by which a player unit's position changes.
func (s *Sim) TryMove(id UnitID, target GridPosition) MoveResult {
	u := s.unitByID(id)
	if u == nil || s.selection.SelectedID() != id {
		return MoveNotSelected
	}
	if u.Status.HasActed {
		return MoveAlreadyActed
	}
	if u.Pos.DistanceTo(target) != 1 {
		return MoveNotAdjacent
	}
	if !s.grid.InBounds(target) {
		return MoveOutOfBounds
	}
	if s.unitAt(target) != nil {
		return MoveOccupied
	}

	u.Pos = target
	u.Status.HasActed = true
	u.Status.HasMoved = true
	return MoveOK
}

// ValidMoves returns the destinations the unit could move to right now:
// the in-bounds, unoccupied 4-neighbours of its position. It is a dry-run
// of TryMove's bounds and collision rules and mutates nothing. A unit
// that has already acted has no valid moves.
func (s *Sim) ValidMoves(id UnitID) []GridPosition {
	u := s.unitByID(id)
	if u == nil || u.Status.HasActed {
		return nil
	}
	var out []GridPosition
	for _, adj := range u.Pos.Adjacent() {
		if !s.grid.InBounds(adj) {
			continue
		}
		if s.unitAt(adj) != nil {
			continue
		}
		out = append(out, adj)
	}
	return out
}
