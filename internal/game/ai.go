package game

// runEnemyPhase moves every yet-unacted enemy unit one greedy step toward
// the nearest player unit. It runs once per tick during the enemy phase.
//
// All unit positions are snapshotted before any unit moves, so every AI
// decision this tick sees the same consistent world: a unit cannot slip
// into a tile another unit vacates in the same pass. Destinations chosen
// this pass are additionally claimed, so two units that share a best
// candidate cannot both take it; with the snapshot alone they would
// collide.
//
// Every processed unit is marked as acted whether or not it moved: an
// enemy unit acts at most once per enemy phase. Processing follows
// roster order, which keeps runs deterministic.
func (s *Sim) runEnemyPhase() {
	type occKey = GridPosition

	// Pre-pass snapshot of all occupied tiles, by unit.
	occupied := make(map[occKey]UnitID, len(s.units))
	for _, u := range s.units {
		occupied[u.Pos] = u.ID
	}
	claimed := make(map[occKey]bool)

	var players []*Unit
	for _, u := range s.units {
		if u.Kind.Selectable() {
			players = append(players, u)
		}
	}

	for _, u := range s.units {
		if !u.Kind.AIControlled() || u.Status.HasActed {
			continue
		}

		target, ok := s.nearestPlayer(u, players)
		if !ok {
			// No player units left to pursue.
			u.Status.HasActed = true
			s.log.Add(s.tick, u.Label, u.Faction().String(), "ai", "hold", "no targets", 0)
			continue
		}

		best, found := s.bestStep(u, target.Pos, occupied, claimed)
		if found {
			from := u.Pos
			claimed[best] = true
			u.Pos = best
			u.Status.HasMoved = true
			s.log.Add(s.tick, u.Label, u.Faction().String(), "ai", "move",
				from.String()+" -> "+best.String()+" pursuing "+target.Label, float64(best.DistanceTo(target.Pos)))
		} else {
			s.log.Add(s.tick, u.Label, u.Faction().String(), "ai", "hold",
				"no improving step toward "+target.Label, float64(u.Pos.DistanceTo(target.Pos)))
		}
		u.Status.HasActed = true
	}
}

// nearestPlayer returns the player unit at minimum Manhattan distance
// from u. Ties resolve to the first seen in roster order.
func (s *Sim) nearestPlayer(u *Unit, players []*Unit) (*Unit, bool) {
	var best *Unit
	bestDist := 0
	for _, p := range players {
		d := u.Pos.DistanceTo(p.Pos)
		if best == nil || d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best, best != nil
}

// bestStep picks the 4-neighbour of u that strictly reduces Manhattan
// distance to target, preferring the smallest resulting distance.
// Neighbours that are out of bounds, occupied in the pre-pass snapshot
// (by any unit other than u itself), or already claimed this pass are
// discarded. Returns false if no neighbour strictly improves.
func (s *Sim) bestStep(u *Unit, target GridPosition, occupied map[GridPosition]UnitID, claimed map[GridPosition]bool) (GridPosition, bool) {
	bestDist := u.Pos.DistanceTo(target)
	var best GridPosition
	found := false

	for _, adj := range u.Pos.Adjacent() {
		if !s.grid.InBounds(adj) {
			continue
		}
		if id, ok := occupied[adj]; ok && id != u.ID {
			continue
		}
		if claimed[adj] {
			continue
		}
		if d := adj.DistanceTo(target); d < bestDist {
			bestDist = d
			best = adj
			found = true
		}
	}
	return best, found
}
