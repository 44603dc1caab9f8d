package game

// Phase is one state of the two-phase turn state machine.
type Phase int

const (
	PhasePlayer Phase = iota // player's units move via selection + clicks
	PhaseEnemy               // AI moves enemy units
)

func (p Phase) String() string {
	switch p {
	case PhasePlayer:
		return "player_turn"
	case PhaseEnemy:
		return "enemy_turn"
	default:
		return "unknown"
	}
}

// Faction returns the faction that acts during this phase.
func (p Phase) Faction() Faction {
	if p == PhasePlayer {
		return FactionPlayer
	}
	return FactionEnemy
}

// TurnManager is presentation-facing bookkeeping: the monotonically
// increasing turn counter and the active faction. The phase state
// machine is authoritative; the manager mirrors its transitions.
type TurnManager struct {
	CurrentTurn   int
	ActiveFaction Faction
}

// NewTurnManager starts at turn 1 with the player active.
func NewTurnManager() TurnManager {
	return TurnManager{CurrentTurn: 1, ActiveFaction: FactionPlayer}
}

// NextTurn flips the active faction. The counter increments only on the
// enemy-to-player wrap, so one "turn" spans both phases.
func (tm *TurnManager) NextTurn() {
	if tm.ActiveFaction == FactionPlayer {
		tm.ActiveFaction = FactionEnemy
		return
	}
	tm.ActiveFaction = FactionPlayer
	tm.CurrentTurn++
}

// phaseTimer gates the enemy-to-player transition so the enemy phase has
// visible pacing even when every AI move resolves on the first tick.
// Advanced by delta-time accumulation, never by blocking. Once the delay
// has accumulated the timer stays elapsed until reset.
type phaseTimer struct {
	delay   float64 // seconds the enemy phase must last
	elapsed float64 // accumulated seconds since phase entry
}

func (pt *phaseTimer) advance(dt float64) {
	pt.elapsed += dt
}

func (pt *phaseTimer) done() bool {
	return pt.elapsed >= pt.delay
}

func (pt *phaseTimer) reset() {
	pt.elapsed = 0
}

// allActed reports whether every unit of the faction has acted. A
// faction with no units counts as fully acted, which lets the machine
// keep alternating in degenerate rosters.
func (s *Sim) allActed(f Faction) bool {
	for _, u := range s.units {
		if u.Faction() == f && !u.Status.HasActed {
			return false
		}
	}
	return true
}

// resetTurnStatus clears turn status for every unit of the faction whose
// phase is beginning.
func (s *Sim) resetTurnStatus(f Faction) {
	for _, u := range s.units {
		if u.Faction() == f {
			u.Status = TurnStatus{}
		}
	}
}

// checkPhaseEnd evaluates the transition conditions and, when one fires,
// performs the hand-off: flip the phase, mirror it into the TurnManager,
// and run the entry hook for the incoming phase.
//
// Player -> Enemy: all player units acted. No other condition.
// Enemy -> Player: the phase timer has elapsed AND all enemy units acted.
// The timer alone never ends the phase; a late-acting unit simply delays
// the transition past the timer.
func (s *Sim) checkPhaseEnd() {
	switch s.phase {
	case PhasePlayer:
		if s.allActed(FactionPlayer) {
			s.enterPhase(PhaseEnemy)
		}
	case PhaseEnemy:
		if s.timer.done() && s.allActed(FactionEnemy) {
			s.enterPhase(PhasePlayer)
		}
	}
}

// enterPhase switches to next and runs its entry hook. Entering the
// player phase resets player turn status; entering the enemy phase
// resets enemy turn status and restarts the phase timer. The timer is
// restarted on every entry, it never persists across phases.
func (s *Sim) enterPhase(next Phase) {
	prev := s.phase
	s.phase = next
	s.turns.NextTurn()

	switch next {
	case PhasePlayer:
		s.resetTurnStatus(FactionPlayer)
	case PhaseEnemy:
		s.timer.reset()
		s.resetTurnStatus(FactionEnemy)
	}

	s.log.Add(s.tick, "--", "--", "phase", "change", prev.String()+" -> "+next.String(), float64(s.turns.CurrentTurn))
}
