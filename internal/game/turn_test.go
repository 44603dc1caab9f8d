package game

import "testing"

func TestTurnManager_CounterIncrementsOnWrapOnly(t *testing.T) {
	tm := NewTurnManager()
	if tm.CurrentTurn != 1 || tm.ActiveFaction != FactionPlayer {
		t.Fatalf("fresh manager = %+v, want turn 1, player active", tm)
	}

	tm.NextTurn() // player -> enemy
	if tm.CurrentTurn != 1 || tm.ActiveFaction != FactionEnemy {
		t.Fatalf("after first flip = %+v, counter must not move yet", tm)
	}

	tm.NextTurn() // enemy -> player, wrap
	if tm.CurrentTurn != 2 || tm.ActiveFaction != FactionPlayer {
		t.Fatalf("after wrap = %+v, want turn 2, player active", tm)
	}
}

func TestPhase_PlayerHoldsUntilAllActed(t *testing.T) {
	s := New(WithPlayerUnit(2, 2), WithPlayerUnit(3, 3), WithEnemyUnit(8, 8))

	s.Step(Input{}, 0.1)
	if s.Phase() != PhasePlayer {
		t.Fatal("should start in the player phase")
	}

	// First unit acts; one still pending.
	s.Step(ClickAt(Pos(2, 2)), 0.1)
	s.Step(ClickAt(Pos(2, 3)), 0.1)
	if s.Phase() != PhasePlayer {
		t.Fatal("phase must hold while any player unit is unacted")
	}

	// Second unit acts; transition fires exactly now.
	s.Step(ClickAt(Pos(3, 3)), 0.1)
	s.Step(ClickAt(Pos(3, 4)), 0.1)
	if s.Phase() != PhaseEnemy {
		t.Fatal("phase should flip once every player unit has acted")
	}
	if s.Turns().ActiveFaction != FactionEnemy {
		t.Fatal("turn manager should mirror the phase transition")
	}
}

func TestPhase_EnemyNeedsTimerAndAllActed(t *testing.T) {
	s := New(
		WithEnemyPhaseDelay(1.0),
		WithPlayerUnit(0, 0),
		WithEnemyUnit(9, 9),
	)

	// Burn the player phase with the single unit.
	s.Step(ClickAt(Pos(0, 0)), 0.125)
	s.Step(ClickAt(Pos(0, 1)), 0.125)
	if s.Phase() != PhaseEnemy {
		t.Fatal("setup: expected enemy phase")
	}

	// The AI acts on the first enemy tick, but the timer gate holds.
	s.Step(Input{}, 0.125)
	if !s.allActed(FactionEnemy) {
		t.Fatal("enemy unit should have acted on the first enemy tick")
	}
	if s.Phase() != PhaseEnemy {
		t.Fatal("phase must hold until the timer elapses")
	}

	// 0.125s accumulated so far; run up to 0.875s.
	s.RunTicks(6, 0.125)
	if s.Phase() != PhaseEnemy {
		t.Fatal("phase must still hold just short of the delay")
	}
	s.Step(Input{}, 0.125)
	if s.Phase() != PhasePlayer {
		t.Fatal("phase should flip once the timer elapses with all enemies acted")
	}
	if s.Turns().CurrentTurn != 2 {
		t.Fatalf("turn counter = %d, want 2 after the wrap", s.Turns().CurrentTurn)
	}
}

func TestPhase_TimerAloneDoesNotEndEnemyPhase(t *testing.T) {
	s := New(WithEnemyPhaseDelay(0.5), WithPlayerUnit(0, 0), WithEnemyUnit(9, 9))
	s.enterPhase(PhaseEnemy)

	// Elapse the timer without letting the AI act.
	s.timer.advance(2.0)
	s.checkPhaseEnd()
	if s.Phase() != PhaseEnemy {
		t.Fatal("an elapsed timer with unacted enemies must not end the phase")
	}

	s.UnitByLabel("E0").Status.HasActed = true
	s.checkPhaseEnd()
	if s.Phase() != PhasePlayer {
		t.Fatal("phase should end once the last enemy has acted")
	}
}

func TestPhase_ActedAloneDoesNotEndEnemyPhase(t *testing.T) {
	s := New(WithEnemyPhaseDelay(5.0), WithPlayerUnit(0, 0), WithEnemyUnit(9, 9))
	s.enterPhase(PhaseEnemy)

	s.UnitByLabel("E0").Status.HasActed = true
	s.timer.advance(0.1)
	s.checkPhaseEnd()
	if s.Phase() != PhaseEnemy {
		t.Fatal("all-acted with a running timer must not end the phase")
	}
}

func TestPhase_TimerRestartsOnEveryEntry(t *testing.T) {
	s := New(WithEnemyPhaseDelay(1.0), WithPlayerUnit(0, 0), WithEnemyUnit(9, 9))

	s.enterPhase(PhaseEnemy)
	s.timer.advance(3.0)
	s.UnitByLabel("E0").Status.HasActed = true
	s.checkPhaseEnd()
	if s.Phase() != PhasePlayer {
		t.Fatal("setup: expected player phase")
	}

	// Re-enter: accumulated time must not leak across phases.
	s.enterPhase(PhaseEnemy)
	if s.timer.done() {
		t.Fatal("timer must restart on every enemy phase entry")
	}
}

func TestPhase_EntryResetsOwningFactionOnly(t *testing.T) {
	s := New(WithPlayerUnit(0, 0), WithPlayerUnit(2, 2), WithEnemyUnit(9, 9))

	p0 := s.UnitByLabel("P0")
	p1 := s.UnitByLabel("P1")
	e0 := s.UnitByLabel("E0")
	p0.Status.HasActed = true
	p1.Status.HasActed = true
	e0.Status = TurnStatus{HasActed: true, HasMoved: true}

	s.enterPhase(PhaseEnemy)
	if !p0.Status.HasActed || !p1.Status.HasActed {
		t.Fatal("entering the enemy phase must not touch player status")
	}
	if e0.Status.HasActed || e0.Status.HasMoved {
		t.Fatal("entering the enemy phase should reset enemy status")
	}

	e0.Status.HasActed = true
	s.enterPhase(PhasePlayer)
	if p0.Status.HasActed || p1.Status.HasActed {
		t.Fatal("entering the player phase should reset player status")
	}
	if !e0.Status.HasActed {
		t.Fatal("entering the player phase must not touch enemy status")
	}
}

func TestPhase_NoEnemiesStillPaces(t *testing.T) {
	// A roster with no enemy units must keep alternating: the enemy phase
	// is gated only by its timer.
	s := New(WithEnemyPhaseDelay(0.3), WithPlayerUnit(0, 0))

	s.Step(ClickAt(Pos(0, 0)), 0.1)
	s.Step(ClickAt(Pos(0, 1)), 0.1)
	if s.Phase() != PhaseEnemy {
		t.Fatal("setup: expected enemy phase")
	}

	tick := s.RunUntil(func(s *Sim) bool { return s.Phase() == PhasePlayer }, 10, 0.1)
	if tick == -1 {
		t.Fatal("empty enemy roster should hand the turn back after the delay")
	}
}
