package game

import "testing"

func TestUnitKind_Capabilities(t *testing.T) {
	if !KindPlayer.Selectable() || KindPlayer.AIControlled() {
		t.Fatal("player units are selectable and not AI controlled")
	}
	if KindEnemy.Selectable() || !KindEnemy.AIControlled() {
		t.Fatal("enemy units are AI controlled and never selectable")
	}
	if KindPlayer.Faction() != FactionPlayer || KindEnemy.Faction() != FactionEnemy {
		t.Fatal("faction should derive from kind")
	}
}

func TestFaction_Opponent(t *testing.T) {
	if FactionPlayer.Opponent() != FactionEnemy || FactionEnemy.Opponent() != FactionPlayer {
		t.Fatal("opponent should flip the faction")
	}
}

func TestStats_Alive(t *testing.T) {
	s := NewStats(10, 3, 1)
	if s.HP != 10 || !s.Alive() {
		t.Fatalf("new stats should start at full health, got %+v", s)
	}
	s.HP = 0
	if s.Alive() {
		t.Fatal("zero HP should not be alive")
	}
}

func TestSim_UnitLabels(t *testing.T) {
	s := New(
		WithPlayerUnit(2, 2),
		WithPlayerUnit(3, 2),
		WithEnemyUnit(6, 7),
		WithEnemyUnit(7, 7),
	)
	for _, want := range []struct {
		label string
		pos   GridPosition
		kind  UnitKind
	}{
		{"P0", Pos(2, 2), KindPlayer},
		{"P1", Pos(3, 2), KindPlayer},
		{"E0", Pos(6, 7), KindEnemy},
		{"E1", Pos(7, 7), KindEnemy},
	} {
		u := s.UnitByLabel(want.label)
		if u == nil {
			t.Fatalf("unit %s not found", want.label)
		}
		if u.Pos != want.pos || u.Kind != want.kind {
			t.Fatalf("unit %s = %s, want %s at %s", want.label, u, want.kind, want.pos)
		}
		if u.Status.HasActed || u.Status.HasMoved {
			t.Fatalf("unit %s should start with a clear turn status", want.label)
		}
	}
}
