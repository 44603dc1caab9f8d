package game

import (
	"strings"
	"testing"
)

func TestSimLog_FilterAndCount(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "P0", "player", "select", "unit", "selected at (2,2)", 0)
	sl.Add(2, "P0", "player", "move", "ok", "moved to (2,3)", 0)
	sl.Add(3, "E0", "enemy", "ai", "move", "(7,7) -> (6,7) pursuing P0", 9)
	sl.Add(4, "E0", "enemy", "ai", "hold", "no improving step toward P0", 1)

	if n := sl.CountCategory("ai", ""); n != 2 {
		t.Fatalf("ai entries = %d, want 2", n)
	}
	if n := sl.CountCategory("ai", "move"); n != 1 {
		t.Fatalf("ai move entries = %d, want 1", n)
	}
	if got := sl.FilterUnit("P0"); len(got) != 2 {
		t.Fatalf("P0 entries = %d, want 2", len(got))
	}
	if !sl.HasEntry("move", "ok", "(2,3)") {
		t.Fatal("expected a matching move entry")
	}
	if sl.HasEntry("move", "ok", "(9,9)") {
		t.Fatal("substring match should fail for an absent value")
	}

	last, ok := sl.LastOf("ai", "")
	if !ok || last.Key != "hold" {
		t.Fatalf("last ai entry = %+v, want the hold", last)
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "P0", "player", "move", "position", "(2,2)", 0)
	if len(quiet.Entries()) != 0 {
		t.Fatal("verbose entries should be dropped when verbose is off")
	}

	loud := NewSimLog(true)
	loud.AddVerbose(1, "P0", "player", "move", "position", "(2,2)", 0)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose entries should be kept when verbose is on")
	}
}

func TestSimLog_TailAndFormat(t *testing.T) {
	sl := NewSimLog(false)
	for i := 1; i <= 5; i++ {
		sl.Add(i, "P0", "player", "move", "ok", "step", 0)
	}

	tail := sl.Tail(2)
	if strings.Count(tail, "\n") != 2 {
		t.Fatalf("tail should have 2 lines:\n%s", tail)
	}
	if !strings.Contains(tail, "[T=005]") || strings.Contains(tail, "[T=001]") {
		t.Fatalf("tail has wrong window:\n%s", tail)
	}
	if got := sl.Tail(99); strings.Count(got, "\n") != 5 {
		t.Fatalf("oversized tail should return everything:\n%s", got)
	}
}
