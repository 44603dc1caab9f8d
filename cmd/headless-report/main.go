package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/tmorell/tactgrid/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	turnsCompleted int
	finalTick      int

	firstMoveTick    int
	firstEnemyTick   int
	firstContactTick int

	playerMoves   int
	rejectedMoves int
	aiMoves       int
	aiHolds       int
	phaseChanges  int

	closestApproach int
	holdingUnits    map[string]struct{}
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenarioPath string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "autopilot seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenarioPath, "scenario", "", "scenario YAML path (default: built-in skirmish)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	sc := game.DefaultScenario()
	if scenarioPath != "" {
		loaded, err := game.LoadScenario(scenarioPath)
		if err != nil {
			fmt.Printf("error: scenario: %v\n", err)
			return
		}
		sc = loaded
	}

	fmt.Printf("=== Headless Skirmish Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		sc.Name, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenario(sc, i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runScenario(sc *game.Scenario, runIndex int, seed int64, ticks int) runStats {
	s := game.New(sc.Options()...)
	ap := game.NewAutoPilot(seed)
	for i := 0; i < ticks; i++ {
		s.Step(ap.Next(s), 1.0/60.0)
	}

	entries := s.Log().Entries()
	holding := map[string]struct{}{}
	for _, e := range entries {
		if e.Category == "ai" && e.Key == "hold" {
			holding[e.Unit] = struct{}{}
		}
	}

	return runStats{
		runIndex:         runIndex,
		seed:             seed,
		turnsCompleted:   s.Turns().CurrentTurn - 1,
		finalTick:        s.Tick(),
		firstMoveTick:    firstTick(entries, "move", "ok", ""),
		firstEnemyTick:   firstTick(entries, "phase", "change", "enemy_turn"),
		firstContactTick: firstTick(entries, "ai", "hold", ""),
		playerMoves:      s.Log().CountCategory("move", "ok"),
		rejectedMoves:    s.Log().CountCategory("move", "rejected"),
		aiMoves:          s.Log().CountCategory("ai", "move"),
		aiHolds:          s.Log().CountCategory("ai", "hold"),
		phaseChanges:     s.Log().CountCategory("phase", "change"),
		closestApproach:  closestApproach(s),
		holdingUnits:     holding,
	}
}

// closestApproach returns the smallest Manhattan distance between any
// enemy/player pair at the end of the run.
func closestApproach(s *game.Sim) int {
	best := -1
	for _, e := range s.Units() {
		if e.Faction() != game.FactionEnemy {
			continue
		}
		for _, p := range s.Units() {
			if p.Faction() != game.FactionPlayer {
				continue
			}
			d := e.Pos.DistanceTo(p.Pos)
			if best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("turns_completed=%d final_tick=%d\n", rs.turnsCompleted, rs.finalTick)
	fmt.Printf("phase_markers: first_move=%d first_enemy_phase=%d first_contact=%d\n",
		rs.firstMoveTick, rs.firstEnemyTick, rs.firstContactTick)
	fmt.Printf("event_totals: player_moves=%d rejected=%d ai_moves=%d ai_holds=%d phase_changes=%d\n",
		rs.playerMoves, rs.rejectedMoves, rs.aiMoves, rs.aiHolds, rs.phaseChanges)
	fmt.Printf("closest_approach=%d holding_units=%s\n", rs.closestApproach, joinSet(rs.holdingUnits))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalTurns := 0
	totalPlayerMoves := 0
	totalRejected := 0
	totalAIMoves := 0
	totalAIHolds := 0
	totalPhaseChanges := 0

	enemyTicks := make([]int, 0, len(all))
	contactTicks := make([]int, 0, len(all))
	holdingGlobal := map[string]struct{}{}

	for _, rs := range all {
		totalTurns += rs.turnsCompleted
		totalPlayerMoves += rs.playerMoves
		totalRejected += rs.rejectedMoves
		totalAIMoves += rs.aiMoves
		totalAIHolds += rs.aiHolds
		totalPhaseChanges += rs.phaseChanges
		if rs.firstEnemyTick >= 0 {
			enemyTicks = append(enemyTicks, rs.firstEnemyTick)
		}
		if rs.firstContactTick >= 0 {
			contactTicks = append(contactTicks, rs.firstContactTick)
		}
		for label := range rs.holdingUnits {
			holdingGlobal[label] = struct{}{}
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: turns=%.1f player_moves=%.1f rejected=%.1f ai_moves=%.1f ai_holds=%.1f phase_changes=%.1f\n",
		avg(totalTurns, len(all)), avg(totalPlayerMoves, len(all)), avg(totalRejected, len(all)),
		avg(totalAIMoves, len(all)), avg(totalAIHolds, len(all)), avg(totalPhaseChanges, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_enemy_phase=%s first_contact=%s\n",
		avgTickString(enemyTicks), avgTickString(contactTicks))
	fmt.Printf("unique_holding_units=%d [%s]\n", len(holdingGlobal), joinSet(holdingGlobal))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
