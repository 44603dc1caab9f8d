package game

import "fmt"

// Default battlefield constants, matching the stock scenario.
const (
	DefaultGridWidth       = 10
	DefaultGridHeight      = 10
	DefaultTileSize        = 64.0
	DefaultEnemyPhaseDelay = 1.0 // seconds the enemy phase lasts at minimum
)

// Input is what the input collaborator hands the core for one tick.
// Coordinates are already resolved to grid space; the core never sees
// screen or window coordinates.
type Input struct {
	Click *GridPosition // primary click, if one happened this tick
	Hover *GridPosition // tile under the cursor, informational
}

// ClickAt builds an Input carrying a single primary click.
func ClickAt(pos GridPosition) Input {
	p := pos
	return Input{Click: &p}
}

// Sim is the deterministic turn-based simulation core. All state lives
// here for exactly one run: the grid, the unit roster, selection, the
// phase machine, and the event log. There is no global state and no
// concurrency. Step is the single ordered pipeline, called once per
// discrete tick by the surrounding engine.
type Sim struct {
	grid      *GridMap
	units     []*Unit
	selection SelectionState
	phase     Phase
	timer     phaseTimer
	turns     TurnManager
	log       *SimLog
	tick      int
	nextID    UnitID
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // grid size, delay, log; applied first
	simOptUnit                       // add units; applied after the grid exists
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithGridSize sets the grid dimensions in tiles.
func WithGridSize(width, height int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.grid = NewGridMap(width, height, s.grid.TileSize)
	}}
}

// WithTileSize sets the world-space tile size used for conversions.
func WithTileSize(size float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.grid.TileSize = size
	}}
}

// WithEnemyPhaseDelay sets the minimum real-time length of the enemy
// phase in seconds.
func WithEnemyPhaseDelay(seconds float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.timer.delay = seconds
	}}
}

// WithVerboseLog enables per-tick verbose event logging.
func WithVerboseLog(v bool) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.log = NewSimLog(v)
	}}
}

// WithTerrain sets the terrain kind of a single tile.
func WithTerrain(x, y int, k TerrainKind) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.grid.SetTerrain(Pos(x, y), k)
	}}
}

// WithPlayerUnit adds a player unit at (x, y).
func WithPlayerUnit(x, y int) SimOption {
	return SimOption{simOptUnit, func(s *Sim) {
		s.addUnit(KindPlayer, Pos(x, y))
	}}
}

// WithEnemyUnit adds an AI-controlled enemy unit at (x, y).
func WithEnemyUnit(x, y int) SimOption {
	return SimOption{simOptUnit, func(s *Sim) {
		s.addUnit(KindEnemy, Pos(x, y))
	}}
}

// New constructs a Sim from the given options in two ordered passes:
// infrastructure first (grid, timer, log), then units. The simulation
// starts in the player phase on turn 1 with an empty selection.
func New(opts ...SimOption) *Sim {
	s := &Sim{
		grid:  NewGridMap(DefaultGridWidth, DefaultGridHeight, DefaultTileSize),
		timer: phaseTimer{delay: DefaultEnemyPhaseDelay},
		turns: NewTurnManager(),
		phase: PhasePlayer,
		log:   NewSimLog(false),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(s)
		}
	}
	for _, o := range opts {
		if o.kind == simOptUnit {
			o.fn(s)
		}
	}
	return s
}

// addUnit places a new unit on the roster. Labels are P<n>/E<n> in
// creation order per faction.
func (s *Sim) addUnit(kind UnitKind, pos GridPosition) *Unit {
	s.nextID++
	count := 0
	for _, u := range s.units {
		if u.Kind == kind {
			count++
		}
	}
	prefix := "P"
	if kind == KindEnemy {
		prefix = "E"
	}
	u := &Unit{
		ID:    s.nextID,
		Label: fmt.Sprintf("%s%d", prefix, count),
		Kind:  kind,
		Pos:   pos,
		Stats: NewStats(10, 3, 1),
	}
	s.units = append(s.units, u)
	return u
}

// unitByID returns the unit with the given ID, or nil.
func (s *Sim) unitByID(id UnitID) *Unit {
	for _, u := range s.units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// unitAt returns the unit occupying pos, or nil.
func (s *Sim) unitAt(pos GridPosition) *Unit {
	for _, u := range s.units {
		if u.Pos == pos {
			return u
		}
	}
	return nil
}

// UnitByLabel returns the unit with the given display label, or nil.
func (s *Sim) UnitByLabel(label string) *Unit {
	for _, u := range s.units {
		if u.Label == label {
			return u
		}
	}
	return nil
}

// Units returns the roster. Callers must not mutate it.
func (s *Sim) Units() []*Unit {
	return s.units
}

// Grid returns the grid map for coordinate conversion and bounds queries.
func (s *Sim) Grid() *GridMap {
	return s.grid
}

// Phase returns the current phase of the turn state machine.
func (s *Sim) Phase() Phase {
	return s.phase
}

// Turns returns the turn counter bookkeeping.
func (s *Sim) Turns() TurnManager {
	return s.turns
}

// Selection returns the selection state.
func (s *Sim) Selection() *SelectionState {
	return &s.selection
}

// Log returns the structured event log for this run.
func (s *Sim) Log() *SimLog {
	return s.log
}

// Tick returns the number of completed Step calls.
func (s *Sim) Tick() int {
	return s.tick
}

// Step advances the simulation one tick. The pipeline order is fixed and
// load-bearing: selection before player movement, AI before the
// turn-completion check, phase transition last. dt is the wall-clock
// seconds since the previous tick and only feeds the enemy phase timer.
func (s *Sim) Step(in Input, dt float64) {
	s.tick++

	if in.Hover != nil {
		s.selection.Hover(*in.Hover)
	} else {
		s.selection.ClearHover()
	}

	// The selected reference is weak; confirm it still points at a live
	// selectable unit before anything acts on it.
	s.selection.revalidate(s.unitByID)

	if in.Click != nil {
		s.handleClick(*in.Click)
	}

	if s.phase == PhaseEnemy {
		s.timer.advance(dt)
		s.runEnemyPhase()
	}

	s.checkPhaseEnd()
}

// RunTicks advances the simulation n ticks with no input, dt seconds each.
func (s *Sim) RunTicks(n int, dt float64) {
	for i := 0; i < n; i++ {
		s.Step(Input{}, dt)
	}
}

// RunUntil advances up to maxTicks, stopping early if predicate returns
// true. Returns the tick at which the predicate held, or -1.
func (s *Sim) RunUntil(predicate func(*Sim) bool, maxTicks int, dt float64) int {
	for i := 0; i < maxTicks; i++ {
		s.Step(Input{}, dt)
		if predicate(s) {
			return s.tick
		}
	}
	return -1
}

// handleClick routes a primary click. A click on a selectable unit moves
// the selection (mutual exclusion). A click on an enemy unit is a no-op:
// enemy units are never selectable. A click on an empty tile retains the
// current selection and, during the player phase, is offered to the
// movement validator as a move target for the selected unit.
func (s *Sim) handleClick(pos GridPosition) {
	if u := s.unitAt(pos); u != nil {
		if u.Kind.Selectable() {
			s.selection.Select(u.ID)
			s.log.Add(s.tick, u.Label, u.Faction().String(), "select", "unit", "selected at "+pos.String(), 0)
		} else {
			s.log.Add(s.tick, u.Label, u.Faction().String(), "select", "ignored", "enemy unit at "+pos.String(), 0)
		}
		return
	}

	if s.phase != PhasePlayer || !s.selection.HasSelection() {
		return
	}

	id := s.selection.SelectedID()
	u := s.unitByID(id)
	res := s.TryMove(id, pos)
	if res.Accepted() {
		s.log.Add(s.tick, u.Label, u.Faction().String(), "move", "ok", "moved to "+pos.String(), 0)
	} else {
		// Rejections are expected outcomes, recorded for diagnostics only.
		s.log.Add(s.tick, u.Label, u.Faction().String(), "move", "rejected", res.String()+" target "+pos.String(), 0)
	}
}
