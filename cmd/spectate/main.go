package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tmorell/tactgrid/internal/game"
)

// command is the one message viewers may send: a grid-space click.
// The tick loop drains at most one click per tick, matching the input
// contract of the sim.
type command struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Spectator tool; any origin may watch.
		return true
	},
}

func main() {
	var addr string
	var scenarioPath string
	var tickRate int
	var seed int64
	var autoplay bool

	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&scenarioPath, "scenario", "", "scenario YAML path (default: built-in skirmish)")
	flag.IntVar(&tickRate, "tick-rate", 10, "simulation ticks per second")
	flag.Int64Var(&seed, "seed", 42, "autopilot seed")
	flag.BoolVar(&autoplay, "autoplay", true, "drive player units with the autopilot when no viewer clicks")
	flag.Parse()

	if tickRate <= 0 {
		log.Fatal("-tick-rate must be > 0")
	}

	sc := game.DefaultScenario()
	if scenarioPath != "" {
		loaded, err := game.LoadScenario(scenarioPath)
		if err != nil {
			log.Fatalf("scenario: %v", err)
		}
		sc = loaded
	}

	s := game.New(sc.Options()...)
	h := newHub()
	clicks := make(chan game.GridPosition, 64)

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade failed: %v", err)
			return
		}
		h.add(conn)
		log.Printf("viewer connected: %s (%d total)", conn.RemoteAddr(), h.count())
		go readCommands(conn, h, clicks)
	})

	go runLoop(s, h, clicks, tickRate, seed, autoplay)

	log.Printf("spectate server on %s (scenario=%s tick_rate=%d)", addr, sc.Name, tickRate)
	log.Fatal(http.ListenAndServe(addr, nil))
}

// readCommands is the per-connection read loop. Clicks queue up for the
// tick loop; anything unparseable is ignored.
func readCommands(conn *websocket.Conn, h *hub, clicks chan<- game.GridPosition) {
	defer func() {
		h.remove(conn)
		conn.Close()
		log.Printf("viewer disconnected: %s (%d total)", conn.RemoteAddr(), h.count())
	}()
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd command
		if err := json.Unmarshal(payload, &cmd); err != nil || cmd.Type != "click" {
			continue
		}
		select {
		case clicks <- game.Pos(cmd.X, cmd.Y):
		default:
			// Queue full; the viewer is clicking faster than the sim ticks.
		}
	}
}

// runLoop advances the sim at the configured rate and broadcasts a
// snapshot after every tick. A queued viewer click wins over the
// autopilot for that tick.
func runLoop(s *game.Sim, h *hub, clicks <-chan game.GridPosition, tickRate int, seed int64, autoplay bool) {
	ap := game.NewAutoPilot(seed)
	dt := 1.0 / float64(tickRate)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	for range ticker.C {
		var in game.Input
		select {
		case pos := <-clicks:
			if s.Grid().InBounds(pos) {
				in = game.ClickAt(pos)
			}
		default:
			if autoplay {
				in = ap.Next(s)
			}
		}
		s.Step(in, dt)
		h.broadcast(s.Snapshot())
	}
}
