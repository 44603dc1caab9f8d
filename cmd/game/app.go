package main

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tmorell/tactgrid/internal/game"
)

const (
	offX          = 16
	offY          = 48
	logPanelWidth = 336
	logPanelLines = 38
	tickSeconds   = 1.0 / 60.0
)

// App is the interactive client. It owns the window, translates raw
// mouse and key state into grid-space inputs for the sim, and renders
// the battlefield from per-tick snapshots. All game rules live in the
// sim; the client never mutates units directly.
type App struct {
	sim      *game.Sim
	scenario *game.Scenario

	width  int
	height int

	prevMouseLeft bool
	prevKeys      map[ebiten.Key]bool
	showLog       bool
}

func NewApp(sc *game.Scenario) *App {
	a := &App{
		sim:      game.New(sc.Options()...),
		scenario: sc,
		prevKeys: map[ebiten.Key]bool{},
		showLog:  true,
	}
	gw := int(float64(a.sim.Grid().Width) * a.sim.Grid().TileSize)
	gh := int(float64(a.sim.Grid().Height) * a.sim.Grid().TileSize)
	a.width = offX + gw + offX + logPanelWidth
	a.height = offY + gh + offX
	return a
}

func (a *App) WindowSize() (int, int) {
	return a.width, a.height
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func (a *App) Update() error {
	currentKeys := map[ebiten.Key]bool{}

	var in game.Input

	// Cursor position in world space; hover only while over the grid.
	mx, my := ebiten.CursorPosition()
	pos := a.sim.Grid().WorldToGrid(float64(mx-offX), float64(my-offY))
	if a.sim.Grid().InBounds(pos) {
		p := pos
		in.Hover = &p
	}

	// Left click, edge-triggered.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !a.prevMouseLeft && in.Hover != nil {
			p := pos
			in.Click = &p
		}
	}
	a.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// L: toggle the event log panel.
	currentKeys[ebiten.KeyL] = ebiten.IsKeyPressed(ebiten.KeyL)
	if currentKeys[ebiten.KeyL] && !a.prevKeys[ebiten.KeyL] {
		a.showLog = !a.showLog
	}

	// C: copy the recent event log to the clipboard.
	currentKeys[ebiten.KeyC] = ebiten.IsKeyPressed(ebiten.KeyC)
	if currentKeys[ebiten.KeyC] && !a.prevKeys[ebiten.KeyC] {
		_ = clipboard.WriteAll(a.sim.Log().Tail(200))
	}

	// R: restart the scenario.
	currentKeys[ebiten.KeyR] = ebiten.IsKeyPressed(ebiten.KeyR)
	if currentKeys[ebiten.KeyR] && !a.prevKeys[ebiten.KeyR] {
		a.sim = game.New(a.scenario.Options()...)
	}

	a.prevKeys = currentKeys

	a.sim.Step(in, tickSeconds)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 16, B: 14, A: 255})

	snap := a.sim.Snapshot()
	a.drawGrid(screen, snap)
	a.drawUnits(screen, snap)
	a.drawHUD(screen, snap)
	if a.showLog {
		a.drawLogPanel(screen)
	}
}

func (a *App) drawGrid(screen *ebiten.Image, snap game.SimSnapshot) {
	gm := a.sim.Grid()
	ts := float32(gm.TileSize)

	for y := 0; y < gm.Height; y++ {
		for x := 0; x < gm.Width; x++ {
			tile, _ := gm.TileAt(game.Pos(x, y))
			var c color.RGBA
			switch tile.Kind {
			case game.TerrainWater:
				c = color.RGBA{R: 34, G: 56, B: 96, A: 255}
			case game.TerrainMountain:
				c = color.RGBA{R: 70, G: 66, B: 62, A: 255}
			default:
				// Checkerboard so tile boundaries read without grid lines.
				if (x+y)%2 == 0 {
					c = color.RGBA{R: 40, G: 58, B: 40, A: 255}
				} else {
					c = color.RGBA{R: 34, G: 50, B: 34, A: 255}
				}
			}
			vector.FillRect(screen, offX+float32(x)*ts, offY+float32(y)*ts, ts, ts, c, false)
		}
	}

	// Reachable tiles for the selected unit.
	for _, m := range snap.ValidMoves {
		vector.FillRect(screen, offX+float32(m.X)*ts, offY+float32(m.Y)*ts, ts, ts,
			color.RGBA{R: 90, G: 160, B: 90, A: 90}, false)
		vector.StrokeRect(screen, offX+float32(m.X)*ts+1, offY+float32(m.Y)*ts+1, ts-2, ts-2, 1.0,
			color.RGBA{R: 120, G: 200, B: 120, A: 180}, false)
	}

	if snap.Hovered != nil {
		vector.StrokeRect(screen, offX+float32(snap.Hovered.X)*ts, offY+float32(snap.Hovered.Y)*ts, ts, ts, 2.0,
			color.RGBA{R: 220, G: 220, B: 160, A: 200}, false)
	}

	gw := float32(gm.Width) * ts
	gh := float32(gm.Height) * ts
	vector.StrokeRect(screen, offX-1, offY-1, gw+2, gh+2, 2.0, color.RGBA{R: 65, G: 90, B: 65, A: 255}, false)
}

func (a *App) drawUnits(screen *ebiten.Image, snap game.SimSnapshot) {
	gm := a.sim.Grid()
	radius := float32(gm.TileSize) * 0.35

	for _, u := range snap.Units {
		wx, wy := gm.GridToWorld(u.Pos)
		cx := offX + float32(wx)
		cy := offY + float32(wy)

		var c color.RGBA
		if u.Faction == "player" {
			c = color.RGBA{R: 90, G: 140, B: 220, A: 255}
		} else {
			c = color.RGBA{R: 200, G: 80, B: 70, A: 255}
		}
		if u.HasActed {
			c.R = c.R / 2
			c.G = c.G / 2
			c.B = c.B / 2
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, c, true)

		if u.Selected {
			vector.StrokeCircle(screen, cx, cy, radius+4, 2.0,
				color.RGBA{R: 240, G: 230, B: 120, A: 255}, true)
		}

		text.Draw(screen, u.Label, basicfont.Face7x13,
			int(cx)-7, int(cy)+4, color.RGBA{R: 245, G: 245, B: 245, A: 255})
	}
}

func (a *App) drawHUD(screen *ebiten.Image, snap game.SimSnapshot) {
	title := fmt.Sprintf("Turn %d  -  %s phase", snap.Turn, snap.ActiveFaction)
	text.Draw(screen, title, basicfont.Face7x13, offX, 24,
		color.RGBA{R: 230, G: 230, B: 210, A: 255})

	legend := "[click] select / move   [L] log   [C] copy log   [R] restart"
	ebitenutil.DebugPrintAt(screen, legend, offX, 28)
}

func (a *App) drawLogPanel(screen *ebiten.Image) {
	panelX := a.width - logPanelWidth
	vector.FillRect(screen, float32(panelX), 0, logPanelWidth, float32(a.height),
		color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(a.height), 1.0,
		color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENT LOG", panelX+8, 4)

	entries := a.sim.Log().Entries()
	start := 0
	if len(entries) > logPanelLines {
		start = len(entries) - logPanelLines
	}
	y := 22
	for _, e := range entries[start:] {
		line := fmt.Sprintf("%04d %-3s %s/%s %s", e.Tick, e.Unit, e.Category, e.Key, e.Value)
		if len(line) > 54 {
			line = line[:54]
		}
		ebitenutil.DebugPrintAt(screen, line, panelX+8, y)
		y += 16
	}
}
