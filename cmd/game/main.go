package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tmorell/tactgrid/internal/game"
)

func main() {
	var scenarioPath string
	flag.StringVar(&scenarioPath, "scenario", "", "path to a scenario YAML file (default: built-in skirmish)")
	flag.Parse()

	sc := game.DefaultScenario()
	if scenarioPath != "" {
		loaded, err := game.LoadScenario(scenarioPath)
		if err != nil {
			log.Fatalf("scenario: %v", err)
		}
		sc = loaded
	}

	app := NewApp(sc)
	ebiten.SetWindowTitle("Tactgrid")
	ebiten.SetWindowSize(app.WindowSize())
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
