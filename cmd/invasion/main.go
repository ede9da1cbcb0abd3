package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/alien-invasion/alien_invasion/internal/game"
	"github.com/alien-invasion/alien_invasion/internal/host"
	"github.com/alien-invasion/alien_invasion/internal/render"
	"github.com/alien-invasion/alien_invasion/internal/world"
)

const title = "Alien Invasion"

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	sim    *game.Sim
	canvas *render.Canvas
	input  render.Input
}

func (g *Game) Update() error {
	err := g.sim.Step(g.input.Poll())
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.sim.Draw(g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Settings.ScreenWidth, g.sim.Settings.ScreenHeight
}

func main() {
	opts, err := host.ParseFlags(os.Args[0], os.Args[1:], true)
	if err != nil {
		os.Exit(2)
	}
	if f := host.SetupLogging(opts.Debug); f != nil {
		defer f.Close()
	}

	settings, err := host.LoadSettings(opts.Config)
	if err != nil {
		fatal(err)
	}
	store := world.HighScoreFile{Path: opts.HighScore}
	best, err := store.Load()
	if err != nil {
		fatal(err)
	}

	atlas := render.NewAtlas(settings)
	if opts.Sprites != "" {
		if atlas, err = render.LoadAtlas(opts.Sprites, settings); err != nil {
			fatal(err)
		}
	}
	sim, err := game.NewSim(settings, atlas, best, game.SystemClock{})
	if err != nil {
		fatal(err)
	}
	log.Printf("starting: %dx%d, high score %d", settings.ScreenWidth, settings.ScreenHeight, best)

	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(opts.Fullscreen)

	g := &Game{
		sim:    sim,
		canvas: render.NewCanvas(atlas, settings.BulletColor.RGBA()),
	}
	runErr := ebiten.RunGame(g)

	if err := host.SaveHighScore(store, best, sim.Stats.HighScore); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", title, runErr)
		log.Fatalf("run: %v", runErr)
	}
}

// fatal reports a startup failure on stderr and in the log, then exits.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", title, err)
	log.Fatalf("startup: %v", err)
}
