package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/alien-invasion/alien_invasion/internal/game"
	"github.com/alien-invasion/alien_invasion/internal/host"
	"github.com/alien-invasion/alien_invasion/internal/tty"
	"github.com/alien-invasion/alien_invasion/internal/world"
)

const tps = 60

func main() {
	opts, err := host.ParseFlags(os.Args[0], os.Args[1:], false)
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

	term, err := tcell.NewScreen()
	if err != nil {
		fatal(&world.StartupError{Resource: "terminal", Err: err})
	}
	if err := term.Init(); err != nil {
		fatal(&world.StartupError{Resource: "terminal", Err: err})
	}
	// Restore the terminal even if the game crashes.
	defer func() {
		if r := recover(); r != nil {
			term.Fini()
			fmt.Fprintf(os.Stderr, "crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	term.EnableMouse()
	term.HideCursor()

	screen := tty.NewScreen(term, settings)
	sim, err := game.NewSim(settings, screen, best, game.SystemClock{})
	if err != nil {
		term.Fini()
		fatal(err)
	}
	log.Printf("starting on terminal, high score %d", best)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runErr := run(ctx, term, screen, sim)
	term.Fini()

	if err := host.SaveHighScore(store, best, sim.Stats.HighScore); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		log.Fatalf("run: %v", runErr)
	}
}

// run ticks the simulation until the player quits or ctx is cancelled.
// Terminal events are read on their own goroutine and drained every tick.
func run(ctx context.Context, term tcell.Screen, screen *tty.Screen, sim *game.Sim) error {
	eventCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := term.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	input := tty.NewInput(screen)
	ticker := time.NewTicker(time.Second / tps)
	defer ticker.Stop()

	var events []game.Event
	for {
		select {
		case <-ctx.Done():
			log.Printf("interrupted")
			return nil
		case ev := <-eventCh:
			events = append(events, input.Translate(ev, time.Now())...)
		case now := <-ticker.C:
			events = append(events, input.Expire(now)...)
			err := sim.Step(events)
			events = events[:0]
			if errors.Is(err, game.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			sim.Draw(screen)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Alien Invasion: %v\n", err)
	log.Fatalf("startup: %v", err)
}
