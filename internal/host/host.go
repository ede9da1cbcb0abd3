// Package host holds the startup and shutdown steps shared by the window and
// terminal frontends.
package host

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/alien-invasion/alien_invasion/assets"
	"github.com/alien-invasion/alien_invasion/internal/world"
)

const (
	logDir      = "logs"
	logFileName = "invasion.log"
)

// Options are the command line settings of a frontend.
type Options struct {
	Config     string // settings JSON; empty means the embedded defaults
	HighScore  string
	Sprites    string // window only
	Fullscreen bool   // window only
	Debug      bool
}

// ParseFlags parses args into Options. The window frontend also accepts
// -sprites and -fullscreen.
func ParseFlags(name string, args []string, window bool) (Options, error) {
	var o Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&o.Config, "config", "", "settings JSON file (default: built-in settings)")
	fs.StringVar(&o.HighScore, "highscore", world.DefaultHighScorePath, "high score file")
	fs.BoolVar(&o.Debug, "debug", false, "write a log to "+filepath.Join(logDir, logFileName))
	if window {
		fs.StringVar(&o.Sprites, "sprites", "", "directory with ship.png and alien.png (default: built-in art)")
		fs.BoolVar(&o.Fullscreen, "fullscreen", false, "start in fullscreen")
	}
	err := fs.Parse(args)
	return o, err
}

// SetupLogging sends the standard logger to logs/invasion.log when debug is
// set and discards it otherwise. The returned file, if any, must be closed by
// the caller.
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// LoadSettings reads the settings file at path, or the embedded defaults when
// path is empty. Any failure is a *world.StartupError.
func LoadSettings(path string) (*world.Settings, error) {
	resource := path
	var data []byte
	var err error
	if path == "" {
		resource = assets.SettingsFile
		data, err = assets.Config.ReadFile(assets.SettingsFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &world.StartupError{Resource: resource, Err: err}
	}
	s, err := world.LoadSettings(data)
	if err != nil {
		return nil, &world.StartupError{Resource: resource, Err: err}
	}
	return s, nil
}

// SaveHighScore writes best to store if it beats the score loaded at start.
func SaveHighScore(store world.HighScoreFile, loaded, best int) error {
	if best <= loaded {
		return nil
	}
	if err := store.Save(best); err != nil {
		return err
	}
	log.Printf("high score %d saved to %s", best, store.Path)
	return nil
}
