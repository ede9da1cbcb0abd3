package world

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultHighScorePath is where the high score lives unless overridden.
const DefaultHighScorePath = "high_score.txt"

// HighScoreFile stores the high score as a single decimal integer in a text file.
type HighScoreFile struct {
	Path string
}

// Load reads the stored high score. A missing, unreadable or malformed file is
// a *StartupError.
func (f HighScoreFile) Load() (int, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return 0, &StartupError{Resource: f.Path, Err: err}
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, &StartupError{Resource: f.Path, Err: fmt.Errorf("parse high score: %w", err)}
	}
	if n < 0 {
		return 0, &StartupError{Resource: f.Path, Err: fmt.Errorf("negative high score %d", n)}
	}
	return n, nil
}

// Save replaces the stored high score. The new file is written next to the
// old one and renamed into place.
func (f HighScoreFile) Save(score int) error {
	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".high_score-*")
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("save high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}
