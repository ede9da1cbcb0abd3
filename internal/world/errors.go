package world

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is wrapped by every settings validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// StartupError is a failure to prepare a resource the game cannot run without
// (settings, sprites, the high score file). Hosts abort before entering the loop.
type StartupError struct {
	Resource string
	Err      error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup: %s: %v", e.Resource, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }
