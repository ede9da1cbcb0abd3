package game

import "errors"

// ErrUnrecognizedEvent is returned by Intent.Apply for events the game does
// not react to. Step drops them.
var ErrUnrecognizedEvent = errors.New("unrecognized input event")

// ErrQuit is returned by Step when the player asked to leave.
var ErrQuit = errors.New("quit")

// EventKind is the type of an input event.
type EventKind uint8

const (
	EventUnknown EventKind = iota
	EventQuit
	EventKeyDown
	EventKeyUp
	EventPointerDown
)

// Key is a logical game key. Frontends map physical keys onto these.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyQuit
	KeyStart
)

// Event is one discrete input event from the input collaborator.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y float64 // pointer position, EventPointerDown only
}

func KeyDown(k Key) Event            { return Event{Kind: EventKeyDown, Key: k} }
func KeyUp(k Key) Event              { return Event{Kind: EventKeyUp, Key: k} }
func PointerDown(x, y float64) Event { return Event{Kind: EventPointerDown, X: x, Y: y} }
func QuitEvent() Event               { return Event{Kind: EventQuit} }

// Point is a pointer position in screen pixels.
type Point struct {
	X, Y float64
}

// Intent is the digest of input for one tick. Left and Right are held state
// and survive between ticks; the rest is consumed by Step.
type Intent struct {
	Left, Right bool
	Fire        int
	Start       bool
	Quit        bool
	Clicks      []Point
}

// Apply folds one event into the intent.
func (in *Intent) Apply(ev Event) error {
	switch ev.Kind {
	case EventQuit:
		in.Quit = true
	case EventKeyDown:
		switch ev.Key {
		case KeyLeft:
			in.Left = true
		case KeyRight:
			in.Right = true
		case KeyFire:
			in.Fire++
		case KeyStart:
			in.Start = true
		case KeyQuit:
			in.Quit = true
		default:
			return ErrUnrecognizedEvent
		}
	case EventKeyUp:
		switch ev.Key {
		case KeyLeft:
			in.Left = false
		case KeyRight:
			in.Right = false
		default:
			return ErrUnrecognizedEvent
		}
	case EventPointerDown:
		in.Clicks = append(in.Clicks, Point{X: ev.X, Y: ev.Y})
	default:
		return ErrUnrecognizedEvent
	}
	return nil
}

// take returns the current intent and clears the one-shot requests.
func (in *Intent) take() Intent {
	out := *in
	in.Fire = 0
	in.Start = false
	in.Quit = false
	in.Clicks = nil
	return out
}
