// Package input turns SDL2 events into viewer events.
package input

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventWindowExposed
	EventKeyDown
)

// KeyEscape is the rune reported for the Escape key.
const KeyEscape rune = 0x1b

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    rune // lower-case character for EventKeyDown, 0 if not printable
	Code   sdl.Keycode
	Width  int
	Height int
}

// Input collects the events of one loop iteration.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains pending SDL events. If none are pending it waits up to
// timeout for one; a zero timeout only polls. Returns true when the
// window was asked to close.
func (i *Input) Update(timeout time.Duration) bool {
	i.events = i.events[:0]

	event := sdl.PollEvent()
	if event == nil && timeout > 0 {
		event = sdl.WaitEventTimeout(int(timeout / time.Millisecond))
	}

	quit := false
	for ; event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			i.events = append(i.events, e)
			if e.Type == EventQuit {
				quit = true
			}
		}
	}
	return quit
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return Event{Type: EventWindowExposed}, true
		}

	case *sdl.KeyboardEvent:
		// Held keys repeat; only the initial press counts.
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: KeyRune(e.Keysym.Sym), Code: e.Keysym.Sym}, true
		}
	}
	return Event{}, false
}

// KeyRune maps an SDL key code to the lower-case character it produces.
// Non-character keys map to 0.
func KeyRune(code sdl.Keycode) rune {
	if code == sdl.K_ESCAPE {
		return KeyEscape
	}
	if code < 0x20 || code >= 0x7f {
		return 0
	}
	r := rune(code)
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r
}

// IsCapture reports whether the event asks for a frame capture (F12).
func (e Event) IsCapture() bool {
	return e.Type == EventKeyDown && e.Code == sdl.K_F12
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
