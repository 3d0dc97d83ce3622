// Package input handles SDL2 input events, the movement axis and the
// pointer-capture mode.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/strider/pkg/math"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	// Relative mouse motion; meaningful while the pointer is captured.
	MouseDX float32
	MouseDY float32
	WheelY  float32
	Button  uint8
}

// Mode is the pointer-capture state. While captured, the cursor is hidden
// and mouse events arrive as relative deltas.
type Mode int

const (
	ModeVisible Mode = iota
	ModeCaptured
)

// Input handles all input processing.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
	mode   Mode
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if e.Repeat == 0 {
					i.events = append(i.events, Event{
						Type: EventKeyDown,
						Key:  e.Keysym.Scancode,
					})
				}
				i.held[e.Keysym.Scancode] = true
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
				delete(i.held, e.Keysym.Scancode)
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:    EventMouseMove,
				MouseDX: float32(e.XRel),
				MouseDY: float32(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					Button: e.Button,
				})
			}

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseWheel,
				WheelY: float32(e.Y),
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Axis returns the combined movement axis from the four directional keys.
// A/D drive x, W/S drive y; forward is negative y and left is positive x,
// matching the locomotion mapper's convention. The combined magnitude is
// clamped to 1.
func (i *Input) Axis() math.Vec2 {
	var a math.Vec2
	if i.held[sdl.SCANCODE_A] {
		a.X++
	}
	if i.held[sdl.SCANCODE_D] {
		a.X--
	}
	if i.held[sdl.SCANCODE_W] {
		a.Y--
	}
	if i.held[sdl.SCANCODE_S] {
		a.Y++
	}
	return a.ClampLength(1)
}

// Mode returns the current pointer-capture mode.
func (i *Input) Mode() Mode {
	return i.mode
}

// SetMode switches pointer capture. Captured mode hides the cursor and
// enables relative mouse motion.
func (i *Input) SetMode(m Mode) {
	if m == i.mode {
		return
	}
	i.mode = m
	sdl.SetRelativeMouseMode(m == ModeCaptured)
}
