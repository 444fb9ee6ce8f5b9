// Package input converts window system callbacks into plain event values and
// routes them, on the render thread, to the camera and the window.
package input

// Key is a keyboard key code. Values match GLFW key codes so the window layer
// can convert with a plain cast.
type Key int

// Action is a key state transition. Values match GLFW actions.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// Key constants for the keys the demos react to
const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyA       Key = 65
	KeyC       Key = 67
	KeyD       Key = 68
	KeyS       Key = 83
	KeyW       Key = 87
	KeyEscape  Key = 256
	KeyF1      Key = 290
)

// Event is one of KeyEvent, CursorEvent, ScrollEvent or ResizeEvent.
type Event interface {
	event()
}

// KeyEvent is a key state transition.
type KeyEvent struct {
	Key    Key
	Action Action
}

// CursorEvent reports the cursor position in screen coordinates.
type CursorEvent struct {
	X, Y float64
}

// ScrollEvent reports mouse wheel offsets.
type ScrollEvent struct {
	XOffset, YOffset float64
}

// ResizeEvent reports a new framebuffer size in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (KeyEvent) event()    {}
func (CursorEvent) event() {}
func (ScrollEvent) event() {}
func (ResizeEvent) event() {}

// Pressed reports whether the key should be considered held after this event.
// A repeat keeps the key held.
func (e KeyEvent) Pressed() bool {
	return e.Action != Release
}
