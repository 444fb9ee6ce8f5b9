package input

// KeyHandler receives key transitions.
type KeyHandler interface {
	OnKeyTransition(key Key, pressed bool)
}

// CursorHandler receives cursor movement while the cursor is captured.
type CursorHandler interface {
	OnMouseMove(x, y float64)
	ResetMouseState()
}

// ScrollHandler receives vertical wheel offsets.
type ScrollHandler interface {
	OnScroll(yoffset float64)
}

// Router dispatches events synchronously to the registered handlers.
// It is owned by the render thread and must not be shared between goroutines.
type Router struct {
	Keys   KeyHandler
	Cursor CursorHandler
	Scroll ScrollHandler

	OnResize        func(width, height int)
	OnClose         func()
	OnCaptureChange func(captured bool)
	OnHUDToggle     func()

	captured bool
}

// NewRouter creates a router. captured sets the initial cursor capture state.
func NewRouter(captured bool) *Router {
	return &Router{captured: captured}
}

// Captured reports whether cursor events are forwarded.
func (r *Router) Captured() bool {
	return r.captured
}

// SetCaptured changes the capture state. Re-capturing re-arms first-mouse
// seeding on the cursor handler so the camera does not jump.
func (r *Router) SetCaptured(captured bool) {
	if r.captured == captured {
		return
	}
	r.captured = captured
	if r.Cursor != nil {
		r.Cursor.ResetMouseState()
	}
	if r.OnCaptureChange != nil {
		r.OnCaptureChange(captured)
	}
}

// Dispatch routes a single event.
func (r *Router) Dispatch(e Event) {
	switch e := e.(type) {
	case KeyEvent:
		r.dispatchKey(e)
	case CursorEvent:
		if r.captured && r.Cursor != nil {
			r.Cursor.OnMouseMove(e.X, e.Y)
		}
	case ScrollEvent:
		if r.Scroll != nil {
			r.Scroll.OnScroll(e.YOffset)
		}
	case ResizeEvent:
		if r.OnResize != nil {
			r.OnResize(e.Width, e.Height)
		}
	}
}

func (r *Router) dispatchKey(e KeyEvent) {
	if e.Action == Press {
		switch e.Key {
		case KeyEscape:
			if r.OnClose != nil {
				r.OnClose()
			}
			return
		case KeyC:
			r.SetCaptured(!r.captured)
			return
		case KeyF1:
			if r.OnHUDToggle != nil {
				r.OnHUDToggle()
			}
			return
		}
	}

	if r.Keys != nil {
		r.Keys.OnKeyTransition(e.Key, e.Pressed())
	}
}
