package input

import "testing"

type recorder struct {
	keys    []KeyEvent
	moves   [][2]float64
	resets  int
	scrolls []float64
}

func (r *recorder) OnKeyTransition(key Key, pressed bool) {
	action := Release
	if pressed {
		action = Press
	}
	r.keys = append(r.keys, KeyEvent{Key: key, Action: action})
}

func (r *recorder) OnMouseMove(x, y float64) {
	r.moves = append(r.moves, [2]float64{x, y})
}

func (r *recorder) ResetMouseState() {
	r.resets++
}

func (r *recorder) OnScroll(yoffset float64) {
	r.scrolls = append(r.scrolls, yoffset)
}

func newRecordingRouter(captured bool) (*Router, *recorder) {
	rec := &recorder{}
	router := NewRouter(captured)
	router.Keys = rec
	router.Cursor = rec
	router.Scroll = rec
	return router, rec
}

func TestRouterKeyTransitions(t *testing.T) {
	router, rec := newRecordingRouter(true)

	router.Dispatch(KeyEvent{Key: KeyW, Action: Press})
	router.Dispatch(KeyEvent{Key: KeyW, Action: Repeat})
	router.Dispatch(KeyEvent{Key: KeyW, Action: Release})

	if len(rec.keys) != 3 {
		t.Fatalf("expected 3 key transitions, got %d", len(rec.keys))
	}
	if rec.keys[0].Action != Press || rec.keys[1].Action != Press {
		t.Errorf("press and repeat should both report pressed, got %v", rec.keys[:2])
	}
	if rec.keys[2].Action != Release {
		t.Errorf("release should report not pressed, got %v", rec.keys[2])
	}
}

func TestRouterCursorOnlyWhileCaptured(t *testing.T) {
	router, rec := newRecordingRouter(false)

	router.Dispatch(CursorEvent{X: 10, Y: 20})
	if len(rec.moves) != 0 {
		t.Fatalf("cursor event forwarded while not captured")
	}

	router.Dispatch(KeyEvent{Key: KeyC, Action: Press})
	if !router.Captured() {
		t.Fatalf("C press should capture the cursor")
	}
	if rec.resets != 1 {
		t.Errorf("capturing should reset mouse seeding once, got %d", rec.resets)
	}

	router.Dispatch(CursorEvent{X: 10, Y: 20})
	if len(rec.moves) != 1 || rec.moves[0] != [2]float64{10, 20} {
		t.Errorf("unexpected moves %v", rec.moves)
	}

	// C is consumed by the router and never reaches the camera
	for _, k := range rec.keys {
		if k.Key == KeyC {
			t.Errorf("C key leaked to key handler")
		}
	}
}

func TestRouterCallbacks(t *testing.T) {
	router, rec := newRecordingRouter(true)

	var closed, toggled int
	var width, height int
	var captureChanges []bool
	router.OnClose = func() { closed++ }
	router.OnHUDToggle = func() { toggled++ }
	router.OnResize = func(w, h int) { width, height = w, h }
	router.OnCaptureChange = func(c bool) { captureChanges = append(captureChanges, c) }

	router.Dispatch(KeyEvent{Key: KeyEscape, Action: Press})
	router.Dispatch(KeyEvent{Key: KeyEscape, Action: Release})
	router.Dispatch(KeyEvent{Key: KeyF1, Action: Press})
	router.Dispatch(ResizeEvent{Width: 640, Height: 480})
	router.Dispatch(ScrollEvent{YOffset: 2})
	router.Dispatch(KeyEvent{Key: KeyC, Action: Press})
	router.Dispatch(KeyEvent{Key: KeyC, Action: Press})

	if closed != 1 {
		t.Errorf("expected one close request, got %d", closed)
	}
	if toggled != 1 {
		t.Errorf("expected one HUD toggle, got %d", toggled)
	}
	if width != 640 || height != 480 {
		t.Errorf("resize not forwarded, got %dx%d", width, height)
	}
	if len(rec.scrolls) != 1 || rec.scrolls[0] != 2 {
		t.Errorf("scroll not forwarded, got %v", rec.scrolls)
	}
	if len(captureChanges) != 2 || captureChanges[0] || !captureChanges[1] {
		t.Errorf("unexpected capture changes %v", captureChanges)
	}
}

func TestRouterWithoutHandlers(t *testing.T) {
	router := NewRouter(true)

	// none of these may panic
	router.Dispatch(KeyEvent{Key: KeyW, Action: Press})
	router.Dispatch(KeyEvent{Key: KeyEscape, Action: Press})
	router.Dispatch(KeyEvent{Key: KeyC, Action: Press})
	router.Dispatch(CursorEvent{X: 1, Y: 1})
	router.Dispatch(ScrollEvent{YOffset: 1})
	router.Dispatch(ResizeEvent{Width: 1, Height: 1})
}
