// Package hud collects frame timing and formats the rows of the stats overlay.
package hud

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// window over which the frame rate is averaged, in seconds
const sampleWindow = 0.5

// FrameStats keeps a frame rate averaged over a short window
type FrameStats struct {
	elapsed   float32
	frames    int
	work      time.Duration
	fps       float32
	frameTime float32 // milliseconds
	workTime  float32 // milliseconds
}

// Add records a frame that took dt seconds, of which work was spent on the
// CPU updating and drawing
func (s *FrameStats) Add(dt float32, work time.Duration) {
	if dt < 0 {
		return
	}
	s.elapsed += dt
	s.work += work
	s.frames++
	if s.elapsed >= sampleWindow {
		s.fps = float32(s.frames) / s.elapsed
		s.frameTime = 1000 * s.elapsed / float32(s.frames)
		s.workTime = float32(s.work.Seconds()*1000) / float32(s.frames)
		s.elapsed = 0
		s.work = 0
		s.frames = 0
	}
}

// FPS returns the last averaged frame rate
func (s *FrameStats) FPS() float32 {
	return s.fps
}

// FrameTime returns the last averaged frame time in milliseconds
func (s *FrameStats) FrameTime() float32 {
	return s.frameTime
}

// WorkTime returns the last averaged CPU time per frame in milliseconds
func (s *FrameStats) WorkTime() float32 {
	return s.workTime
}

// View is the camera state shown on the overlay
type View interface {
	Position() mgl32.Vec3
	Orientation() (yaw, pitch float32)
	FOV() float32
}

// Lines formats the overlay rows. view may be nil for demos without a camera;
// captured is only reported alongside a camera.
func Lines(stats *FrameStats, view View, captured bool) []string {
	lines := []string{
		fmt.Sprintf("%.0f fps (%.2f ms)", stats.FPS(), stats.FrameTime()),
		fmt.Sprintf("cpu %.2f ms", stats.WorkTime()),
	}
	if view == nil {
		return lines
	}

	pos := view.Position()
	yaw, pitch := view.Orientation()
	return append(lines,
		fmt.Sprintf("pos %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("yaw %.1f pitch %.1f", yaw, pitch),
		fmt.Sprintf("fov %.1f", view.FOV()),
		cursorLine(captured),
	)
}

func cursorLine(captured bool) string {
	if captured {
		return "cursor captured (C to release)"
	}
	return "cursor free (C to capture)"
}
