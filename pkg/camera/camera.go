// Package camera implements the free-fly camera shared by the interactive demos.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/pkg/input"
)

// Camera implements a free-fly camera driven by key transitions and cursor movement
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	// Camera options
	fov         float32
	moveSpeed   float32
	sensitivity float32
	bindings    map[input.Key]Direction

	// Movement flags, indexed by Direction
	moving [4]bool

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool
}

// NewCamera creates a new camera at position looking down -Z
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0}, // Y-up coordinate system
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		fov:         DefaultFOV,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
		bindings:    DefaultBindings,
		firstMouse:  true,
	}

	camera.updateCameraVectors()

	return camera
}

// updateCameraVectors recalculates the front vector from the Euler angles.
// It is the only place front is written.
func (c *Camera) updateCameraVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
}

// OnKeyTransition sets the movement flag bound to key. Unbound keys are ignored.
func (c *Camera) OnKeyTransition(key input.Key, pressed bool) {
	dir, ok := c.bindings[key]
	if !ok {
		return
	}
	c.moving[dir] = pressed
}

// OnMouseMove updates the orientation from an absolute cursor position.
// The first call after creation or ResetMouseState only records the position.
func (c *Camera) OnMouseMove(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos - c.lastX)
	yoffset := float32(c.lastY - ypos) // Reversed: y ranges bottom to top

	c.lastX = xpos
	c.lastY = ypos

	c.yaw += xoffset * c.sensitivity
	c.pitch = clampPitch(c.pitch + yoffset*c.sensitivity)

	c.updateCameraVectors()
}

// OnScroll zooms by narrowing or widening the field of view
func (c *Camera) OnScroll(yoffset float64) {
	c.fov -= float32(yoffset)

	if c.fov < MinFOV {
		c.fov = MinFOV
	}
	if c.fov > MaxFOV {
		c.fov = MaxFOV
	}
}

// ResetMouseState re-arms first-mouse seeding
func (c *Camera) ResetMouseState() {
	c.firstMouse = true
}

// Advance moves the camera by dt seconds worth of travel along every active
// movement flag. Flags add up without renormalization, so diagonal travel is
// faster than travel along a single axis.
func (c *Camera) Advance(dt float32) {
	speed := c.moveSpeed * dt
	right := c.front.Cross(c.worldUp).Normalize()

	if c.moving[Forward] {
		c.position = c.position.Add(c.front.Mul(speed))
	}
	if c.moving[Backward] {
		c.position = c.position.Sub(c.front.Mul(speed))
	}
	if c.moving[Left] {
		c.position = c.position.Sub(right.Mul(speed))
	}
	if c.moving[Right] {
		c.position = c.position.Add(right.Mul(speed))
	}
}

// ViewMatrix returns the right-handed look-at matrix for the current state
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.worldUp)
}

// Projection returns the perspective projection for a framebuffer of the given size
func (c *Camera) Projection(width, height int) mgl32.Mat4 {
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Front returns the unit look direction
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Up returns the fixed vertical reference
func (c *Camera) Up() mgl32.Vec3 {
	return c.worldUp
}

// Orientation returns the current camera orientation (yaw, pitch) in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets the camera rotation angles, clamping pitch
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)
	c.updateCameraVectors()
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// Moving reports whether the flag for dir is set
func (c *Camera) Moving(dir Direction) bool {
	return c.moving[dir]
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}
