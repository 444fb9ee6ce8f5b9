package camera

import "github.com/leterax/learngl/pkg/input"

// Camera constants
const (
	// Movement speed in world units per second
	DefaultMoveSpeed = 2.5
	// Degrees of rotation per pixel of cursor travel
	DefaultSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 45.0
	MinFOV     = 1.0
	MaxFOV     = 45.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Clipping planes
	NearPlane = 0.1
	FarPlane  = 100.0
)

// Direction is one of the four movement flags.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// DefaultBindings maps WASD to the movement flags.
var DefaultBindings = map[input.Key]Direction{
	input.KeyW: Forward,
	input.KeyS: Backward,
	input.KeyA: Left,
	input.KeyD: Right,
}
