package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/pkg/input"
)

const epsilon = 1e-5

func vecClose(a, b mgl32.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func matClose(a, b mgl32.Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})

	yaw, pitch := c.Orientation()
	if yaw != DefaultYaw || pitch != DefaultPitch {
		t.Errorf("expected orientation (%v, %v), got (%v, %v)", DefaultYaw, DefaultPitch, yaw, pitch)
	}
	if !vecClose(c.Front(), mgl32.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("expected front (0,0,-1), got %v", c.Front())
	}
	if c.Up() != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("expected up (0,1,0), got %v", c.Up())
	}
	if c.FOV() != DefaultFOV {
		t.Errorf("expected fov %v, got %v", DefaultFOV, c.FOV())
	}
}

func TestFrontAtDefaultYawLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	// cos(-90 degrees) in float32 is a tiny non-zero value, not 0
	front := c.Front()
	if math.Abs(float64(front.X())) > epsilon || front.Y() != 0 || math.Abs(float64(front.Z()+1)) > epsilon {
		t.Errorf("expected front within %v of (0,0,-1), got %v", epsilon, front)
	}
	if !vecClose(front, mgl32.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("vecClose rejects %v against (0,0,-1)", front)
	}
}

func TestFrontIsUnitLength(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	for yaw := float32(-360); yaw <= 360; yaw += 15 {
		for pitch := float32(MinPitch); pitch <= MaxPitch; pitch += 7 {
			c.SetRotation(yaw, pitch)
			length := c.Front().Len()
			if math.Abs(float64(length-1)) > epsilon {
				t.Fatalf("front not unit length at yaw=%v pitch=%v: %v", yaw, pitch, length)
			}
		}
	}
}

func TestPitchIsClamped(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.OnMouseMove(0, 0)

	y := 0.0
	for i := 0; i < 100; i++ {
		y -= 10000 // cursor up, pitch up
		c.OnMouseMove(0, y)
		if _, pitch := c.Orientation(); pitch > MaxPitch || pitch < MinPitch {
			t.Fatalf("pitch out of range: %v", pitch)
		}
	}
	if _, pitch := c.Orientation(); pitch != MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", MaxPitch, pitch)
	}

	for i := 0; i < 200; i++ {
		y += 10000
		c.OnMouseMove(0, y)
		if _, pitch := c.Orientation(); pitch > MaxPitch || pitch < MinPitch {
			t.Fatalf("pitch out of range: %v", pitch)
		}
	}
	if _, pitch := c.Orientation(); pitch != MinPitch {
		t.Errorf("expected pitch clamped to %v, got %v", MinPitch, pitch)
	}

	c.SetRotation(0, 1000)
	if _, pitch := c.Orientation(); pitch != MaxPitch {
		t.Errorf("SetRotation should clamp pitch, got %v", pitch)
	}
}

func TestFirstMouseMoveOnlySeeds(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	yaw0, pitch0 := c.Orientation()
	front0 := c.Front()

	c.OnMouseMove(800, 450)

	yaw1, pitch1 := c.Orientation()
	if yaw1 != yaw0 || pitch1 != pitch0 || c.Front() != front0 {
		t.Fatalf("first mouse move changed orientation: (%v, %v) -> (%v, %v)", yaw0, pitch0, yaw1, pitch1)
	}

	// dx = 10, dy = 450 - 400 = 50
	c.OnMouseMove(810, 400)

	yaw2, pitch2 := c.Orientation()
	if math.Abs(float64(yaw2-yaw0-1.0)) > 1e-4 {
		t.Errorf("expected yaw to change by 1.0, changed by %v", yaw2-yaw0)
	}
	if math.Abs(float64(pitch2-pitch0-5.0)) > 1e-4 {
		t.Errorf("expected pitch to change by 5.0, changed by %v", pitch2-pitch0)
	}
}

func TestResetMouseStateReseeds(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.OnMouseMove(0, 0)
	c.OnMouseMove(100, 0)
	yaw, _ := c.Orientation()

	c.ResetMouseState()
	c.OnMouseMove(5000, 5000)

	if yaw2, _ := c.Orientation(); yaw2 != yaw {
		t.Errorf("move after reset should only seed, yaw %v -> %v", yaw, yaw2)
	}
}

func TestAdvanceWithoutFlags(t *testing.T) {
	start := mgl32.Vec3{1, 2, 3}
	c := NewCamera(start)

	for _, dt := range []float32{0, 0.016, 1, 100} {
		c.Advance(dt)
		if c.Position() != start {
			t.Fatalf("position moved without flags at dt=%v: %v", dt, c.Position())
		}
	}
}

func TestAdvanceForward(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 0})
	c.OnKeyTransition(input.KeyW, true)

	c.Advance(1.0)

	if !vecClose(c.Position(), mgl32.Vec3{0, 0, -2.5}, epsilon) {
		t.Errorf("expected (0,0,-2.5), got %v", c.Position())
	}

	c.OnKeyTransition(input.KeyW, false)
	before := c.Position()
	c.Advance(1.0)
	if c.Position() != before {
		t.Errorf("released key still moves camera")
	}
}

func TestAdvanceDirections(t *testing.T) {
	tests := []struct {
		key      input.Key
		expected mgl32.Vec3
	}{
		{input.KeyW, mgl32.Vec3{0, 0, -2.5}},
		{input.KeyS, mgl32.Vec3{0, 0, 2.5}},
		{input.KeyA, mgl32.Vec3{-2.5, 0, 0}},
		{input.KeyD, mgl32.Vec3{2.5, 0, 0}},
	}

	for _, test := range tests {
		c := NewCamera(mgl32.Vec3{})
		c.OnKeyTransition(test.key, true)
		c.Advance(1.0)
		if !vecClose(c.Position(), test.expected, epsilon) {
			t.Errorf("key %d: expected %v, got %v", test.key, test.expected, c.Position())
		}
	}
}

func TestAdvanceDiagonalIsNotNormalized(t *testing.T) {
	const dt = 0.5

	forward := NewCamera(mgl32.Vec3{})
	forward.OnKeyTransition(input.KeyW, true)
	forward.Advance(dt)

	left := NewCamera(mgl32.Vec3{})
	left.OnKeyTransition(input.KeyA, true)
	left.Advance(dt)

	both := NewCamera(mgl32.Vec3{})
	both.OnKeyTransition(input.KeyW, true)
	both.OnKeyTransition(input.KeyA, true)
	both.Advance(dt)

	expected := forward.Position().Add(left.Position())
	if !vecClose(both.Position(), expected, epsilon) {
		t.Errorf("expected sum of displacements %v, got %v", expected, both.Position())
	}

	single := forward.Position().Len()
	if both.Position().Len() <= single {
		t.Errorf("diagonal travel %v should exceed single-axis travel %v", both.Position().Len(), single)
	}
}

func TestOppositeFlagsCancel(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.OnKeyTransition(input.KeyW, true)
	c.OnKeyTransition(input.KeyS, true)
	c.Advance(1)

	if !vecClose(c.Position(), mgl32.Vec3{}, epsilon) {
		t.Errorf("forward and backward should cancel, got %v", c.Position())
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.OnKeyTransition(input.KeySpace, true)

	for _, dir := range []Direction{Forward, Backward, Left, Right} {
		if c.Moving(dir) {
			t.Errorf("direction %d set by unbound key", dir)
		}
	}
}

func TestViewMatrixLookAt(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})

	view := c.ViewMatrix()

	// Looking down -Z from (0,0,3): identity rotation, translation (0,0,-3)
	expected := mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -3, 1,
	}
	if !matClose(view, expected, epsilon) {
		t.Errorf("expected\n%v\ngot\n%v", expected, view)
	}

	reference := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	if !matClose(view, reference, epsilon) {
		t.Errorf("view differs from reference look-at")
	}

	// pure: calling again does not change state
	if c.ViewMatrix() != view {
		t.Errorf("ViewMatrix is not deterministic")
	}
}

func TestScrollClampsFOV(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	c.OnScroll(10)
	if c.FOV() != DefaultFOV-10 {
		t.Errorf("expected fov %v, got %v", DefaultFOV-10, c.FOV())
	}

	c.OnScroll(1000)
	if c.FOV() != MinFOV {
		t.Errorf("expected fov clamped to %v, got %v", MinFOV, c.FOV())
	}

	c.OnScroll(-1000)
	if c.FOV() != MaxFOV {
		t.Errorf("expected fov clamped to %v, got %v", MaxFOV, c.FOV())
	}
}

func TestProjectionZeroHeight(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	proj := c.Projection(1600, 0)
	for i, v := range proj {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("projection element %d is not finite: %v", i, v)
		}
	}

	expected := mgl32.Perspective(mgl32.DegToRad(DefaultFOV), 1600.0/900.0, NearPlane, FarPlane)
	if !matClose(c.Projection(1600, 900), expected, epsilon) {
		t.Errorf("unexpected projection for 1600x900")
	}
}
