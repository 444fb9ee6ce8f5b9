package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type uniformRecorder struct {
	ints   map[string]int32
	floats map[string]float32
	vecs   map[string]mgl32.Vec3
	mats   map[string]mgl32.Mat4
}

func newUniformRecorder() *uniformRecorder {
	return &uniformRecorder{
		ints:   map[string]int32{},
		floats: map[string]float32{},
		vecs:   map[string]mgl32.Vec3{},
		mats:   map[string]mgl32.Mat4{},
	}
}

func (r *uniformRecorder) SetInt(name string, value int32)     { r.ints[name] = value }
func (r *uniformRecorder) SetFloat(name string, value float32) { r.floats[name] = value }
func (r *uniformRecorder) SetVec3(name string, v mgl32.Vec3)   { r.vecs[name] = v }
func (r *uniformRecorder) SetMat4(name string, m mgl32.Mat4)   { r.mats[name] = m }

func TestSpotLightCutoffsAreCosines(t *testing.T) {
	spot := NewSpotLight(12.5, 17.5)

	if math.Abs(float64(spot.CutOff)-math.Cos(12.5*math.Pi/180)) > 1e-6 {
		t.Errorf("unexpected inner cutoff %v", spot.CutOff)
	}
	if math.Abs(float64(spot.OuterCutOff)-math.Cos(17.5*math.Pi/180)) > 1e-6 {
		t.Errorf("unexpected outer cutoff %v", spot.OuterCutOff)
	}
	if spot.OuterCutOff >= spot.CutOff {
		t.Errorf("outer cone cosine %v should be smaller than inner %v", spot.OuterCutOff, spot.CutOff)
	}
}

func TestOrbitPosition(t *testing.T) {
	for _, tm := range []float64{0, 0.5, math.Pi / 2, 3, 10} {
		p := OrbitPosition(tm)
		if p.Y() != 1 {
			t.Errorf("orbit height should be 1, got %v", p.Y())
		}
		radius := math.Hypot(float64(p.X()), float64(p.Z()))
		if math.Abs(radius-2) > 1e-5 {
			t.Errorf("orbit radius should be 2 at t=%v, got %v", tm, radius)
		}
	}

	if p := OrbitPosition(0); !p.ApproxEqualThreshold(mgl32.Vec3{2, 1, 0}, 1e-6) {
		t.Errorf("expected (2,1,0) at t=0, got %v", p)
	}
}

func TestSkyViewDropsTranslation(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{5, 6, 7}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	sky := SkyView(view)

	if sky.At(0, 3) != 0 || sky.At(1, 3) != 0 || sky.At(2, 3) != 0 {
		t.Errorf("sky view still has translation: %v", sky.Col(3))
	}
	if sky.At(3, 3) != 1 {
		t.Errorf("expected homogeneous 1, got %v", sky.At(3, 3))
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if sky.At(row, col) != view.At(row, col) {
				t.Errorf("rotation element (%d,%d) changed", row, col)
			}
		}
	}
}

func TestPointLightAttenuation(t *testing.T) {
	l := DefaultScene().Point

	if l.Attenuation(0) != 1 {
		t.Errorf("attenuation at the light should be 1, got %v", l.Attenuation(0))
	}
	if l.Attenuation(2) >= l.Attenuation(1) {
		t.Errorf("attenuation should fall off with distance")
	}
}

func TestSceneApply(t *testing.T) {
	scene := DefaultScene()
	eye := mgl32.Vec3{0, 0, 3}
	look := mgl32.Vec3{0, 0, -1}
	scene.Update(0, eye, look)

	rec := newUniformRecorder()
	scene.Apply(rec, eye)

	if rec.vecs["dir_source.direction"] != (mgl32.Vec3{0.2, -0.3, 0.5}) {
		t.Errorf("unexpected directional light direction %v", rec.vecs["dir_source.direction"])
	}
	if rec.vecs["dir_source.diffuse"] != rec.vecs["dir_source.ambient"] {
		t.Errorf("diffuse slot should carry the ambient color")
	}
	if rec.vecs["spot_source.position"] != eye || rec.vecs["spot_source.direction"] != look {
		t.Errorf("spot light should follow the eye")
	}
	if !rec.vecs["point_source.position"].ApproxEqualThreshold(mgl32.Vec3{2, 1, 0}, 1e-6) {
		t.Errorf("unexpected point light position %v", rec.vecs["point_source.position"])
	}
	if rec.floats["point_source.linear"] != 0.7 || rec.floats["point_source.quadratic"] != 1.8 {
		t.Errorf("unexpected attenuation terms")
	}
	if rec.ints["material.diffuse_map"] != 0 || rec.ints["material.specular_map"] != 1 {
		t.Errorf("unexpected material texture units")
	}
	if rec.floats["material.shininess"] != 32 {
		t.Errorf("unexpected shininess %v", rec.floats["material.shininess"])
	}
	if rec.vecs["eye_pos"] != eye {
		t.Errorf("eye position not uploaded")
	}

	// 4 directional + 7 spot + 7 point + 3 material + eye
	uploaded := len(rec.ints) + len(rec.floats) + len(rec.vecs) + len(rec.mats)
	if uploaded != 22 {
		t.Errorf("expected 22 uniforms, got %d", uploaded)
	}
}
