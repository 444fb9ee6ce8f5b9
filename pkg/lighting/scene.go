package lighting

import "github.com/go-gl/mathgl/mgl32"

// Scene is the full set of lights and the material used by the lit demo
type Scene struct {
	Directional DirectionalLight
	Point       PointLight
	Spot        SpotLight
	Material    Material
}

// Uniform struct names in the lit cube shader
const (
	DirectionalUniform = "dir_source"
	PointUniform       = "point_source"
	SpotUniform        = "spot_source"
	MaterialUniform    = "material"
	EyeUniform         = "eye_pos"
)

// CubePositions are the world translations of the lit cubes
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{1.0, 2.0, 0.3},
	{1.4, 1.3, -1.0},
	{2.2, 1.9, 1.0},
}

// DefaultScene returns the lighting parameters of the lit demo.
// Every light receives the ambient color in its diffuse slot.
func DefaultScene() Scene {
	ambient := mgl32.Vec3{0.2, 0.2, 0.2}
	specular := mgl32.Vec3{1.0, 1.0, 1.0}

	spot := NewSpotLight(12.5, 17.5)
	spot.Ambient = ambient
	spot.Diffuse = ambient
	spot.Specular = specular

	return Scene{
		Directional: DirectionalLight{
			Direction: mgl32.Vec3{0.2, -0.3, 0.5},
			Ambient:   ambient,
			Diffuse:   ambient,
			Specular:  specular,
		},
		Point: PointLight{
			Constant:  1.0,
			Linear:    0.7,
			Quadratic: 1.8,
			Ambient:   ambient,
			Diffuse:   ambient,
			Specular:  specular,
		},
		Spot: spot,
		Material: Material{
			DiffuseUnit:  0,
			SpecularUnit: 1,
			Shininess:    32.0,
		},
	}
}

// Update moves the point light along its orbit and attaches the spot light
// to the eye.
func (s *Scene) Update(t float64, eye, look mgl32.Vec3) {
	s.Point.Position = OrbitPosition(t)
	s.Spot.Position = eye
	s.Spot.Direction = look
}

// Apply uploads every light, the material and the eye position
func (s *Scene) Apply(u UniformSetter, eye mgl32.Vec3) {
	s.Directional.Apply(u, DirectionalUniform)
	s.Spot.Apply(u, SpotUniform)
	s.Point.Apply(u, PointUniform)
	s.Material.Apply(u, MaterialUniform)
	u.SetVec3(EyeUniform, eye)
}
