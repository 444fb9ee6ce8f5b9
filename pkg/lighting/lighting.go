// Package lighting holds the light and material parameter blocks of the lit
// demo and knows how to upload them as GLSL struct uniforms.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformSetter is implemented by shader programs.
type UniformSetter interface {
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec3(name string, vec mgl32.Vec3)
	SetMat4(name string, mat mgl32.Mat4)
}

// DirectionalLight is a light infinitely far away
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// Apply uploads the light into the struct uniform called name
func (l DirectionalLight) Apply(u UniformSetter, name string) {
	u.SetVec3(name+".direction", l.Direction)
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
}

// PointLight is an omnidirectional light with distance attenuation
type PointLight struct {
	Position  mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// Apply uploads the light into the struct uniform called name
func (l PointLight) Apply(u UniformSetter, name string) {
	u.SetVec3(name+".position", l.Position)
	u.SetFloat(name+".constant", l.Constant)
	u.SetFloat(name+".linear", l.Linear)
	u.SetFloat(name+".quadratic", l.Quadratic)
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
}

// Attenuation returns the light intensity factor at distance d
func (l PointLight) Attenuation(d float32) float32 {
	return 1 / (l.Constant + l.Linear*d + l.Quadratic*d*d)
}

// SpotLight is a cone light. CutOff and OuterCutOff are cosines of the
// inner and outer cone half-angles.
type SpotLight struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	CutOff      float32
	OuterCutOff float32
	Ambient     mgl32.Vec3
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
}

// NewSpotLight creates a spot light with the cone half-angles given in degrees
func NewSpotLight(innerDeg, outerDeg float32) SpotLight {
	return SpotLight{
		CutOff:      math32.Cos(mgl32.DegToRad(innerDeg)),
		OuterCutOff: math32.Cos(mgl32.DegToRad(outerDeg)),
	}
}

// Apply uploads the light into the struct uniform called name
func (l SpotLight) Apply(u UniformSetter, name string) {
	u.SetFloat(name+".cut_off", l.CutOff)
	u.SetFloat(name+".outer_cut_off", l.OuterCutOff)
	u.SetVec3(name+".position", l.Position)
	u.SetVec3(name+".direction", l.Direction)
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
}

// Material binds diffuse and specular maps to texture units
type Material struct {
	DiffuseUnit  int32
	SpecularUnit int32
	Shininess    float32
}

// Apply uploads the material into the struct uniform called name
func (m Material) Apply(u UniformSetter, name string) {
	u.SetInt(name+".diffuse_map", m.DiffuseUnit)
	u.SetInt(name+".specular_map", m.SpecularUnit)
	u.SetFloat(name+".shininess", m.Shininess)
}

// OrbitPosition returns the position of the orbiting point light at time t seconds
func OrbitPosition(t float64) mgl32.Vec3 {
	angle := float32(t)
	return mgl32.Vec3{2 * math32.Cos(angle), 1, 2 * math32.Sin(angle)}
}

// SkyView strips the translation from a view matrix so the skybox stays
// centered on the eye.
func SkyView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}
