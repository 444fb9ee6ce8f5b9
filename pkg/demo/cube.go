package demo

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/camera"
	"github.com/leterax/learngl/pkg/geometry"
)

// Uniforms of the solid color shader
const (
	colorUniform = "color"
	wvpUniform   = "wvp"
)

// Cube is a single solid colored cube seen through the free-fly camera
type Cube struct {
	window *openglhelper.Window
	camera *camera.Camera
	shader *openglhelper.Shader
	mesh   *openglhelper.Mesh
	color  mgl32.Vec3
}

// NewCube creates the demo with the camera at its default position
func NewCube() *Cube {
	return &Cube{
		camera: camera.NewCamera(mgl32.Vec3{0, 0, 3}),
		color:  mgl32.Vec3{1.0, 0.5, 0.31},
	}
}

// Name returns the registry name
func (*Cube) Name() string { return "cube" }

// Camera returns the camera driven by input
func (c *Cube) Camera() *camera.Camera { return c.camera }

// Init loads the color shader and uploads the cube
func (c *Cube) Init(ctx *Context) error {
	c.window = ctx.Window

	shader, err := openglhelper.LoadShaderFromFiles(ctx.Config.Shader("color_v.glsl"), ctx.Config.Shader("color_f.glsl"))
	if err != nil {
		log.Printf("warning: %v", err)
	}
	c.shader = shader
	c.mesh = openglhelper.NewMesh(geometry.Cube, geometry.PositionLayout)
	return nil
}

// Update does nothing, the camera is advanced by the render loop
func (c *Cube) Update(float32) {}

// Draw renders the cube at the origin
func (c *Cube) Draw(frame Frame) {
	c.window.Clear(mgl32.Vec4{0, 0, 0, 1})

	view := c.camera.ViewMatrix()
	projection := c.camera.Projection(frame.Width, frame.Height)

	c.shader.Use()
	c.shader.SetVec3(colorUniform, c.color)
	c.shader.SetMat4(wvpUniform, projection.Mul4(view))
	c.mesh.Draw()
}

// Delete releases GL resources
func (c *Cube) Delete() {
	c.mesh.Delete()
	c.shader.Delete()
}
