package demo

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/geometry"
)

// Vertex colors are interpolated across the primitive, no transform
const vertexColorVertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 vertexColor;

void main() {
    gl_Position = vec4(aPos, 1.0);
    vertexColor = aColor;
}
`

const vertexColorFragmentShader = `#version 330 core
in vec3 vertexColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(vertexColor, 1.0);
}
`

// clear color of the flat demos
var flatBackground = mgl32.Vec4{0.08, 0.08, 0.08, 1.0}

// flatDemo draws one static pos+color mesh in clip space
type flatDemo struct {
	window *openglhelper.Window
	shader *openglhelper.Shader
	mesh   *openglhelper.Mesh
}

func (d *flatDemo) init(ctx *Context, name string, vertices []float32) {
	d.window = ctx.Window

	shader, err := openglhelper.NewShader(name, vertexColorVertexShader, vertexColorFragmentShader)
	if err != nil {
		log.Printf("warning: %v", err)
	}
	d.shader = shader
	d.mesh = openglhelper.NewMesh(vertices, geometry.PositionColorLayout)
}

func (d *flatDemo) Update(float32) {}

func (d *flatDemo) Draw(Frame) {
	d.window.Clear(flatBackground)
	d.shader.Use()
	d.mesh.Draw()
}

func (d *flatDemo) Delete() {
	d.mesh.Delete()
	d.shader.Delete()
}

// Triangle draws a single static colored triangle
type Triangle struct {
	flatDemo
}

// Name returns the registry name
func (*Triangle) Name() string { return "triangle" }

// Init uploads the triangle and compiles its shader
func (t *Triangle) Init(ctx *Context) error {
	t.init(ctx, "triangle", geometry.Triangle)
	return nil
}

// Square draws a colored quad made of two triangles
type Square struct {
	flatDemo
}

// Name returns the registry name
func (*Square) Name() string { return "square" }

// Init uploads the square and compiles its shader
func (s *Square) Init(ctx *Context) error {
	s.init(ctx, "square", geometry.Square)
	return nil
}
