package demo

import (
	"log"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/assets"
	"github.com/leterax/learngl/pkg/camera"
	"github.com/leterax/learngl/pkg/geometry"
	"github.com/leterax/learngl/pkg/lighting"
)

// Asset names of the lit scene
const (
	diffuseTexture  = "container2.png"
	specularTexture = "container2_specular.png"
	skyboxDir       = "skybox"
	skyboxExt       = ".jpg"
)

// Lit renders textured cubes lit by a directional light, an orbiting point
// light and a spot light attached to the camera, inside a skybox.
type Lit struct {
	window *openglhelper.Window
	camera *camera.Camera
	scene  lighting.Scene

	cubeShader   *openglhelper.Shader
	colorShader  *openglhelper.Shader
	skyboxShader *openglhelper.Shader

	cube   *openglhelper.Mesh
	marker *openglhelper.Mesh
	skybox *openglhelper.Mesh

	diffuseMap  *openglhelper.Texture
	specularMap *openglhelper.Texture
	skyMap      *openglhelper.Texture
}

// NewLit creates the demo with the default lights
func NewLit() *Lit {
	return &Lit{
		camera: camera.NewCamera(mgl32.Vec3{0, 0, 3}),
		scene:  lighting.DefaultScene(),
	}
}

// Name returns the registry name
func (*Lit) Name() string { return "lit" }

// Camera returns the camera driven by input
func (l *Lit) Camera() *camera.Camera { return l.camera }

// Init loads shaders, textures and meshes. Missing files are logged and the
// demo keeps running with whatever loaded.
func (l *Lit) Init(ctx *Context) error {
	l.window = ctx.Window
	cfg := ctx.Config

	l.cubeShader = loadShader(cfg.Shader("cube_v.glsl"), cfg.Shader("cube_f.glsl"))
	l.colorShader = loadShader(cfg.Shader("color_v.glsl"), cfg.Shader("color_f.glsl"))
	l.skyboxShader = loadShader(cfg.Shader("skymap_v.glsl"), cfg.Shader("skymap_f.glsl"))

	l.cube = openglhelper.NewMesh(geometry.TexturedCube, geometry.PositionNormalUVLayout)
	l.marker = openglhelper.NewMesh(geometry.Cube, geometry.PositionLayout)
	l.skybox = openglhelper.NewMesh(geometry.Skybox, geometry.PositionLayout)

	var err error
	if l.diffuseMap, err = openglhelper.NewTexture2D(cfg.Texture(diffuseTexture)); err != nil {
		log.Printf("warning: %v", err)
	}
	if l.specularMap, err = openglhelper.NewTexture2D(cfg.Texture(specularTexture)); err != nil {
		log.Printf("warning: %v", err)
	}
	if l.skyMap, err = openglhelper.NewCubemap(assets.SkyboxFaces(cfg.Texture(skyboxDir), skyboxExt)); err != nil {
		log.Printf("warning: %v", err)
	}

	l.skyboxShader.Use()
	l.skyboxShader.SetInt("skybox", 0)

	return nil
}

func loadShader(vertexPath, fragmentPath string) *openglhelper.Shader {
	shader, err := openglhelper.LoadShaderFromFiles(vertexPath, fragmentPath)
	if err != nil {
		log.Printf("warning: %v", err)
	}
	return shader
}

// Update does nothing, the lights follow the frame time in Draw
func (l *Lit) Update(float32) {}

// Draw renders the skybox, the lit cubes and the light marker in that order
func (l *Lit) Draw(frame Frame) {
	l.window.Clear(mgl32.Vec4{0, 0, 0, 1})

	view := l.camera.ViewMatrix()
	projection := l.camera.Projection(frame.Width, frame.Height)
	eye := l.camera.Position()

	l.scene.Update(frame.Time, eye, l.camera.Front())

	// Skybox at maximum depth passes LEQUAL against the cleared buffer
	gl.DepthFunc(gl.LEQUAL)
	l.skyboxShader.Use()
	l.skyboxShader.SetMat4("projection", projection)
	l.skyboxShader.SetMat4("view", lighting.SkyView(view))
	l.skyMap.Bind(0)
	l.skybox.Draw()
	gl.DepthFunc(gl.LESS)

	l.cubeShader.Use()
	l.scene.Apply(l.cubeShader, eye)
	l.diffuseMap.Bind(uint32(l.scene.Material.DiffuseUnit))
	l.specularMap.Bind(uint32(l.scene.Material.SpecularUnit))
	for _, position := range lighting.CubePositions {
		world := mgl32.Translate3D(position.X(), position.Y(), position.Z())
		l.cubeShader.SetMat4("world", world)
		l.cubeShader.SetMat4(wvpUniform, projection.Mul4(view).Mul4(world))
		l.cube.Draw()
	}

	light := l.scene.Point.Position
	world := mgl32.Translate3D(light.X(), light.Y(), light.Z())
	l.colorShader.Use()
	l.colorShader.SetVec3(colorUniform, mgl32.Vec3{1, 1, 1})
	l.colorShader.SetMat4(wvpUniform, projection.Mul4(view).Mul4(world))
	l.marker.Draw()
}

// Delete releases GL resources
func (l *Lit) Delete() {
	l.skyMap.Delete()
	l.specularMap.Delete()
	l.diffuseMap.Delete()
	l.skybox.Delete()
	l.marker.Delete()
	l.cube.Delete()
	l.skyboxShader.Delete()
	l.colorShader.Delete()
	l.cubeShader.Delete()
}
