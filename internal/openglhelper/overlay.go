package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

const overlayVertexShader = `#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

uniform mat4 proj;

out vec2 uv;
out vec4 color;

void main() {
    uv = aUV;
    color = aColor;
    gl_Position = proj * vec4(aPos, 0.0, 1.0);
}
`

const overlayFragmentShader = `#version 330 core
in vec2 uv;
in vec4 color;

uniform sampler2D atlas;

out vec4 FragColor;

void main() {
    FragColor = vec4(color.rgb, color.a * texture(atlas, uv).r);
}
`

// initial buffer size in bytes, grown on demand
const overlayBufferSize = 1024 * 8

// Overlay draws a small read-only Dear ImGui stats window on top of the scene.
// Mouse input is disabled so it never competes with the camera.
type Overlay struct {
	window  *Window
	context *imgui.Context
	io      imgui.IO

	shader *Shader
	vao    *VertexArrayObject
	vbo    *BufferObject
	ebo    *BufferObject
	atlas  *Texture

	lastTime float64
	visible  bool
}

// NewOverlay creates the ImGui context and its GL resources for w
func NewOverlay(w *Window, visible bool) (*Overlay, error) {
	context := imgui.CreateContext(nil)

	io := imgui.CurrentIO()
	io.SetConfigFlags(imgui.ConfigFlagsNoMouse)
	io.SetIniFilename("")
	imgui.StyleColorsDark()

	shader, err := NewShader("overlay", overlayVertexShader, overlayFragmentShader)
	if err != nil {
		shader.Delete()
		context.Destroy()
		return nil, fmt.Errorf("failed to build overlay shader: %w", err)
	}

	vao := NewVAO()
	vao.Bind()

	vbo := NewBufferObject(gl.ARRAY_BUFFER, overlayBufferSize, nil, StreamDraw)
	vertexSize, posOffset, uvOffset, colorOffset := imgui.VertexBufferLayout()
	vao.SetVertexAttribPointer(0, 2, gl.FLOAT, false, int32(vertexSize), posOffset)
	vao.SetVertexAttribPointer(1, 2, gl.FLOAT, false, int32(vertexSize), uvOffset)
	vao.SetVertexAttribPointer(2, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), colorOffset)

	ebo := NewBufferObject(gl.ELEMENT_ARRAY_BUFFER, overlayBufferSize, nil, StreamDraw)

	vao.Unbind()
	vbo.Unbind()
	ebo.Unbind()

	image := io.Fonts().TextureDataAlpha8()
	atlas := NewAlpha8Texture(image.Width, image.Height, (*uint8)(image.Pixels))
	io.Fonts().SetTextureID(imgui.TextureID(atlas.ID))

	return &Overlay{
		window:   w,
		context:  context,
		io:       io,
		shader:   shader,
		vao:      vao,
		vbo:      vbo,
		ebo:      ebo,
		atlas:    atlas,
		lastTime: glfw.GetTime(),
		visible:  visible,
	}, nil
}

// Toggle flips overlay visibility
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// Visible reports whether the overlay is drawn
func (o *Overlay) Visible() bool {
	return o.visible
}

// Render lays out a window titled title with one text row per line and draws
// it over the current framebuffer. Callers skip it while the overlay is hidden.
func (o *Overlay) Render(title string, lines []string) {
	now := o.window.Time()
	delta := float32(now - o.lastTime)
	o.lastTime = now
	if delta <= 0 || delta > 1 {
		delta = 1.0 / 60.0
	}

	displayWidth, displayHeight := o.window.WindowSize()
	o.io.SetDisplaySize(imgui.Vec2{X: float32(displayWidth), Y: float32(displayHeight)})
	o.io.SetDeltaTime(delta)

	imgui.NewFrame()
	imgui.SetNextWindowPos(imgui.Vec2{X: 10, Y: 10})
	imgui.SetNextWindowBgAlpha(0.35)
	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsAlwaysAutoResize |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing | imgui.WindowFlagsNoNav
	if imgui.BeginV(title, nil, flags) {
		for _, line := range lines {
			imgui.Text(line)
		}
	}
	imgui.End()
	imgui.Render()

	o.draw(displayWidth, displayHeight)
}

func (o *Overlay) draw(displayWidth, displayHeight int) {
	fbWidth, fbHeight := o.window.Size()
	if displayWidth == 0 || displayHeight == 0 || fbWidth == 0 || fbHeight == 0 {
		return
	}

	drawData := imgui.RenderedDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / float32(displayWidth),
		Y: float32(fbHeight) / float32(displayHeight),
	})

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	o.shader.Use()
	o.shader.SetInt("atlas", 0)
	o.shader.SetMat4("proj", mgl32.Ortho2D(0, float32(displayWidth), float32(displayHeight), 0))
	o.vao.Bind()
	o.atlas.Bind(0)

	indexSize := imgui.IndexBufferLayout()
	indexType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		if vertexBufferSize > o.vbo.Size {
			o.vbo.Orphan(vertexBufferSize * 2)
		}
		o.vbo.UpdateSubData(0, vertexBufferSize, vertexBuffer)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		if indexBufferSize > o.ebo.Size {
			o.ebo.Orphan(indexBufferSize * 2)
		}
		o.ebo.UpdateSubData(0, indexBufferSize, indexBuffer)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
			clip := cmd.ClipRect()
			gl.Scissor(int32(clip.X), int32(fbHeight)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType,
				uintptr(cmd.IndexOffset()*indexSize), int32(cmd.VertexOffset()))
		}
	}

	o.vao.Unbind()
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Delete releases the GL resources and the ImGui context
func (o *Overlay) Delete() {
	o.atlas.Delete()
	o.ebo.Delete()
	o.vbo.Delete()
	o.vao.Delete()
	o.shader.Delete()
	o.context.Destroy()
}
