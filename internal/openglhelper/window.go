package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/pkg/input"
)

// WindowOptions configures window and context creation
type WindowOptions struct {
	Width   int
	Height  int
	Title   string
	VSync   bool
	Debug   bool // request a debug context
	GLMajor int
	GLMinor int
}

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	mouseCaptured bool
	debug         bool
}

// NewWindow creates a new GLFW window with a current OpenGL core context and
// loads the GL function pointers. Any error here is fatal for the caller.
// Must be called from the locked main thread.
func NewWindow(opts WindowOptions) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if opts.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	// Create window
	glfwWindow, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfwWindow.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Print OpenGL version
	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	// Configure global OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	w := &Window{
		glfwWindow: glfwWindow,
		debug:      opts.Debug,
	}
	// The framebuffer can differ from the requested size on HiDPI screens
	w.width, w.height = glfwWindow.GetFramebufferSize()

	return w, nil
}

// SetEventHandler forwards keyboard, cursor, scroll and framebuffer resize
// callbacks to handler. Events are delivered from within PollEvents, on the
// calling thread.
func (w *Window) SetEventHandler(handler func(input.Event)) {
	w.glfwWindow.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		handler(input.KeyEvent{Key: input.Key(key), Action: input.Action(action)})
	})
	w.glfwWindow.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		handler(input.CursorEvent{X: xpos, Y: ypos})
	})
	w.glfwWindow.SetScrollCallback(func(_ *glfw.Window, xoffset, yoffset float64) {
		handler(input.ScrollEvent{XOffset: xoffset, YOffset: yoffset})
	})
	w.glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		handler(input.ResizeEvent{Width: width, Height: height})
	})
}

// Clear clears the color and depth buffers
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers, blocking on vsync if enabled
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Time returns the monotonic time in seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose requests the render loop to end
func (w *Window) SetShouldClose(close bool) {
	w.glfwWindow.SetShouldClose(close)
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// WindowSize returns the window dimensions in screen coordinates
func (w *Window) WindowSize() (width, height int) {
	return w.glfwWindow.GetSize()
}

// Debug reports whether a debug context was requested
func (w *Window) Debug() bool {
	return w.debug
}

// OnResize is called when the framebuffer is resized
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetMouseCaptured captures or releases the mouse cursor
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// IsMouseCaptured returns whether the mouse is currently captured
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}
