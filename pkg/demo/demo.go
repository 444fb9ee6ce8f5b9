// Package demo contains the rendering demos and the registry used to pick one
// by name.
package demo

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/camera"
	"github.com/leterax/learngl/pkg/config"
)

// Context is what a demo gets at initialization
type Context struct {
	Window *openglhelper.Window
	Config config.Config
}

// Frame describes the frame being drawn
type Frame struct {
	Time   float64 // seconds since the window was created
	Width  int     // framebuffer width
	Height int     // framebuffer height
}

// Demo is a self-contained scene driven by the shared render loop.
//
// Init runs once with a current GL context. An error from Init is fatal;
// resource failures that the demo can render through are logged instead.
type Demo interface {
	Name() string
	Init(ctx *Context) error
	Update(dt float32)
	Draw(frame Frame)
	Delete()
}

// CameraDemo is implemented by demos that are driven by a free-fly camera
type CameraDemo interface {
	Demo
	Camera() *camera.Camera
}

var registry = map[string]func() Demo{
	"triangle": func() Demo { return &Triangle{} },
	"square":   func() Demo { return &Square{} },
	"cube":     func() Demo { return NewCube() },
	"lit":      func() Demo { return NewLit() },
}

// Lookup returns a fresh instance of the named demo
func Lookup(name string) (Demo, bool) {
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Names returns the registered demo names in sorted order
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}
