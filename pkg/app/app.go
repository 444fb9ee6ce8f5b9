// Package app runs a demo inside a window: it owns the startup sequence, the
// input routing and the frame loop shared by every command.
package app

import (
	"fmt"
	"log"

	"github.com/loov/hrtime"

	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/camera"
	"github.com/leterax/learngl/pkg/config"
	"github.com/leterax/learngl/pkg/demo"
	"github.com/leterax/learngl/pkg/hud"
	"github.com/leterax/learngl/pkg/input"
)

// Process exit codes
const (
	ExitOK   = 0
	ExitInit = -1
)

// Run opens the window, runs the configured demo until the window is closed
// and returns the process exit code. Must be called from the locked main
// thread.
func Run(cfg config.Config) int {
	d, ok := demo.Lookup(cfg.Demo)
	if !ok {
		log.Printf("unknown demo %q, available: %v", cfg.Demo, demo.Names())
		return ExitInit
	}

	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Title:   cfg.Title,
		VSync:   cfg.VSync,
		Debug:   cfg.Debug,
		GLMajor: cfg.GLMajor,
		GLMinor: cfg.GLMinor,
	})
	if err != nil {
		log.Printf("Failed to create window: %v", err)
		return ExitInit
	}
	defer window.Close()

	if window.Debug() {
		window.EnableDebugOutput()
	}

	if err := d.Init(&demo.Context{Window: window, Config: cfg}); err != nil {
		log.Printf("Failed to initialize %s: %v", d.Name(), err)
		return ExitInit
	}
	defer d.Delete()

	overlay, err := openglhelper.NewOverlay(window, cfg.ShowHUD)
	if err != nil {
		log.Printf("warning: overlay disabled: %v", err)
	} else {
		defer overlay.Delete()
	}

	var cam *camera.Camera
	if cd, ok := d.(demo.CameraDemo); ok {
		cam = cd.Camera()
	}

	router := newRouter(window, cam, overlay, cfg.Captured)
	window.SetEventHandler(router.Dispatch)
	window.SetMouseCaptured(cam != nil && cfg.Captured)

	fmt.Printf("Running %s (%v)\n", d.Name(), demo.Names())
	loop(window, d, cam, overlay)
	return ExitOK
}

// newRouter connects window events to the window, the camera and the overlay
func newRouter(window *openglhelper.Window, cam *camera.Camera, overlay *openglhelper.Overlay, captured bool) *input.Router {
	router := input.NewRouter(cam != nil && captured)
	router.OnResize = window.OnResize
	router.OnClose = func() { window.SetShouldClose(true) }

	if cam != nil {
		router.Keys = cam
		router.Cursor = cam
		router.Scroll = cam
		router.OnCaptureChange = window.SetMouseCaptured
	}
	if overlay != nil {
		router.OnHUDToggle = overlay.Toggle
	}
	return router
}

func loop(window *openglhelper.Window, d demo.Demo, cam *camera.Camera, overlay *openglhelper.Overlay) {
	var stats hud.FrameStats
	var view hud.View
	if cam != nil {
		view = cam
	}

	lastFrameTime := window.Time()

	for !window.ShouldClose() {
		currentTime := window.Time()
		deltaTime := float32(currentTime - lastFrameTime)
		lastFrameTime = currentTime

		start := hrtime.Now()
		if cam != nil {
			cam.Advance(deltaTime)
		}
		d.Update(deltaTime)

		width, height := window.Size()
		d.Draw(demo.Frame{Time: currentTime, Width: width, Height: height})
		stats.Add(deltaTime, hrtime.Since(start))

		if overlay != nil && overlay.Visible() {
			overlay.Render(d.Name(), hud.Lines(&stats, view, window.IsMouseCaptured()))
		}

		window.SwapBuffers()
		window.PollEvents()
	}
}
