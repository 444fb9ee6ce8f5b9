package main

import (
	"os"
	"runtime"

	"github.com/leterax/learngl/pkg/app"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main("cube", os.Args[1:]))
}
