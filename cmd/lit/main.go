package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/leterax/learngl/pkg/app"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting lit scene...")

	os.Exit(app.Main("lit", os.Args[1:]))
}
