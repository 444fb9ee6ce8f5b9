package main

import (
	"os"
	"runtime"

	"github.com/leterax/learngl/pkg/app"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main("triangle", os.Args[1:]))
}
