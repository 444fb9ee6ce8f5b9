package app

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leterax/learngl/pkg/config"
	"github.com/leterax/learngl/pkg/demo"
)

// Exit code for invalid command lines
const ExitUsage = 2

// Main parses args for the named demo and runs it. It returns the process
// exit code.
func Main(name string, args []string) int {
	log.SetPrefix(name + ": ")

	cfg, err := config.Parse(name, args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		return ExitUsage
	}

	if cfg.ListDemos {
		for _, n := range demo.Names() {
			fmt.Println(n)
		}
		return ExitOK
	}

	if err := cfg.Validate(demo.Names()); err != nil {
		log.Printf("invalid configuration: %v", err)
		return ExitUsage
	}

	return Run(cfg)
}
