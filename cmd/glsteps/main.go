package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/glsteps/lib/app"
	"github.com/fosdem/glsteps/lib/config"
	"github.com/fosdem/glsteps/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default()
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [config file]\n", os.Args[0])
		os.Exit(2)
	}
	if len(os.Args) == 2 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config invalid: %s\n", err)
			os.Exit(1)
		}
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	log.Setup(level)

	err := app.Run(cfg)
	if err != nil {
		slog.Error(err.Error(), slog.String("module", "main"))
		os.Exit(1)
	}
}
