package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/felixge/fgprof"

	"github.com/andrewmercer13/Multi-Thread-Sim/console"
	"github.com/andrewmercer13/Multi-Thread-Sim/coordinator"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	s, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	logger := log.New(stderr, "", log.LstdFlags)

	if s.profile != "" {
		f, err := os.Create(s.profile)
		if err != nil {
			logger.Printf("could not create profile: %v", err)
			return 1
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				logger.Printf("could not write profile: %v", err)
			}
		}()
	}

	_, err = coordinator.Run(s.cfg,
		coordinator.WithLogger(logger),
		coordinator.WithPrinter(console.New(stdout)),
		coordinator.WithVerbose(s.verbose),
		coordinator.WithPause(s.pause),
		coordinator.WithLockOSThread(s.pin))
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	return 0
}
