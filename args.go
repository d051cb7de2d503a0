package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/andrewmercer13/Multi-Thread-Sim/arena"
	"github.com/andrewmercer13/Multi-Thread-Sim/coordinator"
	"github.com/andrewmercer13/Multi-Thread-Sim/worker"
)

const usage = "usage: Multi-Thread-Sim [-sync] [-lock mutex|spin] [-pause d] [-pin] [-v] [-profile file] <thread_count> <target_idle_count>"

// ErrMissingArgs is returned when fewer than two positional arguments are given.
var ErrMissingArgs = errors.New(usage)

type settings struct {
	cfg     coordinator.Config
	pause   time.Duration
	pin     bool
	verbose bool
	profile string
}

func parseArgs(args []string, stderr io.Writer) (settings, error) {
	var s settings

	fs := flag.NewFlagSet("Multi-Thread-Sim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&s.cfg.Sync, "sync", false, "guard the workers' checks with a lock")
	lockName := fs.String("lock", "mutex", "lock used with -sync: mutex or spin")
	fs.DurationVar(&s.pause, "pause", worker.DefaultPause, "back-off after each claim, negative to disable")
	fs.BoolVar(&s.pin, "pin", true, "lock each worker to its own OS thread")
	fs.BoolVar(&s.verbose, "v", false, "log lock kind and worker threads to stderr")
	fs.StringVar(&s.profile, "profile", "", "write a wall-clock profile to `file`")
	if err := fs.Parse(args); err != nil {
		return s, err
	}

	kind, err := arena.ParseLockKind(*lockName)
	if err != nil {
		return s, err
	}
	s.cfg.Lock = kind

	if fs.NArg() < 2 {
		return s, ErrMissingArgs
	}
	// 与strtol一致，无法解析的线程数按0处理
	threads, err := strconv.Atoi(fs.Arg(0))
	if err != nil || threads <= 0 {
		return s, coordinator.ErrInvalidThreadCount
	}
	s.cfg.Threads = threads

	target, err := strconv.ParseInt(fs.Arg(1), 10, 64)
	if err != nil {
		return s, fmt.Errorf("%w: %q", coordinator.ErrInvalidTarget, fs.Arg(1))
	}
	s.cfg.Target = target

	return s, s.cfg.Validate()
}
