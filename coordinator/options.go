package coordinator

import (
	"log"
	"os"
	"time"

	"github.com/andrewmercer13/Multi-Thread-Sim/console"
)

var defaultLogger = Logger(log.New(os.Stderr, "", log.LstdFlags))

type Logger interface {
	Printf(format string, args ...interface{})
}

type Options struct {
	Logger  Logger
	Printer *console.Printer
	// 仅在Verbose时输出锁类型和worker的OS线程号
	Verbose      bool
	Pause        time.Duration
	LockOSThread bool
	OnClaim      func(id int, round uint64)
}

type Option func(opts *Options)

func loadOptions(options ...Option) *Options {
	opts := new(Options)
	for _, option := range options {
		option(opts)
	}
	if opts.Logger == nil {
		opts.Logger = defaultLogger
	}
	return opts
}

func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
	}
}

func WithLogger(logger Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func WithPrinter(printer *console.Printer) Option {
	return func(opts *Options) {
		opts.Printer = printer
	}
}

func WithVerbose(verbose bool) Option {
	return func(opts *Options) {
		opts.Verbose = verbose
	}
}

func WithPause(pause time.Duration) Option {
	return func(opts *Options) {
		opts.Pause = pause
	}
}

func WithLockOSThread(lockOSThread bool) Option {
	return func(opts *Options) {
		opts.LockOSThread = lockOSThread
	}
}

func WithOnClaim(onClaim func(id int, round uint64)) Option {
	return func(opts *Options) {
		opts.OnClaim = onClaim
	}
}
