package worker

import (
	"time"

	"github.com/andrewmercer13/Multi-Thread-Sim/console"
)

// DefaultPause is how long a worker backs off after a claim so that one worker
// does not take every transition.
const DefaultPause = 10 * time.Microsecond

type Options struct {
	// 0表示DefaultPause，负数表示不暂停
	Pause   time.Duration
	Printer *console.Printer
	// 每次认领后回调，round为coordinator的第几次Arm
	OnClaim func(id int, round uint64)
}

type Option func(opts *Options)

func loadOptions(options ...Option) *Options {
	opts := new(Options)
	for _, option := range options {
		option(opts)
	}
	if opts.Pause == 0 {
		opts.Pause = DefaultPause
	}
	return opts
}

func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
	}
}

func WithPause(pause time.Duration) Option {
	return func(opts *Options) {
		opts.Pause = pause
	}
}

func WithPrinter(printer *console.Printer) Option {
	return func(opts *Options) {
		opts.Printer = printer
	}
}

func WithOnClaim(onClaim func(id int, round uint64)) Option {
	return func(opts *Options) {
		opts.OnClaim = onClaim
	}
}
