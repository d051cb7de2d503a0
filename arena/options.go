package arena

import (
	"sync"

	"github.com/andrewmercer13/Multi-Thread-Sim/internal"
)

// LockKind selects the guard used by the synchronized discipline.
type LockKind int

const (
	Mutex LockKind = iota
	Spin
)

func (k LockKind) String() string {
	if k == Spin {
		return "spin"
	}
	return "mutex"
}

// ParseLockKind maps a command line name onto a LockKind.
func ParseLockKind(name string) (LockKind, error) {
	switch name {
	case "", "mutex":
		return Mutex, nil
	case "spin":
		return Spin, nil
	}
	return Mutex, ErrUnknownLock
}

func (k LockKind) newLocker() sync.Locker {
	if k == Spin {
		return internal.NewSpinLock()
	}
	return new(sync.Mutex)
}

type Options struct {
	// 是否对worker侧的检查-修改序列加锁
	Synchronized bool
	LockKind     LockKind
	// 非nil时优先于LockKind
	Locker sync.Locker
}

type Option func(opts *Options)

func loadOptions(options ...Option) *Options {
	opts := new(Options)
	for _, option := range options {
		option(opts)
	}
	return opts
}

func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
	}
}

func WithSynchronized(synchronized bool) Option {
	return func(opts *Options) {
		opts.Synchronized = synchronized
	}
}

func WithLockKind(kind LockKind) Option {
	return func(opts *Options) {
		opts.LockKind = kind
	}
}

func WithLocker(locker sync.Locker) Option {
	return func(opts *Options) {
		opts.Locker = locker
	}
}
