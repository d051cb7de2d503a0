package coordinator

import (
	"errors"
	"fmt"

	"github.com/andrewmercer13/Multi-Thread-Sim/arena"
)

var (
	// ErrInvalidThreadCount is returned for a thread count below one.
	ErrInvalidThreadCount = errors.New("Must have at least 1 thread")

	// ErrInvalidTarget is returned for a negative target count.
	ErrInvalidTarget = errors.New("target count must not be negative")
)

// Config is the run topology chosen at startup.
type Config struct {
	// worker数量，不包括coordinator自身
	Threads int
	// coordinator观察到Idle多少次后设置Terminate
	Target int64
	Sync   bool
	Lock   arena.LockKind
}

func (c Config) Validate() error {
	if c.Threads <= 0 {
		return ErrInvalidThreadCount
	}
	if c.Target < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, c.Target)
	}
	return nil
}

func (c Config) arenaOptions() []arena.Option {
	return []arena.Option{
		arena.WithSynchronized(c.Sync),
		arena.WithLockKind(c.Lock),
	}
}
