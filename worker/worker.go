// Package worker implements the polling loop shared by both disciplines.
// Whether the checks run under a lock is decided by the arena it is given.
package worker

import (
	"runtime"

	"github.com/andrewmercer13/Multi-Thread-Sim/arena"
	"github.com/andrewmercer13/Multi-Thread-Sim/threads"
)

// Run polls the signal until it reads Terminate and returns how many Active
// periods this worker claimed. Each iteration performs the claim check and the
// terminate check as two separate steps; the pause after a claim is taken
// outside any lock.
func Run(a *arena.Arena, id int, options ...Option) uint64 {
	opts := loadOptions(options...)
	opts.Printer.Starting(id)

	var count uint64
	for {
		if round, ok := a.TryClaim(); ok {
			count++
			if opts.OnClaim != nil {
				opts.OnClaim(id, round)
			}
			if opts.Pause > 0 {
				pause(opts.Pause)
			}
		}
		if a.Terminated() {
			break
		}
		// 仍然是忙等，只是把P让给其他goroutine
		runtime.Gosched()
	}

	opts.Printer.Finished(id, count)
	return count
}

// Task adapts Run to a thread group, using the handle id as the worker id.
func Task(a *arena.Arena, options ...Option) threads.Task {
	return func(h *threads.Handle) uint64 {
		return Run(a, h.ID(), options...)
	}
}
