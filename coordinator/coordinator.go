// Package coordinator drives the shared signal: it spawns the workers, keeps
// re-arming the signal until it has seen enough Idle transitions, then sets
// Terminate and joins every worker.
package coordinator

import (
	"fmt"
	"runtime"
	"time"

	"github.com/andrewmercer13/Multi-Thread-Sim/arena"
	"github.com/andrewmercer13/Multi-Thread-Sim/threads"
	"github.com/andrewmercer13/Multi-Thread-Sim/worker"
)

// Run executes one full run for cfg. The only errors are configuration
// errors, returned before any worker exists.
func Run(cfg Config, options ...Option) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	opts := loadOptions(options...)

	a := arena.New(cfg.arenaOptions()...)
	if opts.Verbose {
		if a.Synchronized() {
			opts.Logger.Printf("synchronized run, %d workers guarded by %s lock", cfg.Threads, a.LockKind())
		} else {
			opts.Logger.Printf("unsynchronized run, %d workers", cfg.Threads)
		}
	}

	g, err := threads.NewGroup(cfg.Threads,
		threads.WithLogger(opts.Logger),
		threads.WithLockOSThread(opts.LockOSThread))
	if err != nil {
		return Report{}, fmt.Errorf("create worker group: %w", err)
	}

	task := worker.Task(a,
		worker.WithPause(opts.Pause),
		worker.WithPrinter(opts.Printer),
		worker.WithOnClaim(opts.OnClaim))
	start := time.Now()
	for i := 0; i < cfg.Threads; i++ {
		if _, err = g.Spawn(task); err != nil {
			// Group is sized to cfg.Threads, so this cannot happen.
			panic(err)
		}
	}

	rearms := drive(a, cfg.Target)
	opts.Printer.Terminating()

	perWorker := g.Join()
	elapsed := time.Since(start)
	if opts.Verbose {
		for _, h := range g.Handles() {
			opts.Logger.Printf("worker %d ran on thread %d", h.ID(), h.TID())
		}
	}
	if err = a.Close(); err != nil {
		opts.Logger.Printf("close arena: %v", err)
	}
	opts.Printer.AllFinished()

	r := Report{Rearms: rearms, PerWorker: perWorker, Elapsed: elapsed}
	for _, n := range perWorker {
		r.WorkerTotal += n
	}
	opts.Printer.Summary(r.Rearms, r.WorkerTotal)
	return r, nil
}

// drive is the coordinator's poll loop. Its writes are never guarded, in
// either discipline. It returns how many times it wrote Active.
func drive(a *arena.Arena, target int64) (rearms uint64) {
	if target == 0 {
		a.Terminate()
		return 0
	}

	a.Arm()
	rearms++

	var idle int64
	for {
		if a.Read() == arena.Idle {
			idle++
			if idle == target {
				a.Terminate()
				return
			}
			a.Arm()
			rearms++
			continue
		}
		runtime.Gosched()
	}
}
