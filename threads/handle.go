package threads

import (
	"runtime"
	"sync/atomic"
)

// Handle is owned by the group and used only to join its worker.
type Handle struct {
	group *Group
	id    int
	tid   int64
	done  chan struct{}

	result   uint64
	panicked bool
}

// ID is the 1-based identifier given at spawn time.
func (h *Handle) ID() int {
	return h.id
}

// TID is the OS thread the worker started on, 0 until it has started or when
// the platform does not expose one.
func (h *Handle) TID() int {
	return int(atomic.LoadInt64(&h.tid))
}

// Join blocks until the worker has exited and returns its result.
func (h *Handle) Join() uint64 {
	<-h.done
	return h.result
}

// Panicked reports whether the worker exited through a recovered panic.
// Only meaningful after Join.
func (h *Handle) Panicked() bool {
	<-h.done
	return h.panicked
}

func (h *Handle) run(task Task) {
	g := h.group
	g.incRunning()
	go func() {
		defer func() {
			if p := recover(); p != nil {
				h.panicked = true
				h.result = 0
				if ph := g.options.PanicHandler; ph != nil {
					ph(h.id, p)
				} else {
					g.options.Logger.Printf("worker %d exits from a panic: %v\n", h.id, p)
					var buf [4096]byte
					n := runtime.Stack(buf[:], false)
					g.options.Logger.Printf("worker %d exits from panic: %s\n", h.id, string(buf[:n]))
				}
			}
			g.decRunning()
			close(h.done)
		}()

		if g.options.LockOSThread {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
		}
		atomic.StoreInt64(&h.tid, int64(gettid()))

		h.result = task(h)
	}()
}
