package threads

import (
	"sync"
	"sync/atomic"

	"github.com/andrewmercer13/Multi-Thread-Sim/internal"
)

// Group runs a fixed number of long lived workers and joins them in creation
// order. Unlike a pool, a worker is never recycled: one Spawn is one goroutine.
type Group struct {
	capacity int32
	running  int32
	// spawn和join都会访问handles
	lock    sync.Locker
	handles []*Handle
	options *Options
	state   int32
}

func NewGroup(size int, options ...Option) (*Group, error) {
	if size <= 0 {
		return nil, ErrInvalidGroupSize
	}
	opts := loadOptions(options...)
	if opts.Logger == nil {
		opts.Logger = defaultLogger
	}

	return &Group{
		capacity: int32(size),
		lock:     internal.NewSpinLock(),
		handles:  make([]*Handle, 0, size),
		options:  opts,
	}, nil
}

// Spawn starts task on a new worker with the next 1-based id.
func (g *Group) Spawn(task Task) (*Handle, error) {
	if atomic.LoadInt32(&g.state) == CLOSED {
		return nil, ErrGroupClosed
	}

	g.lock.Lock()
	if len(g.handles) >= g.Cap() {
		g.lock.Unlock()
		return nil, ErrGroupOverload
	}
	h := &Handle{
		group: g,
		id:    len(g.handles) + 1,
		done:  make(chan struct{}),
	}
	g.handles = append(g.handles, h)
	g.lock.Unlock()

	h.run(task)
	return h, nil
}

// Join waits for every spawned worker, in creation order, and returns their
// results indexed by id-1. The group accepts no more workers afterwards.
func (g *Group) Join() []uint64 {
	atomic.StoreInt32(&g.state, CLOSED)

	g.lock.Lock()
	handles := g.handles
	g.lock.Unlock()

	results := make([]uint64, len(handles))
	for i, h := range handles {
		results[i] = h.Join()
	}
	return results
}

// Handles returns the spawned handles in creation order.
func (g *Group) Handles() []*Handle {
	g.lock.Lock()
	defer g.lock.Unlock()
	return append([]*Handle(nil), g.handles...)
}

func (g *Group) incRunning() {
	atomic.AddInt32(&g.running, 1)
}

func (g *Group) decRunning() {
	atomic.AddInt32(&g.running, -1)
}

func (g *Group) Running() int {
	return int(atomic.LoadInt32(&g.running))
}

func (g *Group) Cap() int {
	return int(atomic.LoadInt32(&g.capacity))
}

// Len returns the number of workers spawned so far.
func (g *Group) Len() int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return len(g.handles)
}
