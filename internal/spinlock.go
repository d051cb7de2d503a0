// Spinlock vs sync.Mutex
//
// sync.Mutex parks the waiting goroutine (gopark) and needs goready to wake it.
// The spinlock keeps the waiter runnable and only hands the P back with Gosched,
// so it keeps polling the way the workers poll the signal.

package internal

import (
	"runtime"
	"sync"
	"sync/atomic"
)

type spinlock uint32

func (sl *spinlock) Lock() {
	for !atomic.CompareAndSwapUint32((*uint32)(sl), 0, 1) {
		runtime.Gosched()
	}
}

func (sl *spinlock) Unlock() {
	atomic.StoreUint32((*uint32)(sl), 0)
}

// TryLock reports whether the lock was free and is now held by the caller.
func (sl *spinlock) TryLock() bool {
	return atomic.CompareAndSwapUint32((*uint32)(sl), 0, 1)
}

func NewSpinLock() sync.Locker {
	return new(spinlock)
}
