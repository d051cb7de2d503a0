package arena

import (
	"errors"
	"sync"
	"sync/atomic"
)

const (
	OPENED = iota
	CLOSED
)

var (
	// ErrArenaClosed will be returned when closing an arena twice.
	ErrArenaClosed = errors.New("arena has been closed")

	// ErrUnknownLock will be returned when parsing an unsupported lock name.
	ErrUnknownLock = errors.New("unknown lock kind, want mutex or spin")
)

// Arena is the shared control state handed to the coordinator and to every
// worker. It is built before any worker starts and closed after all of them
// have been joined.
//
// Every single load and store of the signal is atomic, but in the
// unsynchronized discipline the read-check-write sequence of a claim is not:
// two workers may both see Active and both claim it, and a late Idle write may
// overwrite a newer value. The synchronized discipline guards the worker side
// sequences with one lock; the coordinator never takes it.
type Arena struct {
	sv int32
	// 每次Arm递增，worker认领时读取，用于检查同一轮是否被多次认领
	round uint64
	state int32

	lock sync.Locker
	kind LockKind
}

func New(options ...Option) *Arena {
	opts := loadOptions(options...)

	a := &Arena{sv: int32(Idle), kind: opts.LockKind}
	if opts.Synchronized {
		if opts.Locker != nil {
			a.lock = opts.Locker
		} else {
			a.lock = opts.LockKind.newLocker()
		}
	}
	return a
}

// Synchronized reports whether worker side sequences run under the lock.
func (a *Arena) Synchronized() bool {
	return a.lock != nil
}

// LockKind returns the kind of guard, meaningful only when Synchronized.
func (a *Arena) LockKind() LockKind {
	return a.kind
}

func (a *Arena) Read() Signal {
	return Signal(atomic.LoadInt32(&a.sv))
}

func (a *Arena) Write(s Signal) {
	atomic.StoreInt32(&a.sv, int32(s))
}

// Round returns the number of times the coordinator has armed the signal.
func (a *Arena) Round() uint64 {
	return atomic.LoadUint64(&a.round)
}

// Arm is the coordinator's Idle->Active write. It is never guarded.
func (a *Arena) Arm() {
	atomic.AddUint64(&a.round, 1)
	a.Write(Active)
}

// Terminate is the coordinator's final write. It is never guarded.
func (a *Arena) Terminate() {
	a.Write(Terminate)
}

// TryClaim is the first worker critical section: if the signal is Active it is
// reset to Idle and the claimed round is returned with ok set.
func (a *Arena) TryClaim() (round uint64, ok bool) {
	if a.lock != nil {
		a.lock.Lock()
		defer a.lock.Unlock()
	}
	if a.Read() != Active {
		return 0, false
	}
	round = a.Round()
	a.Write(Idle)
	return round, true
}

// Terminated is the second worker critical section, kept apart from
// TryClaim so the lock is released and re-acquired between the two checks.
func (a *Arena) Terminated() bool {
	if a.lock != nil {
		a.lock.Lock()
		defer a.lock.Unlock()
	}
	return a.Read() == Terminate
}

// Close tears down the arena once all workers have been joined.
func (a *Arena) Close() error {
	if !atomic.CompareAndSwapInt32(&a.state, OPENED, CLOSED) {
		return ErrArenaClosed
	}
	return nil
}

func (a *Arena) Closed() bool {
	return atomic.LoadInt32(&a.state) == CLOSED
}
