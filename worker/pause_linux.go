package worker

import (
	"time"

	"golang.org/x/sys/unix"
)

// pause sleeps the calling thread with nanosleep, resuming after EINTR.
func pause(d time.Duration) {
	ts := unix.NsecToTimespec(d.Nanoseconds())
	for {
		var left unix.Timespec
		if err := unix.Nanosleep(&ts, &left); err != unix.EINTR {
			return
		}
		ts = left
	}
}
