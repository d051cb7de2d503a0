//go:build !linux
// +build !linux

package worker

import "time"

func pause(d time.Duration) {
	time.Sleep(d)
}
