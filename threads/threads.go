package threads

import (
	"errors"
	"log"
	"os"
)

const (
	OPENED = iota
	CLOSED
)

var (
	// ErrInvalidGroupSize will be returned when creating a group with no room for a worker.
	ErrInvalidGroupSize = errors.New("invalid size for group")

	// ErrGroupClosed will be returned when spawning into a group that has already been joined.
	ErrGroupClosed = errors.New("this group has been joined")

	// ErrGroupOverload will be returned when spawning more workers than the group holds.
	ErrGroupOverload = errors.New("too many workers spawned into group")

	defaultLogger = Logger(log.New(os.Stderr, "", log.LstdFlags))
)

type Logger interface {
	Printf(format string, args ...interface{})
}

// Task is the body of one worker. Its return value is collected at join.
type Task func(h *Handle) uint64
