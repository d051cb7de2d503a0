package worker

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewmercer13/Multi-Thread-Sim/arena"
	"github.com/andrewmercer13/Multi-Thread-Sim/console"
	"github.com/andrewmercer13/Multi-Thread-Sim/threads"
)

func waitIdle(t *testing.T, a *arena.Arena) {
	t.Helper()
	require.Eventually(t, func() bool {
		return a.Read() == arena.Idle
	}, 5*time.Second, 50*time.Microsecond)
}

func TestRunCountsClaims(t *testing.T) {
	for _, synced := range []bool{false, true} {
		a := arena.New(arena.WithSynchronized(synced))

		var (
			mu     sync.Mutex
			rounds []uint64
		)
		done := make(chan uint64)
		go func() {
			done <- Run(a, 1, WithPause(time.Microsecond), WithOnClaim(func(id int, round uint64) {
				assert.Equal(t, 1, id)
				mu.Lock()
				rounds = append(rounds, round)
				mu.Unlock()
			}))
		}()

		for i := 0; i < 5; i++ {
			a.Arm()
			waitIdle(t, a)
		}
		a.Terminate()

		assert.Equal(t, uint64(5), <-done)
		mu.Lock()
		assert.Equal(t, []uint64{1, 2, 3, 4, 5}, rounds)
		mu.Unlock()
	}
}

func TestRunTerminatedBeforeArm(t *testing.T) {
	var out bytes.Buffer
	a := arena.New()
	a.Terminate()

	count := Run(a, 7, WithPrinter(console.New(&out)))

	assert.Zero(t, count)
	assert.Equal(t, "I am thread 7, starting up now\nI am thread 7; I changed the value 0 times\n", out.String())
}

func TestTaskUsesHandleID(t *testing.T) {
	var out bytes.Buffer
	a := arena.New(arena.WithSynchronized(true), arena.WithLockKind(arena.Spin))
	a.Terminate()

	g, err := threads.NewGroup(1)
	require.NoError(t, err)
	_, err = g.Spawn(Task(a, WithPrinter(console.New(&out))))
	require.NoError(t, err)

	assert.Equal(t, []uint64{0}, g.Join())
	assert.Contains(t, out.String(), "I am thread 1; I changed the value 0 times")
}

func TestLoadOptionsDefaultPause(t *testing.T) {
	assert.Equal(t, DefaultPause, loadOptions().Pause)
	assert.Equal(t, -time.Second, loadOptions(WithPause(-time.Second)).Pause)
}

func TestPause(t *testing.T) {
	start := time.Now()
	pause(2 * time.Millisecond)
	assert.GreaterOrEqual(t, int64(time.Since(start)), int64(2*time.Millisecond))
}
