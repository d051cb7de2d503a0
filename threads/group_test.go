package threads

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	l.mu.Unlock()
}

func TestNewGroupInvalidSize(t *testing.T) {
	_, err := NewGroup(0)
	assert.Equal(t, ErrInvalidGroupSize, err)
	_, err = NewGroup(-3)
	assert.Equal(t, ErrInvalidGroupSize, err)
}

func TestSpawnAssignsOneBasedIDs(t *testing.T) {
	g, err := NewGroup(3)
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		h, err := g.Spawn(func(h *Handle) uint64 { return uint64(h.ID() * 10) })
		require.NoError(t, err)
		assert.Equal(t, want, h.ID())
	}

	_, err = g.Spawn(func(*Handle) uint64 { return 0 })
	assert.Equal(t, ErrGroupOverload, err)

	assert.Equal(t, []uint64{10, 20, 30}, g.Join())
	assert.Zero(t, g.Running())
	assert.Equal(t, 3, g.Len())
}

func TestJoinWaitsForOutOfOrderExit(t *testing.T) {
	g, err := NewGroup(2)
	require.NoError(t, err)

	release := make(chan struct{})
	_, err = g.Spawn(func(*Handle) uint64 {
		<-release
		return 1
	})
	require.NoError(t, err)
	second, err := g.Spawn(func(*Handle) uint64 { return 2 })
	require.NoError(t, err)

	assert.Equal(t, uint64(2), second.Join())
	close(release)
	assert.Equal(t, []uint64{1, 2}, g.Join())
}

func TestSpawnAfterJoin(t *testing.T) {
	g, err := NewGroup(2)
	require.NoError(t, err)
	g.Join()

	_, err = g.Spawn(func(*Handle) uint64 { return 0 })
	assert.Equal(t, ErrGroupClosed, err)
}

func TestPanicIsRecovered(t *testing.T) {
	var (
		mu     sync.Mutex
		gotID  int
		gotVal interface{}
	)
	g, err := NewGroup(2, WithPanicHandler(func(id int, p interface{}) {
		mu.Lock()
		gotID, gotVal = id, p
		mu.Unlock()
	}))
	require.NoError(t, err)

	_, err = g.Spawn(func(*Handle) uint64 { return 5 })
	require.NoError(t, err)
	h, err := g.Spawn(func(*Handle) uint64 { panic("boom") })
	require.NoError(t, err)

	assert.Equal(t, []uint64{5, 0}, g.Join())
	assert.True(t, h.Panicked())
	mu.Lock()
	assert.Equal(t, 2, gotID)
	assert.Equal(t, "boom", gotVal)
	mu.Unlock()
}

func TestPanicLoggedWithoutHandler(t *testing.T) {
	logger := new(recordLogger)
	g, err := NewGroup(1, WithLogger(logger))
	require.NoError(t, err)

	_, err = g.Spawn(func(*Handle) uint64 { panic("boom") })
	require.NoError(t, err)
	g.Join()

	logger.mu.Lock()
	defer logger.mu.Unlock()
	require.NotEmpty(t, logger.lines)
	assert.Contains(t, logger.lines[0], "worker 1 exits from a panic: boom")
}

func TestLockOSThreadRecordsTID(t *testing.T) {
	g, err := NewGroup(2, WithLockOSThread(true))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = g.Spawn(func(h *Handle) uint64 { return uint64(h.TID()) })
		require.NoError(t, err)
	}
	results := g.Join()
	for i, h := range g.Handles() {
		assert.Equal(t, uint64(h.TID()), results[i])
	}
}
