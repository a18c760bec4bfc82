package concurrent

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsScheduledTasks(t *testing.T) {
	pool := NewPool(4, 8, 2)
	defer pool.Close()

	var ran int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		pool.Schedule(func() {
			atomic.AddInt64(&ran, 1)
			wg.Done()
		})
	}
	wg.Wait()

	assert.Equal(t, int64(50), atomic.LoadInt64(&ran))
}

func TestPoolScheduleTimeout(t *testing.T) {
	pool := NewPool(1, 0, 1)
	defer pool.Close()

	block := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	pool.Schedule(func() {
		wg.Done()
		<-block
	})
	wg.Wait()

	// the only worker is blocked and the queue holds nothing, so the
	// deadline must fire
	err := pool.ScheduleTimeout(20*time.Millisecond, func() {})
	require.ErrorIs(t, err, ErrScheduleTimeout)

	close(block)
}

func TestPoolSpawnCappedBySize(t *testing.T) {
	assert.NotPanics(t, func() {
		pool := NewPool(1, 0, 5)
		pool.Close()
	})
}
