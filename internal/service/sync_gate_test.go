package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncGate_SingleFlight(t *testing.T) {
	gate := NewSyncGate()

	require.True(t, gate.TryAcquire())
	assert.False(t, gate.TryAcquire(), "second acquire while syncing must be rejected")
	assert.True(t, gate.Status().Syncing)

	gate.Release(true)
	assert.False(t, gate.Status().Syncing)
	assert.True(t, gate.TryAcquire(), "gate must be reusable after release")
	gate.Release(true)
}

func TestSyncGate_ConcurrentAcquire(t *testing.T) {
	gate := NewSyncGate()

	const goroutines = 32
	var acquired atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if gate.TryAcquire() {
				acquired.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), acquired.Load(), "exactly one concurrent acquire may win")
}

func TestSyncGate_OutOfSyncPersistsUntilSuccess(t *testing.T) {
	gate := NewSyncGate()

	require.True(t, gate.TryAcquire())
	gate.Release(false)

	status := gate.Status()
	assert.False(t, status.Syncing)
	assert.True(t, status.OutOfSync, "failed pass must leave out_of_sync set")

	// out_of_sync держится, пока проход не завершится успешно
	require.True(t, gate.TryAcquire())
	assert.True(t, gate.Status().OutOfSync, "flag persists across runs")
	gate.Release(true)

	assert.False(t, gate.Status().OutOfSync, "successful pass clears the flag")
}
