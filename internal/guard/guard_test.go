package guard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventGuard_SerializesSameEvent(t *testing.T) {
	g := New()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)

	inSection := 0
	maxInSection := 0
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			release, err := g.Acquire(ctx, "e1")
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			mu.Lock()
			inSection++
			if inSection > maxInSection {
				maxInSection = inSection
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inSection--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInSection)
}

func TestEventGuard_DifferentEventsDoNotBlock(t *testing.T) {
	g := New()
	ctx := context.Background()

	releaseA, err := g.Acquire(ctx, "e1")
	require.NoError(t, err)
	defer releaseA()

	ctxB, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	releaseB, err := g.Acquire(ctxB, "e2")
	require.NoError(t, err)
	releaseB()
}

// A caller waiting on a held slot gets the context's own error, so a client
// disconnect is not reported as contention.
func TestEventGuard_ContextErrorWhenHeld(t *testing.T) {
	g := New()

	release, err := g.Acquire(context.Background(), "e1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = g.Acquire(ctx, "e1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	canceledCtx, cancelNow := context.WithCancel(context.Background())
	cancelNow()

	_, err = g.Acquire(canceledCtx, "e1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEventGuard_ReleaseIsIdempotent(t *testing.T) {
	g := New()
	ctx := context.Background()

	release, err := g.Acquire(ctx, "e1")
	require.NoError(t, err)
	release()
	release()

	again, err := g.Acquire(ctx, "e1")
	require.NoError(t, err)
	again()
}

func TestEventGuard_CleansUpIdleSlots(t *testing.T) {
	g := New()
	ctx := context.Background()

	release, err := g.Acquire(ctx, "e1")
	require.NoError(t, err)
	release()

	g.mu.Lock()
	defer g.mu.Unlock()
	assert.Empty(t, g.slots)
}
