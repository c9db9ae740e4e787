package parallel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool(t *testing.T) {
	t.Run("runs every submitted task", func(t *testing.T) {
		pool := NewWorkerPool(4)
		defer pool.Shutdown()

		var ran int64
		var wg sync.WaitGroup
		ctx := context.Background()

		for i := 0; i < 32; i++ {
			wg.Add(1)
			err := pool.Submit(ctx, func() {
				defer wg.Done()
				atomic.AddInt64(&ran, 1)
			})
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
		}
		wg.Wait()

		if got := atomic.LoadInt64(&ran); got != 32 {
			t.Errorf("ran %d tasks, want 32", got)
		}
	})

	t.Run("submit after shutdown is rejected", func(t *testing.T) {
		pool := NewWorkerPool(1)
		pool.Shutdown()
		pool.Shutdown() // idempotent

		err := pool.Submit(context.Background(), func() {})
		if !errors.Is(err, ErrPoolShutdown) {
			t.Errorf("err = %v, want ErrPoolShutdown", err)
		}
	})

	t.Run("submit honors context cancellation", func(t *testing.T) {
		pool := NewWorkerPool(1)
		defer pool.Shutdown()

		block := make(chan struct{})
		ctx := context.Background()
		// Occupy the worker and fill the one-slot buffer.
		if err := pool.Submit(ctx, func() { <-block }); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if err := pool.Submit(ctx, func() {}); err != nil {
			t.Fatalf("Submit: %v", err)
		}

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		err := pool.Submit(cancelled, func() {})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
		close(block)
	})
}
