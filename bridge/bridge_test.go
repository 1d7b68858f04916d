package bridge

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// countingSleeper stands in for the host sleep primitive. Each call yields
// for a short while and is counted, so tests can verify the handler really
// suspends between completion checks.
type countingSleeper struct {
	calls atomic.Int64
	err   error
}

func (s *countingSleeper) Sleep(_ context.Context, _ time.Duration) error {
	s.calls.Add(1)
	if s.err != nil {
		return s.err
	}
	time.Sleep(time.Millisecond)
	return nil
}

func TestRunBlocking(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the result of the blocking operation", func(t *testing.T) {
		req := require.New(t)
		sleeper := &countingSleeper{}

		ok := RunBlocking(ctx, sleeper, func() bool {
			time.Sleep(20 * time.Millisecond)
			return true
		})

		req.True(ok)
	})

	t.Run("should keep other scheduled work running during a slow call", func(t *testing.T) {
		req := require.New(t)
		sleeper := &countingSleeper{}

		var neighborTicks atomic.Int64
		stop := make(chan struct{})
		go func() {
			for {
				select {
				case <-stop:
					return
				default:
					neighborTicks.Add(1)
					time.Sleep(time.Millisecond)
				}
			}
		}()

		ok := RunBlocking(ctx, sleeper, func() bool {
			time.Sleep(100 * time.Millisecond)
			return true
		})
		close(stop)

		req.True(ok)
		// The handler yielded between checks instead of hogging the scheduler.
		req.Greater(sleeper.calls.Load(), int64(1))
		// And the concurrently scheduled task kept making progress meanwhile.
		req.Greater(neighborTicks.Load(), int64(10))
	})

	t.Run("should return the zero value when the operation aborts", func(t *testing.T) {
		req := require.New(t)
		sleeper := &countingSleeper{}

		ok := RunBlocking(ctx, sleeper, func() bool {
			panic("remote library blew up")
		})

		req.False(ok)
	})

	t.Run("should still wait out the call when the host refuses to sleep", func(t *testing.T) {
		req := require.New(t)
		sleeper := &countingSleeper{err: fmt.Errorf("context canceled")}

		ok := RunBlocking(ctx, sleeper, func() bool {
			time.Sleep(10 * time.Millisecond)
			return true
		})

		req.True(ok)
	})
}
