package bridge

import (
	"context"
	"sync/atomic"
	"time"

	"reg-sentinel/contract"
)

// pollInterval is how long the handler yields between completion checks.
// It is the upper bound on latency added per bridged call.
const pollInterval = 100 * time.Millisecond

// RunBlocking executes op on its own goroutine and waits for it from a
// cooperative handler without stalling the host scheduler: between
// completion checks the handler suspends through the host sleep primitive,
// letting other scheduled work run.
//
// There is no cancellation. Once op has started, RunBlocking always waits
// for it to finish; op is expected to bound its own duration (the admin
// client does, via its request timeout). If op aborts without producing a
// value, the zero value of T is returned.
func RunBlocking[T any](ctx context.Context, sleeper contract.Sleeper, op func() T) T {
	var (
		result T
		done   atomic.Bool
	)

	go func() {
		defer done.Store(true)
		// A panicking op must not take the process down; the caller sees
		// the zero value, the same as any other failed action.
		defer func() { _ = recover() }()
		result = op()
	}()

	for !done.Load() {
		if err := sleeper.Sleep(ctx, pollInterval); err != nil {
			// The host refused to suspend us again (context gone during
			// shutdown). We still must not return before op finishes, so
			// keep waiting on our own clock.
			time.Sleep(pollInterval)
		}
	}

	return result
}
