package main

import (
	"sync"
	"testing"

	"github.com/huddle-sh/huddle/internal/daemon/aggregator"
)

// The tray click handlers read the daemon state from a different goroutine
// than the one that initializes it, so concurrent reads during set must be
// safe and nil state must degrade to zero values.
func TestLazyDaemonStateConcurrentAccess(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	agg, err := aggregator.New()
	if err != nil {
		t.Fatalf("aggregator.New() error = %v", err)
	}
	defer agg.Stop()

	state := &lazyDaemonState{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = state.Port()
				_ = state.ProjectCount()
				_ = state.LastGenerated()
			}
		}()
	}

	state.set(nil, agg)
	wg.Wait()

	if got := state.Port(); got != 0 {
		t.Errorf("Port() with no server = %d, want 0", got)
	}
	if got := state.LastGenerated(); got != "" {
		t.Errorf("LastGenerated() with no runs = %q, want empty", got)
	}
}
