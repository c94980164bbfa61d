// FILE: lixenwraith/configfile/watch_test.go
package configfile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	e := newTestEnv(t)
	require.NoError(t, e.mgr.Load())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := e.mgr.WatchWithOptions(ctx, WatchOptions{Debounce: 50 * time.Millisecond})
	require.NoError(t, err)

	// a burst of edits coalesces into a single notification
	e.write(t, DefaultFileName, "frame_limit 60\n")
	e.write(t, DefaultFileName, "frame_limit 61\n")
	e.write(t, DefaultFileName, "frame_limit 62\n")

	select {
	case path := <-changes:
		assert.Equal(t, e.mgr.FilePath(), path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	require.NoError(t, e.mgr.Load())
	assert.Equal(t, uint32(62), e.settings.FrameLimit)
	drain(changes, 200*time.Millisecond)

	// edits to other files in the directory are ignored
	e.write(t, "unrelated.txt", "x")
	select {
	case path := <-changes:
		t.Fatalf("unexpected notification for %s", path)
	case <-time.After(300 * time.Millisecond):
	}

	// a save replaces the file and is still observed
	require.NoError(t, e.mgr.Save())
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no notification after save")
	}

	cancel()
	closed := make(chan struct{})
	go func() {
		for range changes {
		}
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("watch channel not closed")
	}
}

// drain discards notifications until the channel stays quiet for quiet.
func drain(ch <-chan string, quiet time.Duration) {
	for {
		select {
		case <-ch:
		case <-time.After(quiet):
			return
		}
	}
}

func TestWatchDebounceFloor(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	e := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())

	changes, err := e.mgr.WatchWithOptions(ctx, WatchOptions{})
	require.NoError(t, err)

	e.write(t, DefaultFileName, "frame_limit 60\n")
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	for range changes {
	}
}
