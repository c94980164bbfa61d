// FILE: lixenwraith/configfile/watch.go
package configfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchOptions configures file watching behavior
type WatchOptions struct {
	// Debounce coalesces bursts of events into one notification
	Debounce time.Duration
}

// DefaultWatchOptions returns sensible defaults for file watching
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{Debounce: DefaultDebounce}
}

// Watch reports changes to the primary config file, such as a user editing
// it while the application runs. Each debounced change sends the file path on
// the returned channel; the caller decides when to Load, on its own goroutine.
// Saves made by this process are reported too. The channel is closed when ctx
// is done.
func (m *Manager) Watch(ctx context.Context) (<-chan string, error) {
	return m.WatchWithOptions(ctx, DefaultWatchOptions())
}

// WatchWithOptions is Watch with custom options
func (m *Manager) WatchWithOptions(ctx context.Context, opts WatchOptions) (<-chan string, error) {
	if opts.Debounce < MinDebounce {
		opts.Debounce = MinDebounce
	}

	path, err := filepath.Abs(m.FilePath())
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create config directory '%s': %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: saves replace the file, which drops a file watch
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	m.logger.Info().Str("path", path).Msg("watching config file for changes")

	out := make(chan string, watchBuffer)
	go m.watchLoop(ctx, watcher, path, opts.Debounce, out)
	return out, nil
}

// watchLoop is the main file watching loop
func (m *Manager) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, debounce time.Duration, out chan<- string) {
	defer close(out)
	defer watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug().Str("path", path).Msg("config watcher stopped")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			m.logger.Debug().Str("op", event.Op.String()).Str("path", path).Msg("config file changed")

			// Debounce: restart the timer on each event
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Stop()
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			m.logger.Error().Err(err).Str("path", path).Msg("config watcher error")

		case <-fire:
			fire = nil
			select {
			case out <- path:
			default:
				// a notification is already pending
			}
		}
	}
}
