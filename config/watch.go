package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/regroup/constant"
)

// Watch reloads the config file at path whenever it changes and hands the
// result to fn. Bursts of writes are coalesced. The directory is watched
// rather than the file so editors that replace the file on save are seen.
// Watch returns once the watcher is running; it stops when ctx is done
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go watchLoop(ctx, watcher, path, fn)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, fn func(*Config, error)) {
	defer watcher.Close()

	base := filepath.Base(path)
	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			debounce.Reset(constant.ConfigReloadDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config: watcher error: %v", err)

		case <-debounce.C:
			cfg, err := Load(path)
			fn(cfg, err)
		}
	}
}
