package service

import (
	"context"
	"log"

	"github.com/lixenwraith/regroup/config"
)

// WatcherName identifies the config reload service
const WatcherName = "config-watcher"

// Watcher publishes validated configs whenever the config file changes
// Rejected reloads are logged and dropped; only the latest pending config is kept
type Watcher struct {
	path    string
	reloads chan *config.Config
	cancel  context.CancelFunc
}

// NewWatcher creates a watcher for path; an empty path disables it
func NewWatcher(path string) *Watcher {
	return &Watcher{path: path, reloads: make(chan *config.Config, 1)}
}

func (w *Watcher) Name() string { return WatcherName }

// Dependencies orders the watcher after audio so reloads never race its init
func (w *Watcher) Dependencies() []string { return []string{AudioName} }

func (w *Watcher) Init(*config.Config) error { return nil }

func (w *Watcher) Start() error {
	if w.path == "" {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := config.Watch(ctx, w.path, w.publish); err != nil {
		cancel()
		log.Printf("config: %v (hot reload off)", err)
		return nil
	}
	w.cancel = cancel
	return nil
}

func (w *Watcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	return nil
}

// Reloads delivers each accepted config
func (w *Watcher) Reloads() <-chan *config.Config { return w.reloads }

func (w *Watcher) publish(cfg *config.Config, err error) {
	if err != nil {
		log.Printf("config: reload rejected: %v", err)
		return
	}
	// Replace a stale pending config with the newer one
	select {
	case <-w.reloads:
	default:
	}
	select {
	case w.reloads <- cfg:
	default:
	}
}
