package devwatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"pkt.systems/pslog"

	"github.com/dshills/vcmux/internal/input/router"
)

// Prober decides whether a device node is a keyboard and, if so,
// returns its report source.
type Prober interface {
	// Probe opens the node. A false result with nil error means the
	// node is not a keyboard; it is skipped silently.
	Probe(path string) (router.Source, bool, error)
}

// SpawnFunc runs the input loop for one accepted keyboard. The watcher
// calls it on a fresh goroutine.
type SpawnFunc func(name string, src router.Source)

// Watcher turns device-node creation into router goroutines.
type Watcher struct {
	dir   string
	probe Prober
	spawn SpawnFunc
	log   pslog.Logger
}

// New creates a watcher over the given device directory.
func New(dir string, p Prober, spawn SpawnFunc, log pslog.Logger) *Watcher {
	return &Watcher{dir: dir, probe: p, spawn: spawn, log: log}
}

// Run watches until the context is cancelled. The watch is established
// before the initial scan, so a node created during the scan is never
// missed; it may be probed twice, which the prober must tolerate.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating device watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", w.dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			w.tryDevice(filepath.Join(w.dir, e.Name()))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				w.tryDevice(ev.Name)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			if w.log != nil {
				w.log.Warn("device watch error", "err", err)
			}
		}
	}
}

// tryDevice probes one node and spawns its router on success.
func (w *Watcher) tryDevice(path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	src, ok, err := w.probe.Probe(path)
	if err != nil {
		if w.log != nil {
			w.log.Warn("device probe failed", "path", path, "err", err)
		}
		return
	}
	if !ok {
		return
	}

	name := filepath.Base(path)
	if w.log != nil {
		w.log.Info("keyboard attached", "device", name)
	}
	go w.spawn(name, src)
}
