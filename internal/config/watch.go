package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"pkt.systems/pslog"
)

// Watch reloads the config file whenever it changes and hands each
// good result to onChange. Parse and validation failures keep the last
// good config and cost one log line. Watch returns when the context is
// cancelled.
//
// The watch is on the file's directory, not the file: editors replace
// config files by rename, which drops a watch pinned to the old inode.
func Watch(ctx context.Context, path string, onChange func(Config), log pslog.Logger) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				if log != nil {
					log.Warn("config reload rejected", "path", path, "err", err)
				}
				continue
			}
			if log != nil {
				log.Info("config reloaded", "path", path)
			}
			onChange(cfg)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			if log != nil {
				log.Warn("config watch error", "err", err)
			}
		}
	}
}
