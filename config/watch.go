package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/vi-menu/parameter"
)

// Reload is one result of re-reading a watched file
// Exactly one of Config and Err is set
type Reload struct {
	Config *Config
	Err    error
}

// Watch reloads path whenever it is written and delivers the result on the
// returned channel, which closes when ctx ends
// The directory is watched so editors that replace the file on save are seen
func Watch(ctx context.Context, path string) (<-chan Reload, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watch: %w", err)
	}
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watch %s: %w", path, err)
	}

	out := make(chan Reload, 1)
	go func() {
		defer close(out)
		defer w.Close()

		// Stopped until the first relevant event
		debounce := time.NewTimer(time.Hour)
		debounce.Stop()
		defer debounce.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					debounce.Reset(parameter.ConfigReloadDebounce)
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("[config] watch %s: %v", path, err)

			case <-debounce.C:
				cfg, err := Load(path)
				if err != nil {
					log.Printf("[config] reload %s: %v", path, err)
				} else {
					log.Printf("[config] reloaded %s", path)
				}
				select {
				case out <- Reload{Config: cfg, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
