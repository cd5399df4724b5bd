// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default quiet period of a [Watcher].
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches an asset directory and calls a function once
// the directory has been quiet for the debounce period after a change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	fn       func(name string)
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// Watch starts watching the given directory and all of its
// subdirectories, calling fn with the name of the last changed file
// after every burst of changes. Subdirectories created later are
// watched as well. A zero debounce means [DefaultDebounce].
func Watch(dir string, debounce time.Duration, fn func(name string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addTree(fw, dir); err != nil {
		fw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{watcher: fw, debounce: debounce, fn: fn, done: make(chan struct{})}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	var timer *time.Timer
	var fire <-chan time.Time
	last := ""
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					if err := addTree(w.watcher, ev.Name); err != nil {
						slog.Error("assets watcher", "dir", ev.Name, "error", err)
					}
				}
			}
			last = ev.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			slog.Info("assets changed", "file", last)
			w.fn(last)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("assets watcher", "error", err)
		}
	}
}

// Close stops watching. No calls are made after Close returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.watcher.Close()
	})
	return err
}

// addTree adds dir and every directory below it to the watcher.
func addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return fw.Add(path)
	})
}
