// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"time"
)

// DefaultFPS is the default frame rate of a [Ticker].
const DefaultFPS = 60

// Ticker is a [Scheduler] that runs each callback on its own
// goroutine, driven by a [time.Ticker].
type Ticker struct {

	// Interval is the time between frames.
	Interval time.Duration

	// Wrap, if set, is used to run each frame, for example
	// to hold a GUI render lock while the scene is mutated.
	// It must call the given function exactly once.
	Wrap func(f func())
}

// NewTicker returns a new [Ticker] running at the given frames per second.
// If fps <= 0, [DefaultFPS] is used.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Ticker{Interval: time.Second / time.Duration(fps)}
}

func (tk *Ticker) Schedule(f func(a *Animation)) *Handle {
	stop := make(chan struct{})
	h := newHandle(f, func() { close(stop) })
	iv := tk.Interval
	if iv <= 0 {
		iv = time.Second / DefaultFPS
	}
	wrap := tk.Wrap
	go func() {
		tick := time.NewTicker(iv)
		defer tick.Stop()
		last := time.Now()
		for {
			select {
			case <-stop:
				return
			case now := <-tick.C:
				dt := now.Sub(last)
				last = now
				more := true
				run := func() { more = h.Step(dt) }
				if wrap != nil {
					wrap(run)
				} else {
					run()
				}
				if !more {
					return
				}
			}
		}
	}()
	return h
}
