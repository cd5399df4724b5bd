// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides per-frame animation scheduling with
// explicit, synchronous cancellation.
package frame

import (
	"sync"
	"time"
)

// Animation represents the data for one running per-frame callback.
// It is passed to the callback on every frame.
type Animation struct {

	// Delta is the amount of time that has passed since the
	// last animation frame.
	Delta time.Duration

	// Elapsed is the total time since the animation was scheduled.
	Elapsed time.Duration

	// Frame is the number of frames run so far, starting at 0.
	Frame int

	// Done can be set to true by the callback to permanently stop
	// the animation; it will not be called again.
	Done bool
}

// Scheduler schedules per-frame callbacks. Schedulers that drive
// displayed content run each frame under the render lock of the display.
type Scheduler interface {

	// Schedule starts calling the given function once per frame
	// until the returned [Handle] is cancelled or the function sets
	// [Animation.Done].
	Schedule(f func(a *Animation)) *Handle
}

// Handle is the cancellation token for a scheduled callback.
type Handle struct {

	// mu is held while the callback runs, so that Cancel can wait
	// for any in-flight call to finish.
	mu   sync.Mutex
	done bool
	anim Animation
	fn   func(a *Animation)

	once sync.Once
	stop func()
}

// NewHandle returns a new handle for the given callback, for use by
// [Scheduler] implementations, which call [Handle.Step] once per frame.
func NewHandle(f func(a *Animation)) *Handle {
	return &Handle{fn: f}
}

func newHandle(f func(a *Animation), stop func()) *Handle {
	return &Handle{fn: f, stop: stop}
}

// Cancel stops the callback. It is synchronous: when Cancel returns,
// no call is in progress and the callback will never run again.
// It is safe to call Cancel more than once. Cancel must not be called
// from within the callback itself; set [Animation.Done] instead.
func (h *Handle) Cancel() {
	h.once.Do(func() {
		h.mu.Lock()
		h.done = true
		h.mu.Unlock()
		if h.stop != nil {
			h.stop()
		}
	})
}

// Done returns whether the callback has been cancelled or has finished.
func (h *Handle) Done() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

// Frames returns the number of frames that have run.
func (h *Handle) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.anim.Frame
}

// Step runs one frame of the callback with the given delta,
// returning false once the handle is done.
func (h *Handle) Step(dt time.Duration) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return false
	}
	h.anim.Delta = dt
	h.anim.Elapsed += dt
	h.fn(&h.anim)
	h.anim.Frame++
	if h.anim.Done {
		h.done = true
	}
	return !h.done
}

// Clock measures elapsed time, starting when it is first read.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// Elapsed returns the time since the first call to Elapsed.
func (c *Clock) Elapsed() time.Duration {
	if c.now == nil {
		c.now = time.Now
	}
	t := c.now()
	if c.start.IsZero() {
		c.start = t
	}
	return t.Sub(c.start)
}

// Seconds returns [Clock.Elapsed] in seconds.
func (c *Clock) Seconds() float32 {
	return float32(c.Elapsed().Seconds())
}
