// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/surface"
)

// orbitSpeed is the camera orbit in degrees per pixel of slide.
const orbitSpeed = 0.25

// sceneHost is a [surface.Host] that displays attached scenes in an
// [xyzcore.Scene] widget. Widget events are forwarded to the surface
// on a separate goroutine, because surface listeners take the render
// lock that is held while events are handled.
type sceneHost struct {
	sw     *xyzcore.Scene
	blank  *xyz.Scene
	events chan func()
	closed atomic.Bool

	// size is only used by the widget updater.
	size image.Point

	mu       sync.Mutex
	detached *xyz.Scene
}

func newSceneHost(sw *xyzcore.Scene) *sceneHost {
	h := &sceneHost{sw: sw, blank: sw.XYZ, events: make(chan func(), 64)}
	h.blank.Background = colors.Uniform(colors.Black)
	return h
}

// connect forwards the size, pointer and slide events of the widget
// to the given surface, and starts the event pump.
func (h *sceneHost) connect(s *surface.Surface) {
	sw := h.sw
	sw.Updater(func() {
		sz := sw.Geom.Size.Actual.Content.ToPointFloor()
		if sz != h.size && h.post(func() { s.Resize(sz) }) {
			h.size = sz
		}
	})
	sw.On(events.MouseMove, func(e events.Event) {
		pos := e.Pos().Sub(sw.Geom.ContentBBox.Min)
		h.post(func() { s.PointerMove(pos) })
	})
	sw.On(events.SlideMove, func(e events.Event) {
		del := e.PrevDelta()
		e.SetHandled()
		h.post(func() { s.Orbit(-float32(del.X)*orbitSpeed, -float32(del.Y)*orbitSpeed) })
	})
	go func() {
		for f := range h.events {
			f()
		}
	}()
}

// post queues the given event, dropping it if the pump is behind.
// It returns whether the event was queued.
func (h *sceneHost) post(f func()) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed.Load() {
		return false
	}
	select {
	case h.events <- f:
		return true
	default:
		return false
	}
}

// close stops rendering and event forwarding. The GPU state of
// scenes is released with the window from this point on.
func (h *sceneHost) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed.Swap(true) {
		return
	}
	close(h.events)
}

func (h *sceneHost) Attach(content any) error {
	sc, ok := content.(*xyz.Scene)
	if !ok {
		return fmt.Errorf("lessons: cannot display %T", content)
	}
	if h.closed.Load() {
		return fmt.Errorf("lessons: window closed")
	}
	h.sw.AsyncLock()
	h.sw.XYZ = sc
	h.sw.NeedsRender()
	h.sw.AsyncUnlock()
	return nil
}

func (h *sceneHost) Detach(content any) {
	sc, _ := content.(*xyz.Scene)
	if h.closed.Load() {
		return
	}
	h.sw.AsyncLock()
	if h.sw.XYZ == sc {
		h.sw.XYZ = h.blank
		h.sw.NeedsRender()
	}
	h.sw.AsyncUnlock()
	h.mu.Lock()
	h.detached = sc
	h.mu.Unlock()
}

// Invalidate destroys the GPU frame and buffers of the last
// detached scene.
func (h *sceneHost) Invalidate() {
	h.mu.Lock()
	sc := h.detached
	h.detached = nil
	h.mu.Unlock()
	if sc == nil || h.closed.Load() {
		return
	}
	h.sw.AsyncLock()
	sc.Destroy()
	h.sw.AsyncUnlock()
}

func (h *sceneHost) Do(f func()) {
	if h.closed.Load() {
		return
	}
	h.sw.AsyncLock()
	f()
	h.sw.NeedsRender()
	h.sw.AsyncUnlock()
}

// Schedule runs f on every paint tick of the scene widget, under its
// render lock. It implements [frame.Scheduler].
func (h *sceneHost) Schedule(f func(a *frame.Animation)) *frame.Handle {
	fh := frame.NewHandle(f)
	if h.closed.Load() {
		fh.Cancel()
		return fh
	}
	h.sw.AsyncLock()
	h.sw.Animate(tick(fh))
	h.sw.AsyncUnlock()
	return fh
}

// tick returns the widget animation function that steps fh,
// ending the animation once fh is done.
func tick(fh *frame.Handle) func(a *core.Animation) {
	return func(a *core.Animation) {
		if !fh.Step(a.Delta) {
			a.Done = true
		}
	}
}
