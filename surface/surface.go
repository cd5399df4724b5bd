// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface manages the render surface that a lesson session draws
// into: its size, the listeners registered on it, and its attachment to
// the host GUI and graphics context.
package surface

import (
	"image"
	"log/slog"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Host is the GUI side of a [Surface]: it displays attached content and
// owns the underlying graphics context.
type Host interface {

	// Attach displays the given content, typically an *xyz.Scene.
	Attach(content any) error

	// Detach removes the given content from the display.
	Detach(content any)

	// Invalidate releases the graphics context associated with the
	// currently attached content, so that no GPU state can leak into
	// the next attached content.
	Invalidate()

	// Do runs the given function while holding the host render lock,
	// and then requests a redraw.
	Do(f func())
}

// PointerEvent is a pointer move in surface coordinates,
// along with the normalized device coordinates in [-1, 1],
// with +Y up.
type PointerEvent struct {
	Pos image.Point
	NDC math32.Vector2
}

// OrbitEvent is a camera orbit change driven by user input,
// in degrees.
type OrbitEvent struct {
	DeltaX, DeltaY float32
}

// Surface is the drawable target of one session.
// It is safe for concurrent use.
type Surface struct {
	host Host

	mu       sync.Mutex
	size     image.Point
	content  any
	attached bool
	resize   listeners[image.Point]
	pointer  listeners[PointerEvent]
	orbit    listeners[OrbitEvent]
}

// New returns a new [Surface] for the given host, with the given initial size.
// If host is nil, a [NullHost] is used.
func New(host Host, size image.Point) *Surface {
	if host == nil {
		host = &NullHost{}
	}
	return &Surface{host: host, size: size}
}

// Host returns the host of the surface.
func (s *Surface) Host() Host {
	return s.host
}

// Size returns the current size of the surface.
func (s *Surface) Size() image.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Aspect returns the current width / height ratio of the surface,
// or 1 if it has no height.
func (s *Surface) Aspect() float32 {
	return Aspect(s.Size())
}

// Aspect returns the width / height ratio of the given size,
// or 1 if it has no height.
func Aspect(sz image.Point) float32 {
	if sz.Y == 0 {
		return 1
	}
	return float32(sz.X) / float32(sz.Y)
}

// Attach attaches the given content to the host for display.
// Any currently attached content is detached first.
func (s *Surface) Attach(content any) error {
	s.Detach()
	if err := s.host.Attach(content); err != nil {
		return err
	}
	s.mu.Lock()
	s.content = content
	s.attached = true
	s.mu.Unlock()
	return nil
}

// Attached returns whether content is currently attached.
func (s *Surface) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

// Detach removes any attached content from the host and invalidates
// its graphics context. It does nothing if nothing is attached.
func (s *Surface) Detach() {
	s.mu.Lock()
	if !s.attached {
		s.mu.Unlock()
		return
	}
	content := s.content
	s.content = nil
	s.attached = false
	s.mu.Unlock()
	s.host.Detach(content)
	s.host.Invalidate()
}

// Do runs the given function under the host render lock if
// content is attached, and requests a redraw.
func (s *Surface) Do(f func()) {
	if !s.Attached() {
		return
	}
	s.host.Do(f)
}

// Update runs the given function under the host render lock if
// content is attached, and directly otherwise. It is used for changes
// that must apply whether or not the content is displayed yet.
func (s *Surface) Update(f func()) {
	if s.Attached() {
		s.host.Do(f)
		return
	}
	f()
}

// Resize sets the size of the surface and synchronously notifies all
// resize listeners. Zero sizes are ignored.
func (s *Surface) Resize(sz image.Point) {
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	s.mu.Lock()
	if s.size == sz {
		s.mu.Unlock()
		return
	}
	s.size = sz
	s.mu.Unlock()
	slog.Debug("surface resized", "size", sz)
	s.resize.dispatch(sz)
}

// PointerMove notifies pointer listeners of a pointer move
// to the given position in surface coordinates.
func (s *Surface) PointerMove(pos image.Point) {
	sz := s.Size()
	ev := PointerEvent{Pos: pos}
	if sz.X > 0 && sz.Y > 0 {
		ev.NDC.X = float32(pos.X)/float32(sz.X)*2 - 1
		ev.NDC.Y = -float32(pos.Y)/float32(sz.Y)*2 + 1
	}
	s.pointer.dispatch(ev)
}

// Orbit notifies orbit listeners of a camera orbit change.
func (s *Surface) Orbit(dx, dy float32) {
	s.orbit.dispatch(OrbitEvent{DeltaX: dx, DeltaY: dy})
}

// OnResize adds a listener for size changes and returns
// the function that removes it.
func (s *Surface) OnResize(f func(sz image.Point)) (remove func()) {
	return s.resize.add(f)
}

// OnPointerMove adds a listener for pointer moves and returns
// the function that removes it.
func (s *Surface) OnPointerMove(f func(e PointerEvent)) (remove func()) {
	return s.pointer.add(f)
}

// OnOrbit adds a listener for camera orbit changes and returns
// the function that removes it.
func (s *Surface) OnOrbit(f func(e OrbitEvent)) (remove func()) {
	return s.orbit.add(f)
}

// ListenerCount returns the total number of registered listeners.
func (s *Surface) ListenerCount() int {
	return s.resize.len() + s.pointer.len() + s.orbit.len()
}

// NullHost is a [Host] that displays nothing, for headless use.
// It records how many times each method is called.
type NullHost struct {
	mu     sync.Mutex
	render sync.Mutex

	Attaches, Detaches, Invalids int
	Content                      any
}

func (h *NullHost) Attach(content any) error {
	if content == nil {
		return errors.New("surface.NullHost: nil content")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Attaches++
	h.Content = content
	return nil
}

func (h *NullHost) Detach(content any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Detaches++
	if h.Content == content {
		h.Content = nil
	}
}

func (h *NullHost) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Invalids++
}

func (h *NullHost) Do(f func()) {
	h.render.Lock()
	defer h.render.Unlock()
	f()
}

// Live returns the number of attachments that have not been detached.
func (h *NullHost) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Attaches - h.Detaches
}
