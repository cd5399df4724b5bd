// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"context"
	"log/slog"

	"cogentcore.org/lessons/assets"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/resource"
	"cogentcore.org/lessons/surface"
)

// Constructor builds a new session for one lesson. It may block,
// for example on asset loads, and must return promptly once ctx is
// done. On failure it must release anything it allocated itself,
// which is easiest by registering everything in the bag of the handle
// from [Env.NewHandle] and calling [Handle.Dispose] before returning.
type Constructor func(ctx context.Context, env *Env) (*Handle, error)

// Env is the environment passed to a [Constructor].
type Env struct {

	// ID is the id of the lesson being constructed.
	ID string

	// Surface is the shared render surface. A session registers its
	// listeners on it and must remove them on dispose.
	Surface *surface.Surface

	// Scheduler runs per-frame callbacks.
	Scheduler frame.Scheduler

	// Assets loads textures and models. It may be nil,
	// in which case lessons use procedural fallbacks.
	Assets *assets.Loader

	// Logger is the logger for the session.
	Logger *slog.Logger

	// Counter, if non-nil, tracks live resources across all sessions.
	Counter *resource.Counter
}

// NewHandle returns a new [Handle] for the lesson of the environment,
// with a fresh resource bag reporting into [Env.Counter].
func (env *Env) NewHandle() *Handle {
	return &Handle{
		Surface: env.Surface,
		bag:     resource.NewBag(env.ID, env.Counter),
	}
}

// Handle is a running session. It always carries the same fields
// regardless of which lesson produced it.
type Handle struct {

	// Surface is the render surface the session draws into.
	Surface *surface.Surface

	// Controls is the optional camera controller of the session.
	Controls any

	// Content is the root displayed on the surface, typically an *xyz.Scene.
	// It is attached when the session becomes active.
	Content any

	bag *resource.Bag
}

// Bag returns the resource bag of the handle.
func (h *Handle) Bag() *resource.Bag {
	if h.bag == nil {
		h.bag = resource.NewBag("", nil)
	}
	return h.bag
}

// Attach attaches [Handle.Content] to [Handle.Surface] and registers
// the matching detach with the bag. It does nothing if there is no content.
func (h *Handle) Attach() error {
	if h.Content == nil || h.Surface == nil {
		return nil
	}
	if err := h.Surface.Attach(h.Content); err != nil {
		return err
	}
	return h.Bag().AddFunc(resource.Surface, "attach", h.Surface.Detach)
}

// Dispose releases every resource of the session: frame callbacks,
// listeners, GPU resources and the surface attachment.
// It is idempotent and never panics.
func (h *Handle) Dispose() error {
	if h == nil {
		return nil
	}
	return h.Bag().Release()
}

// Disposed returns whether [Handle.Dispose] has been called.
func (h *Handle) Disposed() bool {
	return h.Bag().Released()
}
