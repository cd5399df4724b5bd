// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session manages the lifecycle of lesson sessions:
// a [Registry] of lesson constructors and a [Switcher] that tears
// down the active session and starts a new one on request.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/lessons/settings"
)

// Options are the options for a [Switcher].
type Options struct {

	// DefaultID is the lesson started by [Switcher.Restore]
	// when no valid lesson has been stored.
	DefaultID string

	// StartTimeout, if positive, is the maximum time a constructor
	// may take before its context is cancelled.
	StartTimeout time.Duration

	// Store, if non-nil, is where the id of the last successfully
	// started lesson is saved.
	Store settings.Store

	// Logger is the logger used for transitions. If nil,
	// [slog.Default] is used.
	Logger *slog.Logger
}

// Switcher owns the single active session. It tears down the active
// session before starting a new one, so that at most one session holds
// the render surface at any time. All methods are safe for concurrent use;
// transitions are serialized, and a new [Switcher.SwitchTo] cancels any
// start that is still in progress.
type Switcher struct {

	// Registry is the registry of lesson constructors.
	Registry *Registry

	// Options are the options of the switcher.
	Options Options

	env Env

	// mu serializes transitions.
	mu sync.Mutex

	// stateMu protects the fields below.
	stateMu  sync.Mutex
	state    State
	id       string
	active   *Handle
	gen      uint64
	cancel   context.CancelFunc
	onChange func(st State, id string)
}

// NewSwitcher returns a new [Switcher] for the given registry
// that passes a copy of the given environment to constructors.
func NewSwitcher(reg *Registry, env Env, opts Options) *Switcher {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if env.Logger == nil {
		env.Logger = opts.Logger
	}
	return &Switcher{Registry: reg, Options: opts, env: env}
}

// State returns the current lifecycle state.
func (sw *Switcher) State() State {
	sw.stateMu.Lock()
	defer sw.stateMu.Unlock()
	return sw.state
}

// ActiveID returns the id of the active session, or "" if no session is active.
func (sw *Switcher) ActiveID() string {
	sw.stateMu.Lock()
	defer sw.stateMu.Unlock()
	if sw.state != Active {
		return ""
	}
	return sw.id
}

// Active returns the handle of the active session, or nil.
func (sw *Switcher) Active() *Handle {
	sw.stateMu.Lock()
	defer sw.stateMu.Unlock()
	return sw.active
}

// OnChange sets the function called after every state change,
// with the new state and the lesson id it applies to.
// It is called without any switcher lock held, from the goroutine
// performing the transition.
func (sw *Switcher) OnChange(f func(st State, id string)) {
	sw.stateMu.Lock()
	defer sw.stateMu.Unlock()
	sw.onChange = f
}

func (sw *Switcher) setState(st State, id string) {
	sw.stateMu.Lock()
	sw.state = st
	sw.id = id
	f := sw.onChange
	sw.stateMu.Unlock()
	sw.Options.Logger.Debug("session state", "state", st, "id", id)
	if f != nil {
		f(st, id)
	}
}

// ticket starts a new transition, cancelling the start of any
// previous one, and returns its generation.
func (sw *Switcher) ticket(cancel context.CancelFunc) uint64 {
	sw.stateMu.Lock()
	defer sw.stateMu.Unlock()
	sw.gen++
	if sw.cancel != nil {
		sw.cancel()
	}
	sw.cancel = cancel
	return sw.gen
}

// superseded returns whether a later transition has started since
// the one with the given generation.
func (sw *Switcher) superseded(gen uint64) bool {
	sw.stateMu.Lock()
	defer sw.stateMu.Unlock()
	return sw.gen != gen
}

// SwitchTo disposes of the active session and starts the lesson with
// the given id. If the id is not registered, it returns an error
// wrapping [ErrUnknownExample] and the active session is left untouched.
// If a later call supersedes this one before its session is active,
// it returns [ErrSuperseded] and leaves nothing behind. If the
// constructor fails, the error is logged and returned as a
// [*ConstructorError], and the switcher is left [Idle].
func (sw *Switcher) SwitchTo(ctx context.Context, id string) error {
	ctor, err := sw.Registry.Get(id)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return sw.switchTo(ctx, sw.ticket(cancel), id, ctor)
}

// Queue is like [Switcher.SwitchTo], but it returns as soon as the
// transition has been ordered, and the result is sent on the returned
// channel. Transitions take effect in the order Queue is called, and each
// one supersedes any earlier one that has not become active yet.
func (sw *Switcher) Queue(ctx context.Context, id string) <-chan error {
	res := make(chan error, 1)
	ctor, err := sw.Registry.Get(id)
	if err != nil {
		res <- err
		return res
	}
	ctx, cancel := context.WithCancel(ctx)
	gen := sw.ticket(cancel)
	go func() {
		defer cancel()
		res <- sw.switchTo(ctx, gen, id, ctor)
	}()
	return res
}

// switchTo runs the transition with the given generation.
func (sw *Switcher) switchTo(ctx context.Context, gen uint64, id string, ctor Constructor) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.superseded(gen) {
		return ErrSuperseded
	}
	sw.disposeActive()
	if sw.superseded(gen) {
		return ErrSuperseded
	}
	return sw.start(ctx, gen, id, ctor)
}

// start runs the constructor for the given id. It must be called with mu held
// and no active session.
func (sw *Switcher) start(ctx context.Context, gen uint64, id string, ctor Constructor) error {
	log := sw.Options.Logger
	sw.setState(Starting, id)
	sctx := ctx
	if sw.Options.StartTimeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, sw.Options.StartTimeout)
		defer cancel()
	}
	env := sw.env
	env.ID = id
	st := time.Now()
	h, err := ctor(sctx, &env)
	if err == nil && h == nil {
		err = errors.New("constructor returned no handle")
	}
	if err == nil && sw.superseded(gen) {
		err = ErrSuperseded
	}
	if err == nil {
		err = h.Attach()
	}
	if err != nil {
		if h != nil {
			errors.Log(h.Dispose())
		}
		sw.setState(Idle, "")
		if errors.Is(err, ErrSuperseded) || (sw.superseded(gen) && errors.Is(err, context.Canceled)) {
			log.Info("session start superseded", "id", id)
			return ErrSuperseded
		}
		log.Error("session start failed", "id", id, "error", err)
		return &ConstructorError{ID: id, Err: err}
	}

	sw.stateMu.Lock()
	sw.active = h
	sw.stateMu.Unlock()
	sw.setState(Active, id)
	log.Info("session started", "id", id, "took", time.Since(st))
	if sw.Options.Store != nil {
		if err := sw.Options.Store.SetLastExample(id); err != nil {
			log.Error("saving last example", "id", id, "error", err)
		}
	}
	return nil
}

// disposeActive disposes of the active session, if any.
// It must be called with mu held.
func (sw *Switcher) disposeActive() {
	sw.stateMu.Lock()
	h := sw.active
	id := sw.id
	sw.stateMu.Unlock()
	if h == nil {
		return
	}
	sw.setState(Disposing, id)
	if err := h.Dispose(); err != nil {
		sw.Options.Logger.Error("session dispose failed", "id", id, "error", err)
	}
	sw.stateMu.Lock()
	sw.active = nil
	sw.stateMu.Unlock()
	sw.setState(Idle, "")
	sw.Options.Logger.Info("session disposed", "id", id)
}

// Restore starts the last lesson saved in [Options.Store], or
// [Options.DefaultID] if none is saved or the saved one is no longer
// registered. If there is no default either, the first registered
// lesson is used.
func (sw *Switcher) Restore(ctx context.Context) error {
	id := sw.LastExample()
	if id == "" {
		return errors.New("session.Switcher.Restore: no lessons registered")
	}
	return sw.SwitchTo(ctx, id)
}

// LastExample returns the lesson that [Switcher.Restore] would start.
func (sw *Switcher) LastExample() string {
	var id string
	if sw.Options.Store != nil {
		id = errors.Log1(sw.Options.Store.LastExample())
	}
	if id != "" && !sw.Registry.Has(id) {
		sw.Options.Logger.Warn("stored example is not registered", "id", id)
		id = ""
	}
	if id == "" {
		id = sw.Options.DefaultID
	}
	if id == "" && sw.Registry.Len() > 0 {
		id = sw.Registry.IDs()[0]
	}
	return id
}

// Reload restarts the active session, for example after its assets
// have changed on disk. It does nothing if no session is active.
func (sw *Switcher) Reload(ctx context.Context) error {
	id := sw.ActiveID()
	if id == "" {
		return nil
	}
	sw.Options.Logger.Info("reloading session", "id", id)
	return sw.SwitchTo(ctx, id)
}

// Shutdown cancels any start in progress and disposes of the active session.
func (sw *Switcher) Shutdown() {
	sw.ticket(nil)
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.disposeActive()
}
