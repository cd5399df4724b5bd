// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resource

import (
	"fmt"
	"log/slog"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
)

// entry is one registered resource in a [Bag].
type entry struct {
	kind Kind
	name string
	d    Disposer
}

// Bag collects the disposable resources of one session so that
// they can all be released together by [Bag.Release].
// Resources are released in the reverse order of registration,
// so that later resources that depend on earlier ones go first.
// A Bag is safe for concurrent use.
type Bag struct {

	// Name is used in log messages.
	Name string

	// Counter, if non-nil, tracks the number of live resources per kind.
	Counter *Counter

	mu       sync.Mutex
	entries  []entry
	released bool
}

// NewBag returns a new [Bag] with the given name that reports
// into the given counter, which may be nil.
func NewBag(name string, ctr *Counter) *Bag {
	return &Bag{Name: name, Counter: ctr}
}

// Add registers the given disposer under the given kind and name.
// If the bag has already been released, the disposer is run
// immediately and its error is returned.
func (b *Bag) Add(kind Kind, name string, d Disposer) error {
	if d == nil {
		return nil
	}
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		logx.PrintlnDebug("resource.Bag:", b.Name, "already released, disposing", kind, name)
		return dispose(entry{kind, name, d})
	}
	b.entries = append(b.entries, entry{kind, name, d})
	b.mu.Unlock()
	b.Counter.Inc(kind)
	return nil
}

// AddFunc registers the given function as a disposer that cannot fail.
func (b *Bag) AddFunc(kind Kind, name string, f func()) error {
	if f == nil {
		return nil
	}
	return b.Add(kind, name, DisposerFunc(func() error {
		f()
		return nil
	}))
}

// Len returns the number of resources currently held by the bag.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Released returns whether [Bag.Release] has been called.
func (b *Bag) Released() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}

// Release disposes of all resources in reverse order of registration.
// Every disposer is run even if earlier ones fail or panic; all errors
// are joined together. Release is idempotent: only the first call
// does anything and later calls return nil.
func (b *Bag) Release() error {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		return nil
	}
	b.released = true
	ents := b.entries
	b.entries = nil
	b.mu.Unlock()

	var errs []error
	for i := len(ents) - 1; i >= 0; i-- {
		e := ents[i]
		if err := dispose(e); err != nil {
			errs = append(errs, err)
		}
		b.Counter.Dec(e.kind)
	}
	if len(errs) > 0 {
		slog.Error("resource.Bag: errors releasing resources", "bag", b.Name, "count", len(errs))
	}
	return errors.Join(errs...)
}

// dispose runs the disposer of the entry, converting any panic into an error.
func dispose(e entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resource: panic disposing %v %q: %v", e.kind, e.name, r)
		}
	}()
	if err := e.d.Dispose(); err != nil {
		return fmt.Errorf("resource: disposing %v %q: %w", e.kind, e.name, err)
	}
	return nil
}
