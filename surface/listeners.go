// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"slices"
	"sync"
)

// listener is one registered listener function.
type listener[E any] struct {

	// mu is held while fn runs, so that removal can wait
	// for an in-flight call to finish.
	mu      sync.Mutex
	removed bool
	fn      func(e E)
}

// listeners is a set of event listeners for events of type E.
type listeners[E any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]*listener[E]
}

// add adds the given listener and returns the function that removes it.
// The remove function is idempotent and synchronous: when it returns,
// no call to f is in progress and f will not be called again. It must
// not be called from within f.
func (l *listeners[E]) add(f func(e E)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]*listener[E])
	}
	id := l.next
	l.next++
	ls := &listener[E]{fn: f}
	l.fns[id] = ls
	return func() {
		l.mu.Lock()
		delete(l.fns, id)
		l.mu.Unlock()
		ls.mu.Lock()
		ls.removed = true
		ls.mu.Unlock()
	}
}

// dispatch calls all listeners in the order they were added.
// The set lock is not held during the calls, so listeners can
// add other listeners or remove them.
func (l *listeners[E]) dispatch(e E) {
	l.mu.Lock()
	ids := make([]int, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	lss := make([]*listener[E], 0, len(ids))
	for _, id := range ids {
		lss = append(lss, l.fns[id])
	}
	l.mu.Unlock()
	for _, ls := range lss {
		ls.call(e)
	}
}

func (ls *listener[E]) call(e E) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.removed {
		return
	}
	ls.fn(e)
}

func (l *listeners[E]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}
