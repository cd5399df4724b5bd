// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"
	"sync"

	"cogentcore.org/core/base/ordmap"
)

// Registry is an ordered mapping from lesson id to [Constructor].
// Registration happens during setup; after that the registry is
// only read. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors *ordmap.Map[string, Constructor]
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{ctors: ordmap.New[string, Constructor]()}
}

// Register adds the given constructor under the given id.
// Registering an existing id replaces its constructor
// and keeps its position.
func (r *Registry) Register(id string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors.Add(id, ctor)
}

// Get returns the constructor for the given id, or an error
// wrapping [ErrUnknownExample].
func (r *Registry) Get(id string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors.ValueByKeyTry(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExample, id)
	}
	return ctor, nil
}

// Has returns whether the given id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ctors.IndexByKeyTry(id)
	return ok
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ctors.Keys()
}

// Len returns the number of registered ids.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ctors.Len()
}
