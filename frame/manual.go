// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"slices"
	"sync"
	"time"
)

// Manual is a [Scheduler] that only runs callbacks when [Manual.Step]
// is called. It is used for headless operation and testing.
type Manual struct {
	mu      sync.Mutex
	handles []*Handle
}

func (m *Manual) Schedule(f func(a *Animation)) *Handle {
	h := newHandle(f, nil)
	m.mu.Lock()
	m.handles = append(m.handles, h)
	m.mu.Unlock()
	return h
}

// Step runs one frame of every live callback with the given delta.
func (m *Manual) Step(dt time.Duration) {
	m.mu.Lock()
	hs := slices.Clone(m.handles)
	m.mu.Unlock()
	for _, h := range hs {
		h.Step(dt)
	}
	m.mu.Lock()
	m.handles = slices.DeleteFunc(m.handles, func(h *Handle) bool {
		return h.Done()
	})
	m.mu.Unlock()
}

// Live returns the number of callbacks that are still scheduled.
func (m *Manual) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, h := range m.handles {
		if !h.Done() {
			n++
		}
	}
	return n
}
