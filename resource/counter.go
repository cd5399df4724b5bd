// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resource

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Counter counts live resources per [Kind]. It is used to verify
// that switching sessions does not leak anything. All methods
// are safe on a nil Counter, which counts nothing.
type Counter struct {
	live [KindN]atomic.Int64
}

// Inc records that a resource of the given kind was acquired.
func (c *Counter) Inc(kind Kind) {
	if c == nil || kind < 0 || kind >= KindN {
		return
	}
	c.live[kind].Add(1)
}

// Dec records that a resource of the given kind was released.
func (c *Counter) Dec(kind Kind) {
	if c == nil || kind < 0 || kind >= KindN {
		return
	}
	c.live[kind].Add(-1)
}

// Live returns the number of live resources of the given kind.
func (c *Counter) Live(kind Kind) int {
	if c == nil || kind < 0 || kind >= KindN {
		return 0
	}
	return int(c.live[kind].Load())
}

// Total returns the number of live resources of all kinds.
func (c *Counter) Total() int {
	if c == nil {
		return 0
	}
	n := 0
	for k := range KindN {
		n += c.Live(k)
	}
	return n
}

// Snapshot returns the current live counts indexed by kind.
func (c *Counter) Snapshot() [KindN]int {
	var s [KindN]int
	for k := range KindN {
		s[k] = c.Live(k)
	}
	return s
}

func (c *Counter) String() string {
	var b strings.Builder
	for k := range KindN {
		if k > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v:%d", k, c.Live(k))
	}
	return b.String()
}
