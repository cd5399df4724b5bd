// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualStep(t *testing.T) {
	m := &Manual{}
	var elapsed time.Duration
	n := 0
	h := m.Schedule(func(a *Animation) {
		n++
		elapsed = a.Elapsed
	})
	m.Step(10 * time.Millisecond)
	m.Step(10 * time.Millisecond)
	assert.Equal(t, 2, n)
	assert.Equal(t, 20*time.Millisecond, elapsed)
	assert.Equal(t, 2, h.Frames())
	assert.Equal(t, 1, m.Live())

	h.Cancel()
	m.Step(10 * time.Millisecond)
	assert.Equal(t, 2, n)
	assert.True(t, h.Done())
	assert.Equal(t, 0, m.Live())
}

func TestManualDone(t *testing.T) {
	m := &Manual{}
	n := 0
	h := m.Schedule(func(a *Animation) {
		n++
		if a.Frame == 2 {
			a.Done = true
		}
	})
	for range 5 {
		m.Step(time.Millisecond)
	}
	assert.Equal(t, 3, n)
	assert.True(t, h.Done())
}

func TestCancelIdempotent(t *testing.T) {
	m := &Manual{}
	h := m.Schedule(func(a *Animation) {})
	h.Cancel()
	h.Cancel()
	assert.True(t, h.Done())
}

func TestTickerCancelIsSynchronous(t *testing.T) {
	tk := NewTicker(500)
	var calls atomic.Int64
	var inFlight atomic.Bool
	h := tk.Schedule(func(a *Animation) {
		inFlight.Store(true)
		calls.Add(1)
		time.Sleep(time.Millisecond)
		inFlight.Store(false)
	})
	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	h.Cancel()
	assert.False(t, inFlight.Load(), "no callback may be running after Cancel returns")
	n := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, calls.Load(), "callback ran after Cancel")
}

func TestTickerWrap(t *testing.T) {
	var mu sync.Mutex
	wrapped := 0
	tk := NewTicker(500)
	tk.Wrap = func(f func()) {
		mu.Lock()
		wrapped++
		f()
		mu.Unlock()
	}
	done := make(chan struct{})
	h := tk.Schedule(func(a *Animation) {
		if a.Frame == 1 {
			a.Done = true
			close(done)
		}
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not run")
	}
	assert.Eventually(t, h.Done, time.Second, time.Millisecond)
	mu.Lock()
	assert.GreaterOrEqual(t, wrapped, 2)
	mu.Unlock()
}

func TestNewTickerDefault(t *testing.T) {
	tk := NewTicker(0)
	assert.Equal(t, time.Second/DefaultFPS, tk.Interval)
}

func TestClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := &Clock{now: func() time.Time { return now }}
	assert.Equal(t, time.Duration(0), c.Elapsed())
	now = now.Add(1500 * time.Millisecond)
	assert.Equal(t, float32(1.5), c.Seconds())
}

func TestHandleStep(t *testing.T) {
	n := 0
	h := NewHandle(func(a *Animation) {
		n++
		if a.Frame == 2 {
			a.Done = true
		}
	})
	assert.True(t, h.Step(time.Millisecond))
	assert.True(t, h.Step(time.Millisecond))
	assert.False(t, h.Step(time.Millisecond))
	assert.False(t, h.Step(time.Millisecond))
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, h.Frames())
	assert.True(t, h.Done())

	c := NewHandle(func(a *Animation) { n++ })
	c.Cancel()
	assert.False(t, c.Step(time.Millisecond))
	assert.Equal(t, 3, n)
}
