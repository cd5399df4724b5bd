// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/lessons"
	"cogentcore.org/lessons/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	reg := session.NewRegistry()
	require.NoError(t, lessons.Register(reg))
	var b bytes.Buffer
	require.NoError(t, list(&b, reg))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, reg.Len())
	for i, id := range reg.IDs() {
		assert.Contains(t, lines[i], id)
	}
	assert.Contains(t, b.String(), "Solar system")
}

func TestTick(t *testing.T) {
	var deltas []time.Duration
	fh := frame.NewHandle(func(a *frame.Animation) {
		deltas = append(deltas, a.Delta)
	})
	f := tick(fh)
	a := &core.Animation{Delta: 16 * time.Millisecond}
	f(a)
	f(a)
	assert.False(t, a.Done)
	assert.Equal(t, []time.Duration{16 * time.Millisecond, 16 * time.Millisecond}, deltas)

	fh.Cancel()
	f(a)
	assert.True(t, a.Done)
	assert.Len(t, deltas, 2)

	fd := frame.NewHandle(func(a *frame.Animation) { a.Done = true })
	b := &core.Animation{}
	tick(fd)(b)
	assert.True(t, b.Done)
}

func TestScheduleAfterClose(t *testing.T) {
	h := &sceneHost{events: make(chan func())}
	h.close()
	ran := false
	fh := h.Schedule(func(a *frame.Animation) { ran = true })
	assert.True(t, fh.Done())
	assert.False(t, fh.Step(time.Millisecond))
	assert.False(t, ran)
}
