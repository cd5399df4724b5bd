// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagReleaseOrder(t *testing.T) {
	var order []string
	b := NewBag("test", nil)
	b.AddFunc(Listener, "resize", func() { order = append(order, "resize") })
	b.AddFunc(GPU, "mesh", func() { order = append(order, "mesh") })
	b.AddFunc(Frame, "loop", func() { order = append(order, "loop") })
	assert.Equal(t, 3, b.Len())

	require.NoError(t, b.Release())
	assert.Equal(t, []string{"loop", "mesh", "resize"}, order)
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.Released())
}

func TestBagReleaseIdempotent(t *testing.T) {
	n := 0
	b := NewBag("test", nil)
	b.AddFunc(GPU, "texture", func() { n++ })
	require.NoError(t, b.Release())
	require.NoError(t, b.Release())
	assert.Equal(t, 1, n)
}

func TestBagReleaseJoinsErrors(t *testing.T) {
	errA := errors.New("a failed")
	ran := false
	b := NewBag("test", nil)
	b.AddFunc(Other, "last", func() { ran = true })
	b.Add(GPU, "a", DisposerFunc(func() error { return errA }))
	b.Add(GPU, "b", DisposerFunc(func() error { panic("boom") }))

	err := b.Release()
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, ran, "disposers after a failure must still run")
}

func TestBagAddAfterRelease(t *testing.T) {
	b := NewBag("test", nil)
	require.NoError(t, b.Release())
	disposed := false
	b.AddFunc(Listener, "late", func() { disposed = true })
	assert.True(t, disposed)
	assert.Equal(t, 0, b.Len())
}

func TestBagCounter(t *testing.T) {
	ctr := &Counter{}
	b := NewBag("test", ctr)
	b.AddFunc(Listener, "resize", func() {})
	b.AddFunc(Listener, "pointer", func() {})
	b.AddFunc(GPU, "mesh", func() {})
	assert.Equal(t, 2, ctr.Live(Listener))
	assert.Equal(t, 1, ctr.Live(GPU))
	assert.Equal(t, 3, ctr.Total())

	require.NoError(t, b.Release())
	assert.Equal(t, 0, ctr.Total())
	assert.Equal(t, "Other:0 Listener:0 Frame:0 GPU:0 Surface:0", ctr.String())
}

func TestNilCounter(t *testing.T) {
	var ctr *Counter
	ctr.Inc(GPU)
	ctr.Dec(GPU)
	assert.Equal(t, 0, ctr.Live(GPU))
	assert.Equal(t, 0, ctr.Total())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "GPU", GPU.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
