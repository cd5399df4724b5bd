// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShade(t *testing.T) {
	u := DefaultUniforms()
	u.Mouse = math32.Vec2(1, 1)
	assert.Equal(t, u.Hover, Shade(1, 1, &u))
	assert.Equal(t, u.Base, Shade(1, 1.5, &u))
	assert.Equal(t, u.Base, Shade(-4, -4, &u))

	mid := Shade(1.25, 1, &u)
	assert.Greater(t, mid.R, u.Base.R)
	assert.Less(t, mid.R, u.Hover.R)

	u.Radius = 0
	assert.Equal(t, u.Base, Shade(1, 1, &u))
}

func TestDisplace(t *testing.T) {
	u := DefaultUniforms()
	assert.Equal(t, float32(0), Displace(0, 0, &u))
	for _, x := range []float32{-5, -2.5, 0, 1, 5} {
		for _, y := range []float32{-5, 0, 3} {
			assert.LessOrEqual(t, math32.Abs(Displace(x, y, &u)), u.Amplitude)
		}
	}
	u.Time = math32.Pi / 2
	assert.InDelta(t, u.Amplitude, Displace(0, -math32.Pi/2/u.Frequency, &u), 1e-5)
}

func TestGrid(t *testing.T) {
	g := NewGrid("wave", 10, 10, 30, 30)
	ms := g.Mesh
	assert.Equal(t, "wave", ms.Name)
	assert.Equal(t, 31*31, g.NumVertex())
	assert.Len(t, ms.Index, 6*30*30)
	nv, ni, hasColor := ms.MeshSize()
	assert.Equal(t, 31*31, nv)
	assert.Equal(t, 6*30*30, ni)
	assert.True(t, hasColor)

	assert.Equal(t, math32.Vec3(-5, 5, 0), g.Vertex(0))
	assert.Equal(t, math32.Vec3(5, -5, 0), g.Vertex(g.NumVertex()-1))
	for _, ix := range ms.Index {
		require.Less(t, int(ix), g.NumVertex())
	}

	u := DefaultUniforms()
	u.Time = 1
	g.Update(&u)
	k := 15*31 + 15
	v := g.Vertex(k)
	assert.InDelta(t, 0, v.X, 1e-5)
	assert.InDelta(t, Displace(v.X, v.Y, &u), v.Z, 1e-6)
	assert.InDelta(t, 1, ms.Color[4*k], 1e-6, "hover red at the pointer")
	assert.InDelta(t, 0, ms.Color[4*0], 1e-6, "base red away from the pointer")
}

func TestPick(t *testing.T) {
	g := NewGrid("wave", 10, 10, 2, 2)
	p, ok := g.Pick(math32.Vec2(0, 0), 20, 75, 1)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(0, 0), p)

	hh := 20 * math32.Tan(math32.DegToRad(75)/2)
	p, ok = g.Pick(math32.Vec2(0.1, -0.1), 20, 75, 2)
	assert.True(t, ok)
	assert.InDelta(t, 0.2*hh, p.X, 1e-4)
	assert.InDelta(t, -0.1*hh, p.Y, 1e-4)

	_, ok = g.Pick(math32.Vec2(1, 1), 20, 75, 1)
	assert.False(t, ok)
}
