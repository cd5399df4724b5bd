// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
)

// RingMesh returns a flat annulus mesh in the XZ plane, facing +Y,
// between the given inner and outer radius. The U texture coordinate
// runs from the inner to the outer edge, so that a ring texture strip
// maps across the width of the ring.
func RingMesh(name string, inner, outer float32, segs int) *xyz.GenMesh {
	segs = max(segs, 3)
	n := 2 * (segs + 1)
	ms := &xyz.GenMesh{}
	ms.Name = name
	ms.Vertex = make(math32.ArrayF32, 0, 3*n)
	ms.Normal = make(math32.ArrayF32, 0, 3*n)
	ms.TexCoord = make(math32.ArrayF32, 0, 2*n)
	for i := range segs + 1 {
		a := 2 * math32.Pi * float32(i) / float32(segs)
		s, c := math32.Sincos(a)
		v := float32(i) / float32(segs)
		ms.Vertex = append(ms.Vertex, inner*c, 0, -inner*s, outer*c, 0, -outer*s)
		ms.Normal = append(ms.Normal, 0, 1, 0, 0, 1, 0)
		ms.TexCoord = append(ms.TexCoord, 0, v, 1, v)
	}
	ms.Index = make(math32.ArrayU32, 0, 6*segs)
	for i := range segs {
		a := uint32(2 * i)
		ms.Index = append(ms.Index, a, a+1, a+3, a, a+3, a+2)
	}
	return ms
}

// NewAxes adds a group with three thin boxes along the X, Y and Z axes,
// colored red, green and blue, of the given length.
func NewAxes(st *Stage, parent tree.Node, length float32) *xyz.Group {
	gp := xyz.NewGroup(parent)
	gp.SetName("axes")
	ms := st.AddMesh(xyz.NewBox(st.Scene, "axis", 1, 1, 1))
	const thick = 0.01
	axes := []struct {
		name    string
		clr     color.RGBA
		x, y, z float32
	}{
		{"x", color.RGBA{255, 0, 0, 255}, length, thick, thick},
		{"y", color.RGBA{0, 255, 0, 255}, thick, length, thick},
		{"z", color.RGBA{0, 0, 255, 255}, thick, thick, length},
	}
	for _, ax := range axes {
		sld := xyz.NewSolid(gp).SetMesh(ms).SetColor(ax.clr).
			SetScale(ax.x, ax.y, ax.z).SetPos(ax.x/2, ax.y/2, ax.z/2)
		sld.SetName("axis-" + ax.name)
	}
	return gp
}
