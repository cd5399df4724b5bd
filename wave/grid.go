// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// Grid is a plane in the XY plane, facing +Z, centered at the origin,
// divided into segments whose vertices are displaced by the wave.
type Grid struct {
	Width, Height float32
	SegsX, SegsY  int

	// Mesh is the mesh of the grid, updated in place by [Grid.Update].
	Mesh *xyz.GenMesh
}

// NewGrid returns a new [Grid] of the given size and number of segments,
// with a mesh of the given name.
func NewGrid(name string, width, height float32, segsX, segsY int) *Grid {
	segsX = max(segsX, 1)
	segsY = max(segsY, 1)
	g := &Grid{Width: width, Height: height, SegsX: segsX, SegsY: segsY}
	nx, ny := segsX+1, segsY+1
	n := nx * ny
	ms := &xyz.GenMesh{}
	ms.Name = name
	ms.Vertex = make(math32.ArrayF32, 3*n)
	ms.Normal = make(math32.ArrayF32, 3*n)
	ms.TexCoord = make(math32.ArrayF32, 2*n)
	ms.Color = make(math32.ArrayF32, 4*n)
	for j := range ny {
		for i := range nx {
			k := j*nx + i
			x := -width/2 + float32(i)*width/float32(segsX)
			y := height/2 - float32(j)*height/float32(segsY)
			ms.Vertex[3*k], ms.Vertex[3*k+1] = x, y
			ms.Normal[3*k+2] = 1
			ms.TexCoord[2*k] = float32(i) / float32(segsX)
			ms.TexCoord[2*k+1] = 1 - float32(j)/float32(segsY)
		}
	}
	ms.Index = make(math32.ArrayU32, 0, 6*segsX*segsY)
	for j := range segsY {
		for i := range segsX {
			a := uint32(j*nx + i)
			b := uint32((j+1)*nx + i)
			c := b + 1
			d := a + 1
			ms.Index = append(ms.Index, a, b, d, b, c, d)
		}
	}
	g.Mesh = ms
	return g
}

// NumVertex returns the number of vertices of the grid.
func (g *Grid) NumVertex() int {
	return (g.SegsX + 1) * (g.SegsY + 1)
}

// Vertex returns the position of the vertex at the given index.
func (g *Grid) Vertex(k int) math32.Vector3 {
	v := g.Mesh.Vertex
	return math32.Vec3(v[3*k], v[3*k+1], v[3*k+2])
}

// Update recomputes the displacement and color of every vertex
// for the given uniforms.
func (g *Grid) Update(u *Uniforms) {
	ms := g.Mesh
	for k := range g.NumVertex() {
		x, y := ms.Vertex[3*k], ms.Vertex[3*k+1]
		ms.Vertex[3*k+2] = Displace(x, y, u)
		c := Shade(x, y, u)
		ms.Color[4*k] = float32(c.R) / 255
		ms.Color[4*k+1] = float32(c.G) / 255
		ms.Color[4*k+2] = float32(c.B) / 255
		ms.Color[4*k+3] = float32(c.A) / 255
	}
}

// Pick converts the given pointer position in normalized device
// coordinates into a point on the grid plane, for a camera on the
// +Z axis at the given distance looking at the origin, with the given
// vertical field of view in degrees and aspect ratio. It returns false
// if the point is outside of the grid.
func (g *Grid) Pick(ndc math32.Vector2, dist, fov, aspect float32) (math32.Vector2, bool) {
	hh := dist * math32.Tan(math32.DegToRad(fov)/2)
	p := math32.Vec2(ndc.X*hh*aspect, ndc.Y*hh)
	in := math32.Abs(p.X) <= g.Width/2 && math32.Abs(p.Y) <= g.Height/2
	return p, in
}
