// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"hash/fnv"
	"image"
	"image/color"
	"math/rand/v2"
)

// Checker returns a size x size checkerboard with cells
// of the given size in the two given colors.
func Checker(size, cell int, a, b color.RGBA) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, size, size))
	if cell <= 0 {
		cell = 1
	}
	for y := range size {
		for x := range size {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			im.SetRGBA(x, y, c)
		}
	}
	return im
}

// Gradient returns a size x size vertical gradient from the
// top color to the bottom color.
func Gradient(size int, top, bottom color.RGBA) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		t := float32(y) / float32(max(size-1, 1))
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: lerp(top.A, bottom.A, t),
		}
		for x := range size {
			im.SetRGBA(x, y, c)
		}
	}
	return im
}

func lerp(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
}

// Fallback returns the procedural texture used in place of the
// named texture when it cannot be loaded. Each name gets its own
// stable pair of checker colors.
func Fallback(name string, size int) *image.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	v := h.Sum32()
	a := color.RGBA{uint8(v), uint8(v >> 8), uint8(v >> 16), 255}
	b := color.RGBA{255 - a.R/2, 255 - a.G/2, 255 - a.B/2, 255}
	return Checker(size, max(size/8, 1), a, b)
}

// Sky returns a 2size x size night sky for an equirectangular
// background: a dark gradient with a stable field of stars.
func Sky(size int) *image.RGBA {
	g := Gradient(2*size, color.RGBA{2, 4, 16, 255}, color.RGBA{10, 14, 36, 255})
	im := image.NewRGBA(image.Rect(0, 0, 2*size, size))
	copy(im.Pix, g.Pix[(size/2)*g.Stride:])
	rnd := rand.New(rand.NewPCG(uint64(size), 0x5eed))
	for range size * size / 200 {
		x, y := rnd.IntN(2*size), rnd.IntN(size)
		v := uint8(150 + rnd.IntN(106))
		im.SetRGBA(x, y, color.RGBA{v, v, v, 255})
	}
	return im
}
