// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wave computes an animated wave surface on the CPU:
// a displaced plane whose color changes to a hover color
// around the pointer.
package wave

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Uniforms are the per-frame inputs of the wave.
type Uniforms struct {

	// Time is the elapsed time in seconds.
	Time float32

	// Mouse is the pointer position on the plane, in plane coordinates.
	Mouse math32.Vector2

	// Base is the color away from the pointer.
	Base color.RGBA

	// Hover is the color at the pointer.
	Hover color.RGBA

	// Radius is the radius of the hover color around the pointer.
	Radius float32

	// Amplitude is the maximum displacement along Z.
	Amplitude float32

	// Frequency is the spatial frequency of the wave.
	Frequency float32
}

// DefaultUniforms returns the default [Uniforms].
func DefaultUniforms() Uniforms {
	return Uniforms{
		Base:      color.RGBA{0x00, 0x55, 0x88, 0xff},
		Hover:     color.RGBA{0xff, 0x00, 0x66, 0xff},
		Radius:    0.5,
		Amplitude: 0.5,
		Frequency: 0.8,
	}
}

// Displace returns the Z displacement of the plane at the given point.
func Displace(x, y float32, u *Uniforms) float32 {
	return u.Amplitude * math32.Sin(x*u.Frequency+u.Time) * math32.Cos(y*u.Frequency+u.Time)
}

// Shade returns the color of the plane at the given point: [Uniforms.Hover]
// at the pointer, blending smoothly into [Uniforms.Base] at [Uniforms.Radius].
func Shade(x, y float32, u *Uniforms) color.RGBA {
	d := math32.Hypot(x-u.Mouse.X, y-u.Mouse.Y)
	t := smoothstep(0, u.Radius, d)
	return color.RGBA{
		R: mix(u.Hover.R, u.Base.R, t),
		G: mix(u.Hover.G, u.Base.G, t),
		B: mix(u.Hover.B, u.Base.B, t),
		A: mix(u.Hover.A, u.Base.A, t),
	}
}

// smoothstep is Hermite interpolation of x between e0 and e1.
func smoothstep(e0, e1, x float32) float32 {
	if e1 <= e0 {
		if x < e0 {
			return 0
		}
		return 1
	}
	t := math32.Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

func mix(a, b uint8, t float32) uint8 {
	return uint8(math32.Lerp(float32(a), float32(b), t) + 0.5)
}
