// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit provides the kinematics of a toy solar system,
// in which every planet spins around its own axis and circles
// the sun at a constant angular speed per frame.
package orbit

import (
	"github.com/chewxy/math32"
)

// Ring is a flat ring around a planet.
type Ring struct {
	Inner, Outer float32
	Texture      string
}

// Planet is the static description of one body.
type Planet struct {
	Name string

	// Radius is the radius of the body.
	Radius float32

	// Distance is the distance of the body from the sun.
	Distance float32

	// Spin is the self rotation per frame, in radians.
	Spin float32

	// Speed is the rotation around the sun per frame, in radians.
	Speed float32

	// Texture is the file name of the surface texture.
	Texture string

	// Ring is the optional ring of the planet.
	Ring *Ring
}

// Sun is the center of the system.
var Sun = Planet{Name: "sun", Radius: 16, Spin: 0.004, Texture: "sun.jpg"}

// Planets are the planets of the system, ordered by distance from the sun.
var Planets = []Planet{
	{Name: "mercury", Radius: 3.2, Distance: 28, Spin: 0.004, Speed: 0.04, Texture: "mercury.jpg"},
	{Name: "venus", Radius: 5.8, Distance: 44, Spin: 0.002, Speed: 0.015, Texture: "venus.jpg"},
	{Name: "earth", Radius: 6, Distance: 62, Spin: 0.02, Speed: 0.01, Texture: "earth.jpg"},
	{Name: "mars", Radius: 4, Distance: 78, Spin: 0.018, Speed: 0.008, Texture: "mars.jpg"},
	{Name: "jupiter", Radius: 12, Distance: 100, Spin: 0.04, Speed: 0.002, Texture: "jupiter.jpg"},
	{Name: "saturn", Radius: 10, Distance: 138, Spin: 0.038, Speed: 0.0009, Texture: "saturn.jpg",
		Ring: &Ring{Inner: 10, Outer: 20, Texture: "saturn ring.png"}},
	{Name: "uranus", Radius: 7, Distance: 176, Spin: 0.03, Speed: 0.0004, Texture: "uranus.jpg",
		Ring: &Ring{Inner: 7, Outer: 12, Texture: "uranus ring.png"}},
	{Name: "neptune", Radius: 7, Distance: 200, Spin: 0.032, Speed: 0.0001, Texture: "neptune.jpg"},
	{Name: "pluto", Radius: 2.8, Distance: 216, Spin: 0.008, Speed: 0.00007, Texture: "pluto.jpg"},
}

// Body is a [Planet] in motion.
type Body struct {
	Planet

	// SpinAngle is the current self rotation, in radians in [0, 2π).
	SpinAngle float32

	// OrbitAngle is the current angle around the sun, in radians in [0, 2π).
	OrbitAngle float32
}

// Position returns the position of the body in the XZ plane.
// An orbit angle of zero is on the +X axis, and positive angles
// rotate counterclockwise seen from +Y, toward -Z.
func (b *Body) Position() (x, z float32) {
	s, c := math32.Sincos(b.OrbitAngle)
	return b.Distance * c, -b.Distance * s
}

// step advances the body by the given number of frames.
func (b *Body) step(frames float32) {
	b.SpinAngle = wrap(b.SpinAngle + b.Spin*frames)
	b.OrbitAngle = wrap(b.OrbitAngle + b.Speed*frames)
}

// wrap wraps the given angle into [0, 2π).
func wrap(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}

// System is a sun and the planets circling it.
type System struct {
	Sun    Body
	Bodies []Body
}

// NewSystem returns a new [System] with all angles at zero.
func NewSystem(sun Planet, planets []Planet) *System {
	s := &System{Sun: Body{Planet: sun}}
	for _, p := range planets {
		s.Bodies = append(s.Bodies, Body{Planet: p})
	}
	return s
}

// Default returns a new [System] of [Sun] and [Planets].
func Default() *System {
	return NewSystem(Sun, Planets)
}

// Step advances every body by the given number of frames,
// which may be fractional to follow the real frame time.
func (s *System) Step(frames float32) {
	s.Sun.step(frames)
	for i := range s.Bodies {
		s.Bodies[i].step(frames)
	}
}

// Position returns the XZ position of the body at the given index.
func (s *System) Position(i int) (x, z float32) {
	return s.Bodies[i].Position()
}

// Period returns the number of frames a body takes to circle
// the sun once, or +Inf if it does not move.
func (b *Body) Period() float32 {
	if b.Speed == 0 {
		return math32.Inf(1)
	}
	return 2 * math32.Pi / b.Speed
}
