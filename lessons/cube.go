// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"context"
	"fmt"
	"image/color"

	"cogentcore.org/core/xyz"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/session"
	"github.com/jinzhu/copier"
)

// cubeFaces are the six faces of a unit cube, as the position and Euler
// rotation (in degrees) that take a plane facing +Y onto each face.
var cubeFaces = []struct {
	name       string
	px, py, pz float32
	rx, rz     float32
}{
	{"right", 0.5, 0, 0, 0, -90},
	{"left", -0.5, 0, 0, 0, 90},
	{"top", 0, 0.5, 0, 0, 0},
	{"bottom", 0, -0.5, 0, 180, 0},
	{"front", 0, 0, 0.5, 90, 0},
	{"back", 0, 0, -0.5, -90, 0},
}

// CubeSpeed is the rotation of the cube about the Y axis per frame,
// in radians.
const CubeSpeed = 0.01

// Cube is a fabric textured cube made of six faces with one material
// each, rotating about the Y axis, lit by two point lights.
func Cube(ctx context.Context, env *session.Env) (*session.Handle, error) {
	st := NewStage(env)
	sc := st.Scene
	txs, err := st.LoadTextures(ctx)
	if err != nil {
		return st.Fail(err)
	}
	addPointLights(sc)

	plane := st.AddMesh(xyz.NewPlane(sc, "face", 1, 1))
	tmpl := xyz.Material{}
	tmpl.Defaults()
	tmpl.Color = color.RGBA{20, 60, 94, 255}

	gp := xyz.NewGroup(sc)
	gp.SetName("cube")
	for _, f := range cubeFaces {
		sld := xyz.NewSolid(gp).SetMesh(plane).
			SetPos(f.px, f.py, f.pz).SetEulerRotation(f.rx, 0, f.rz)
		sld.SetName(f.name)
		if err := copier.CopyWithOption(&sld.Material, &tmpl, copier.Option{CaseSensitive: true}); err != nil {
			return st.Fail(fmt.Errorf("lessons: copying material of face %q: %w", f.name, err))
		}
		sld.SetTexture(st.Texture(txs, "fabric"))
	}
	st.LookFrom(0, 0, 3)
	st.EnableControls()

	var rot float32
	st.Animate(func(a *frame.Animation) {
		rot += CubeSpeed * frames(a)
		gp.Pose.SetAxisRotationRad(0, 1, 0, rot)
	})
	return st.Done(ctx)
}

// addPointLights adds the ambient light and the two point lights
// shared by the cube and sphere lessons.
func addPointLights(sc *xyz.Scene) {
	xyz.NewAmbient(sc, "ambient", 0.3, xyz.DirectSun)
	p1 := xyz.NewPoint(sc, "point1", 1, xyz.DirectSun)
	p1.Pos.Set(2, 2, 2)
	p2 := xyz.NewPoint(sc, "point2", 1, xyz.DirectSun)
	p2.Pos.Set(-2, -1, 2)
}
