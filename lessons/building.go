// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"context"
	"image/color"

	"cogentcore.org/core/xyz"
	"cogentcore.org/lessons/session"
)

// Building is a building model on a wooden floor under a night sky,
// lit by point, ambient and directional lights. It has no frame loop:
// the scene is only rendered again when the camera is orbited. If the
// model file is not available, a procedural building made of boxes is
// shown instead.
func Building(ctx context.Context, env *session.Env) (*session.Handle, error) {
	st := NewStage(env)
	sc := st.Scene
	txs, err := st.LoadTextures(ctx)
	if err != nil {
		return st.Fail(err)
	}
	pt := xyz.NewPoint(sc, "point", 1, xyz.DirectSun)
	pt.Pos.Set(3, 5, 2)
	xyz.NewAmbient(sc, "ambient", 0.5, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "dir", 1, xyz.DirectSun)
	dir.Pos.Set(100, 50, 50)

	floor := st.AddMesh(xyz.NewPlane(sc, "floor", 30, 30))
	fl := xyz.NewSolid(sc).SetMesh(floor).SetPos(0, -2, 0).
		SetTexture(st.Texture(txs, "wood"))
	fl.SetName("floor")
	fl.Material.Tiling.Repeat.Set(4, 4)
	NewAxes(st, sc, 5)

	st.AddSky(txs, skyRadius)
	if gp, ok := st.LoadModel("building", boxBuilding); ok {
		gp.Pose.Pos.Set(10, -3, 10)
	} else {
		gp.Pose.Pos.Set(10, -2, 10)
	}
	if err := ctx.Err(); err != nil {
		return st.Fail(err)
	}
	st.LookFrom(0, 0.1, 4)
	st.EnableControls()
	return st.Done(ctx)
}

// skyRadius is the radius of the sky sphere, inside the camera far plane.
const skyRadius = 500

// boxBuilding fills gp with a simple building made of boxes.
func boxBuilding(st *Stage, gp *xyz.Group) {
	box := st.AddMesh(xyz.NewBox(st.Scene, "building-box", 1, 1, 1))
	parts := []struct {
		name             string
		clr              color.RGBA
		w, h, d, x, y, z float32
	}{
		{"base", color.RGBA{180, 170, 150, 255}, 6, 4, 6, 0, 2, 0},
		{"tower", color.RGBA{160, 150, 135, 255}, 3, 6, 3, 0, 7, 0},
		{"roof", color.RGBA{120, 50, 40, 255}, 3.5, 0.5, 3.5, 0, 10.25, 0},
		{"door", color.RGBA{90, 60, 40, 255}, 1.2, 2, 0.1, 0, 1, 3.05},
	}
	for _, p := range parts {
		sld := xyz.NewSolid(gp).SetMesh(box).SetColor(p.clr).
			SetScale(p.w, p.h, p.d).SetPos(p.x, p.y, p.z)
		sld.SetName(p.name)
	}
}
