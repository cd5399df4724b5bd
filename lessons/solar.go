// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"context"
	"image/color"

	"cogentcore.org/core/xyz"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/orbit"
	"cogentcore.org/lessons/session"
)

// planetSegments is the number of segments of planet spheres.
const planetSegments = 30

// Solar is the sun and nine planets of [orbit.Default], each spinning
// around its own axis and circling the sun, lit by a point light at
// the sun. Saturn and Uranus have double sided rings. A spaceship is
// parked near the orbit of Uranus, under a night sky.
func Solar(ctx context.Context, env *session.Env) (*session.Handle, error) {
	st := NewStage(env)
	sc := st.Scene
	txs, err := st.LoadTextures(ctx)
	if err != nil {
		return st.Fail(err)
	}
	xyz.NewPoint(sc, "sunlight", 2, xyz.DirectSun)
	xyz.NewAmbient(sc, "ambient", 0.15, xyz.DirectSun)

	sys := orbit.Default()
	sunMesh := st.AddMesh(xyz.NewSphere(sc, sys.Sun.Name, sys.Sun.Radius, planetSegments))
	sun := xyz.NewSolid(sc).SetMesh(sunMesh).SetTexture(st.Texture(txs, sys.Sun.Name)).
		SetEmissive(color.RGBA{200, 160, 90, 255})
	sun.SetName(sys.Sun.Name)

	planets := make([]*xyz.Solid, len(sys.Bodies))
	rings := make([]*xyz.Solid, len(sys.Bodies))
	for i := range sys.Bodies {
		b := &sys.Bodies[i]
		ms := st.AddMesh(xyz.NewSphere(sc, b.Name, b.Radius, planetSegments))
		pl := xyz.NewSolid(sc).SetMesh(ms).SetTexture(st.Texture(txs, b.Name))
		pl.SetName(b.Name)
		planets[i] = pl
		if b.Ring == nil {
			continue
		}
		name := b.Name + " ring"
		rm := st.AddMesh(RingMesh(name, b.Ring.Inner, b.Ring.Outer, 32))
		rs := xyz.NewSolid(sc).SetMesh(rm).SetTexture(st.Texture(txs, name))
		rs.SetName(name)
		rs.Material.CullBack = false
		rings[i] = rs
	}
	place := func() {
		sun.Pose.SetAxisRotationRad(0, 1, 0, sys.Sun.SpinAngle)
		for i := range sys.Bodies {
			b := &sys.Bodies[i]
			x, z := b.Position()
			planets[i].SetPos(x, 0, z)
			planets[i].Pose.SetAxisRotationRad(0, 1, 0, b.SpinAngle)
			if rings[i] != nil {
				rings[i].SetPos(x, 0, z)
			}
		}
	}
	place()
	st.AddSky(txs, skyRadius)
	ship, _ := st.LoadModel("ship", boxShip)
	ship.SetPos(10, 0, 170)
	st.EnableControls()
	st.LookFrom(-90, 140, 140)

	st.Animate(func(a *frame.Animation) {
		sys.Step(frames(a))
		place()
	})
	return st.Done(ctx)
}

// boxShip fills gp with a simple spaceship made of boxes,
// pointing along -Z.
func boxShip(st *Stage, gp *xyz.Group) {
	box := st.AddMesh(xyz.NewBox(st.Scene, "ship-box", 1, 1, 1))
	parts := []struct {
		name             string
		clr              color.RGBA
		w, h, d, x, y, z float32
	}{
		{"hull", color.RGBA{170, 175, 185, 255}, 2, 1.5, 8, 0, 0, 0},
		{"cockpit", color.RGBA{60, 120, 200, 255}, 1.2, 0.8, 2, 0, 0.9, -2},
		{"wings", color.RGBA{130, 135, 145, 255}, 10, 0.3, 3, 0, 0, 1},
		{"engine", color.RGBA{240, 120, 40, 255}, 1.4, 1, 0.5, 0, 0, 4.2},
	}
	for _, p := range parts {
		sld := xyz.NewSolid(gp).SetMesh(box).SetColor(p.clr).
			SetScale(p.w, p.h, p.d).SetPos(p.x, p.y, p.z)
		sld.SetName(p.name)
	}
}
