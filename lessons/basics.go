// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"context"
	"image/color"

	"cogentcore.org/core/xyz"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/session"
)

// Basics is a box rotating about the X and Y axes at constant
// angular speeds, with axis helpers at the origin.
func Basics(ctx context.Context, env *session.Env) (*session.Handle, error) {
	st := NewStage(env)
	sc := st.Scene
	xyz.NewAmbient(sc, "ambient", 0.4, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "dir", 1, xyz.DirectSun)
	dir.Pos.Set(1, 2, 3)

	box := st.AddMesh(xyz.NewBox(sc, "box", 1, 1, 1))
	sld := xyz.NewSolid(sc).SetMesh(box).SetColor(color.RGBA{18, 128, 201, 255})
	sld.SetName("box")
	NewAxes(st, sc, 5)
	st.LookFrom(0, 0.1, 5)

	st.Animate(func(a *frame.Animation) {
		ms := float32(a.Elapsed.Milliseconds())
		sld.Pose.SetEulerRotationRad(ms/2000, ms/1000, 0)
	})
	return st.Done(ctx)
}
