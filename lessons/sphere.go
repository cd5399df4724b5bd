// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"context"

	"cogentcore.org/core/xyz"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/session"
)

// Sphere is a translucent sphere with a fabric texture repeated twice
// in each direction, rotating about the Y axis.
func Sphere(ctx context.Context, env *session.Env) (*session.Handle, error) {
	st := NewStage(env)
	sc := st.Scene
	txs, err := st.LoadTextures(ctx)
	if err != nil {
		return st.Fail(err)
	}
	addPointLights(sc)

	ms := st.AddMesh(xyz.NewSphere(sc, "sphere", 1, 64))
	sld := xyz.NewSolid(sc).SetMesh(ms).SetColor(rgba(11, 59, 73, 0.76)).
		SetTexture(st.Texture(txs, "fabric"))
	sld.SetName("sphere")
	sld.Material.Tiling.Repeat.Set(2, 2)
	st.LookFrom(0, 0, 3)

	var rot float32
	st.Animate(func(a *frame.Animation) {
		rot += CubeSpeed * frames(a)
		sld.Pose.SetAxisRotationRad(0, 1, 0, rot)
	})
	return st.Done(ctx)
}
