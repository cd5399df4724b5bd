// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"context"
	"sync"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/session"
	"cogentcore.org/lessons/surface"
	"cogentcore.org/lessons/wave"
)

const (
	// shaderDistance is the distance of the camera from the wave plane.
	shaderDistance = 20

	// shaderFOV is the vertical field of view of the camera, in degrees.
	shaderFOV = 75
)

// Wave is the state of the shader lesson, available as the
// Controls of its handle alongside the camera controls.
type Wave struct {
	*Controls

	// Grid is the displaced plane.
	Grid *wave.Grid

	// Uniforms are the current wave inputs.
	Uniforms wave.Uniforms

	mu      sync.Mutex
	pointer math32.Vector2
	moved   bool
}

// Pointer returns the last pointer position in normalized
// device coordinates, and whether the pointer has moved at all.
func (w *Wave) Pointer() (math32.Vector2, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pointer, w.moved
}

func (w *Wave) setPointer(ndc math32.Vector2) {
	w.mu.Lock()
	w.pointer = ndc
	w.moved = true
	w.mu.Unlock()
}

// Shader is a wireframe plane displaced by a time varying wave, whose
// color changes to the hover color around the point under the pointer.
func Shader(ctx context.Context, env *session.Env) (*session.Handle, error) {
	st := NewStage(env)
	sc := st.Scene
	sc.Wireframe = true
	xyz.NewPoint(sc, "point", 2, xyz.DirectSun)
	xyz.NewAmbient(sc, "ambient", 1, xyz.DirectSun)

	w := &Wave{Grid: wave.NewGrid("wave", 10, 10, 30, 30), Uniforms: wave.DefaultUniforms()}
	w.Grid.Update(&w.Uniforms)
	ms := st.AddMesh(w.Grid.Mesh)
	sld := xyz.NewSolid(sc).SetMesh(ms).SetColor(w.Uniforms.Base)
	sld.SetName("wave")
	sld.Material.CullBack = false

	sc.Camera.FOV = shaderFOV
	st.LookFrom(0, 0, shaderDistance)
	w.Controls = st.EnableControls()
	st.Handle.Controls = w

	st.OnPointerMove(func(e surface.PointerEvent) {
		w.setPointer(e.NDC)
	})
	st.Animate(func(a *frame.Animation) {
		w.Uniforms.Time = seconds(a)
		if ndc, ok := w.Pointer(); ok {
			if p, in := w.Grid.Pick(ndc, shaderDistance, shaderFOV, sc.Camera.Aspect); in {
				w.Uniforms.Mouse = p
			}
		}
		w.Grid.Update(&w.Uniforms)
		sc.SetMesh(w.Grid.Mesh)
	})
	return st.Done(ctx)
}
