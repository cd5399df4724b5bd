// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	_ "cogentcore.org/core/xyz/io/obj"
	"cogentcore.org/lessons/assets"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/resource"
	"cogentcore.org/lessons/session"
	"cogentcore.org/lessons/surface"
)

// Stage builds the session of one lesson: it owns the [xyz.Scene] of the
// session and registers everything it creates with the resource bag of
// the session handle, so that [session.Handle.Dispose] releases all of it.
type Stage struct {

	// Lesson is the catalog entry of the lesson.
	Lesson Lesson

	// Env is the environment of the session.
	Env *session.Env

	// Handle is the handle returned by the constructor.
	Handle *session.Handle

	// Scene is the 3D scene of the session.
	Scene *xyz.Scene
}

// NewStage returns a new [Stage] for the lesson of the given environment,
// with a new scene sized to the surface, and a resize listener that keeps
// the camera aspect ratio in sync with the surface.
func NewStage(env *session.Env) *Stage {
	if env.Logger == nil {
		env.Logger = slog.Default()
	}
	ls, _ := Lookup(env.ID)
	if ls.ID == "" {
		ls.ID = env.ID
	}
	h := env.NewHandle()
	sc := xyz.NewScene()
	sc.SetName(env.ID)
	sc.NoNav = true
	sc.Background = colors.Uniform(colors.Black)
	st := &Stage{Lesson: ls, Env: env, Handle: h, Scene: sc}
	h.Content = sc
	st.setSize(env.Surface.Size())
	st.Bag().AddFunc(resource.Other, "scene", func() {
		sc.DeleteChildren()
		sc.Lights.Reset()
		sc.ResetMeshes()
		sc.Textures.Reset()
	})
	st.Bag().AddFunc(resource.Listener, "resize", env.Surface.OnResize(func(sz image.Point) {
		env.Surface.Update(func() {
			st.setSize(sz)
			sc.SetNeedsRender()
		})
	}))
	return st
}

// Bag returns the resource bag of the session.
func (st *Stage) Bag() *resource.Bag {
	return st.Handle.Bag()
}

// setSize sets the size of the scene and the aspect ratio of its camera.
func (st *Stage) setSize(sz image.Point) {
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	st.Scene.Geom.Size = sz
	st.Scene.Camera.Aspect = surface.Aspect(sz)
	st.Scene.Camera.UpdateMatrix()
}

// Fail disposes of everything the stage has created so far and
// returns the given error, for returning from a constructor.
func (st *Stage) Fail(err error) (*session.Handle, error) {
	st.Env.Logger.Debug("lesson failed, releasing", "id", st.Lesson.ID, "resources", st.Bag().Len())
	st.Handle.Dispose()
	return nil, err
}

// Done returns the handle, for returning from a constructor,
// unless ctx is already done, in which case everything is released.
func (st *Stage) Done(ctx context.Context) (*session.Handle, error) {
	if err := ctx.Err(); err != nil {
		return st.Fail(err)
	}
	st.Scene.SetNeedsUpdate()
	return st.Handle, nil
}

// LookFrom places the camera at the given position looking at the origin,
// and saves it as the default camera.
func (st *Stage) LookFrom(x, y, z float32) {
	cam := &st.Scene.Camera
	cam.Pose.Pos.Set(x, y, z)
	cam.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	st.Scene.SaveCamera("default")
}

// AddMesh adds the given mesh to the scene, to be removed on dispose.
func (st *Stage) AddMesh(ms xyz.Mesh) xyz.Mesh {
	name := ms.AsMeshBase().Name
	st.Scene.SetMesh(ms)
	st.Bag().AddFunc(resource.GPU, "mesh "+name, func() {
		st.Scene.Meshes.DeleteKey(name)
	})
	return ms
}

// AddTexture adds the given image as a texture with the given name,
// to be removed on dispose.
func (st *Stage) AddTexture(name string, im *image.RGBA) xyz.Texture {
	tx := &xyz.TextureBase{Name: name, RGBA: im}
	st.Scene.SetTexture(tx)
	st.Bag().AddFunc(resource.GPU, "texture "+name, func() {
		st.Scene.Textures.DeleteKey(name)
	})
	return tx
}

// LoadTextures loads the textures of the lesson and adds them to the scene.
// Textures that fail to load are left out of the map, and are replaced by
// procedural ones when they are used. The only error is that of ctx.
func (st *Stage) LoadTextures(ctx context.Context) (map[string]xyz.Texture, error) {
	txs, err := st.Env.Assets.LoadTextures(ctx, st.Lesson.Requests()...)
	if err != nil {
		return nil, err
	}
	m := make(map[string]xyz.Texture, len(txs))
	for _, tx := range txs {
		if tx.Fallback {
			continue
		}
		m[tx.Name] = st.AddTexture(tx.Name, tx.Image)
	}
	return m, nil
}

// Texture returns the texture with the given name from the given map,
// or a procedural texture if it is not there.
func (st *Stage) Texture(txs map[string]xyz.Texture, name string) xyz.Texture {
	if tx, ok := txs[name]; ok {
		return tx
	}
	return st.AddTexture(name, assets.Fallback(name, 256))
}

// skySegments is the number of segments of the sky sphere.
const skySegments = 64

// AddSky adds a sphere of the given radius around the origin that shows
// the "sky" texture on its inside, as the background of the scene.
// A procedural night sky is used if the texture is not in txs.
func (st *Stage) AddSky(txs map[string]xyz.Texture, radius float32) *xyz.Solid {
	sc := st.Scene
	tx, ok := txs["sky"]
	if !ok {
		tx = st.AddTexture("sky", assets.Sky(512))
	}
	ms := st.AddMesh(xyz.NewSphere(sc, "sky", radius, skySegments))
	sky := xyz.NewSolid(sc).SetMesh(ms).SetTexture(tx).
		SetEmissive(color.RGBA{90, 90, 90, 255})
	sky.SetName("sky")
	sky.Material.CullBack = false
	sky.Material.CullFront = true
	return sky
}

// LoadModel loads the catalog model with the given name into a new
// group of the same name, returning whether it was loaded. If the
// lesson has no such model file, or it fails to load, the group is
// filled by the given fallback function instead.
func (st *Stage) LoadModel(name string, fallback func(st *Stage, gp *xyz.Group)) (*xyz.Group, bool) {
	sc := st.Scene
	path := st.Lesson.Models[name]
	if fp := st.Env.Assets.FilePath(path); path != "" && fp != "" {
		gp, err := sc.OpenNewObj(fp, sc)
		if err == nil {
			gp.SetName(name)
			return gp, true
		}
		st.Env.Logger.Warn("model failed to load, using a procedural model", "model", name, "path", fp, "err", err)
		if gp != nil {
			gp.Delete()
		}
	}
	gp := xyz.NewGroup(sc)
	gp.SetName(name)
	fallback(st, gp)
	return gp, false
}

// Animate schedules the given function to run on every frame while
// the scene is displayed, followed by a scene update. Frames run under
// the render lock of the scheduler. The callback is cancelled on dispose.
func (st *Stage) Animate(f func(a *frame.Animation)) *frame.Handle {
	fh := st.Env.Scheduler.Schedule(func(a *frame.Animation) {
		if !st.Env.Surface.Attached() {
			return
		}
		f(a)
		st.Scene.SetNeedsUpdate()
	})
	st.Bag().AddFunc(resource.Frame, "animation", fh.Cancel)
	return fh
}

// OnPointerMove adds a pointer listener, removed on dispose.
func (st *Stage) OnPointerMove(f func(e surface.PointerEvent)) {
	st.Bag().AddFunc(resource.Listener, "pointer", st.Env.Surface.OnPointerMove(f))
}

// Render requests a render of the scene with updated node positions.
func (st *Stage) Render() {
	st.Env.Surface.Do(func() {
		st.Scene.SetNeedsUpdate()
	})
}

// EnableControls adds orbit camera [Controls] to the session.
func (st *Stage) EnableControls() *Controls {
	ctl := &Controls{Scene: st.Scene, Speed: 1}
	st.Handle.Controls = ctl
	st.Bag().AddFunc(resource.Listener, "orbit", st.Env.Surface.OnOrbit(func(e surface.OrbitEvent) {
		st.Env.Surface.Update(func() {
			ctl.Orbit(e.DeltaX, e.DeltaY)
		})
		st.Render()
	}))
	return ctl
}

// Controls orbits the camera of a scene around its target.
type Controls struct {
	Scene *xyz.Scene

	// Speed multiplies orbit deltas.
	Speed float32

	// Changes is the number of orbit changes applied.
	Changes int
}

// Orbit orbits the camera by the given deltas, in degrees.
func (ctl *Controls) Orbit(dx, dy float32) {
	ctl.Scene.Camera.Orbit(dx*ctl.Speed, dy*ctl.Speed)
	ctl.Changes++
}

// Reset restores the default camera.
func (ctl *Controls) Reset() {
	ctl.Scene.SetCamera("default")
}

// frames returns the number of nominal frames that the given
// animation delta corresponds to, for per-frame speeds.
func frames(a *frame.Animation) float32 {
	return float32(a.Delta.Seconds() * frame.DefaultFPS)
}

// seconds returns the elapsed time of the given animation in seconds.
func seconds(a *frame.Animation) float32 {
	return float32(a.Elapsed) / float32(time.Second)
}

// rgba returns a color with the given components, with alpha in [0, 1].
func rgba(r, g, b uint8, a float32) color.RGBA {
	return color.RGBA{r, g, b, uint8(a*255 + 0.5)}
}
