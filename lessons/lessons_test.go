// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/xyz"
	"cogentcore.org/lessons/assets"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/resource"
	"cogentcore.org/lessons/session"
	"cogentcore.org/lessons/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	host  *surface.NullHost
	surf  *surface.Surface
	sched *frame.Manual
	ctr   *resource.Counter
}

func newFixture() *fixture {
	f := &fixture{
		host:  &surface.NullHost{},
		sched: &frame.Manual{},
		ctr:   &resource.Counter{},
	}
	f.surf = surface.New(f.host, image.Pt(800, 600))
	return f
}

func (f *fixture) env(id string) *session.Env {
	return &session.Env{ID: id, Surface: f.surf, Scheduler: f.sched, Counter: f.ctr}
}

// start constructs and attaches the lesson with the given id.
func (f *fixture) start(t *testing.T, id string) (*session.Handle, *xyz.Scene) {
	t.Helper()
	h, err := Constructors[id](context.Background(), f.env(id))
	require.NoError(t, err)
	require.NotNil(t, h)
	sc, ok := h.Content.(*xyz.Scene)
	require.True(t, ok)
	require.NoError(t, h.Attach())
	return h, sc
}

func (f *fixture) step(n int) {
	for range n {
		f.sched.Step(time.Second / frame.DefaultFPS)
	}
}

func solid(t *testing.T, sc *xyz.Scene, name string) *xyz.Solid {
	t.Helper()
	sld, ok := sc.ChildByName(name).(*xyz.Solid)
	require.True(t, ok, "solid %q", name)
	return sld
}

func TestCatalog(t *testing.T) {
	ids := []string{}
	for _, ls := range Catalog() {
		ids = append(ids, ls.ID)
		assert.Contains(t, Constructors, ls.ID)
		assert.NotEmpty(t, ls.Title)
	}
	assert.Equal(t, []string{"basics", "cube", "sphere", "building", "solar", "shader"}, ids)

	reg := session.NewRegistry()
	require.NoError(t, Register(reg))
	assert.Equal(t, ids, reg.IDs())

	cube, ok := Lookup("cube")
	require.True(t, ok)
	assert.True(t, cube.Controls)
	require.Len(t, cube.Requests(), 1)
	assert.Equal(t, "fabric", cube.Requests()[0].Name)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestParseCatalogErrors(t *testing.T) {
	_, err := ParseCatalog([]byte("lessons: [\n"))
	assert.Error(t, err)
	_, err = ParseCatalog([]byte("lessons:\n  - title: No id\n"))
	assert.ErrorContains(t, err, "no id")
	_, err = ParseCatalog([]byte("lessons:\n  - id: a\n  - id: a\n"))
	assert.ErrorContains(t, err, "duplicate")
}

func TestLessonLifecycle(t *testing.T) {
	for _, ls := range Catalog() {
		t.Run(ls.ID, func(t *testing.T) {
			f := newFixture()
			h, sc := f.start(t, ls.ID)
			assert.Equal(t, ls.ID, sc.Name)
			assert.InDelta(t, 800.0/600.0, sc.Camera.Aspect, 1e-6)
			assert.Equal(t, image.Pt(800, 600), sc.Geom.Size)
			assert.Equal(t, ls.Controls, h.Controls != nil)
			assert.Positive(t, sc.Meshes.Len())
			assert.Equal(t, 1, f.host.Live())

			f.step(3)
			f.surf.Resize(image.Pt(1000, 500))
			assert.InDelta(t, 2, sc.Camera.Aspect, 1e-6)
			assert.Equal(t, image.Pt(1000, 500), sc.Geom.Size)

			h.Dispose()
			h.Dispose()
			assert.Equal(t, 0, f.ctr.Total())
			assert.Equal(t, 0, f.surf.ListenerCount())
			assert.Equal(t, 0, f.sched.Live())
			assert.Equal(t, 0, f.host.Live())
			assert.Equal(t, 0, sc.Meshes.Len())
			assert.Equal(t, 0, sc.Textures.Len())
			assert.Equal(t, 0, sc.Lights.Len())
			assert.Empty(t, sc.Children)

			// resize after dispose reaches nothing
			f.surf.Resize(image.Pt(300, 300))
			assert.InDelta(t, 2, sc.Camera.Aspect, 1e-6)
		})
	}
}

func TestLessonCancelled(t *testing.T) {
	for _, ls := range Catalog() {
		t.Run(ls.ID, func(t *testing.T) {
			f := newFixture()
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			h, err := Constructors[ls.ID](ctx, f.env(ls.ID))
			assert.ErrorIs(t, err, context.Canceled)
			assert.Nil(t, h)
			assert.Equal(t, 0, f.ctr.Total())
			assert.Equal(t, 0, f.surf.ListenerCount())
			assert.Equal(t, 0, f.sched.Live())
		})
	}
}

func TestResizeBeforeAttach(t *testing.T) {
	f := newFixture()
	h, err := Cube(context.Background(), f.env("cube"))
	require.NoError(t, err)
	defer h.Dispose()
	f.surf.Resize(image.Pt(400, 400))
	assert.InDelta(t, 1, h.Content.(*xyz.Scene).Camera.Aspect, 1e-6)
}

func TestBasicsRotates(t *testing.T) {
	f := newFixture()
	h, sc := f.start(t, "basics")
	defer h.Dispose()
	box := solid(t, sc, "box")
	before := box.Pose.Quat
	f.step(30)
	assert.NotEqual(t, before, box.Pose.Quat)
	axes, ok := sc.ChildByName("axes").(*xyz.Group)
	require.True(t, ok)
	ax, ok := axes.ChildByName("axis-x").(*xyz.Solid)
	require.True(t, ok)
	assert.Equal(t, float32(5), ax.Pose.Scale.X)
}

func TestAnimateOnlyWhileAttached(t *testing.T) {
	f := newFixture()
	h, err := Basics(context.Background(), f.env("basics"))
	require.NoError(t, err)
	defer h.Dispose()
	box := solid(t, h.Content.(*xyz.Scene), "box")
	before := box.Pose.Quat
	f.step(10)
	assert.Equal(t, before, box.Pose.Quat)
	require.NoError(t, h.Attach())
	f.step(10)
	assert.NotEqual(t, before, box.Pose.Quat)
}

func TestCubeFaces(t *testing.T) {
	f := newFixture()
	h, sc := f.start(t, "cube")
	defer h.Dispose()
	gp, ok := sc.ChildByName("cube").(*xyz.Group)
	require.True(t, ok)
	require.Len(t, gp.Children, 6)
	for _, c := range gp.Children {
		sld := c.(*xyz.Solid)
		assert.Equal(t, color.RGBA{20, 60, 94, 255}, sld.Material.Color)
		assert.Equal(t, xyz.TextureName("fabric"), sld.Material.TextureName)
	}
	before := gp.Pose.Quat
	f.step(10)
	assert.NotEqual(t, before, gp.Pose.Quat)

	ctl, ok := h.Controls.(*Controls)
	require.True(t, ok)
	f.surf.Orbit(10, 0)
	assert.Equal(t, 1, ctl.Changes)
}

func TestCubeTextureFromAssets(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "textures", "Fabric077_2K-PNG", "Fabric077_2K-PNG_Color.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0o755))
	im := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fl, err := os.Create(fp)
	require.NoError(t, err)
	require.NoError(t, png.Encode(fl, im))
	require.NoError(t, fl.Close())

	ld, err := assets.NewDirLoader(dir)
	require.NoError(t, err)
	f := newFixture()
	env := f.env("cube")
	env.Assets = ld
	h, err := Cube(context.Background(), env)
	require.NoError(t, err)
	defer h.Dispose()
	sc := h.Content.(*xyz.Scene)
	tx, ok := sc.Textures.ValueByKeyTry("fabric")
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 4, 4), tx.(*xyz.TextureBase).RGBA.Bounds())
}

func TestSphereMaterial(t *testing.T) {
	f := newFixture()
	h, sc := f.start(t, "sphere")
	defer h.Dispose()
	sld := solid(t, sc, "sphere")
	assert.Equal(t, color.RGBA{11, 59, 73, 194}, sld.Material.Color)
	assert.Equal(t, float32(2), sld.Material.Tiling.Repeat.X)
	assert.Nil(t, h.Controls)
}

func TestBuildingFallbackModel(t *testing.T) {
	f := newFixture()
	h, sc := f.start(t, "building")
	defer h.Dispose()
	assert.Equal(t, 0, f.sched.Live(), "building has no frame loop")
	gp, ok := sc.ChildByName("building").(*xyz.Group)
	require.True(t, ok)
	assert.Len(t, gp.Children, 4)
	assert.Equal(t, float32(-2), gp.Pose.Pos.Y)
	assert.Equal(t, float32(-2), solid(t, sc, "floor").Pose.Pos.Y)
	assertSky(t, sc, true)
}

// assertSky checks the sky sphere, and whether its texture is procedural.
func assertSky(t *testing.T, sc *xyz.Scene, procedural bool) {
	t.Helper()
	sky := solid(t, sc, "sky")
	assert.False(t, sky.Material.CullBack)
	assert.True(t, sky.Material.CullFront)
	assert.Equal(t, xyz.TextureName("sky"), sky.Material.TextureName)
	tx, ok := sc.Textures.ValueByKeyTry("sky")
	require.True(t, ok)
	if procedural {
		assert.Equal(t, assets.Sky(512).Pix, tx.(*xyz.TextureBase).RGBA.Pix)
	} else {
		assert.Equal(t, image.Rect(0, 0, 8, 4), tx.(*xyz.TextureBase).RGBA.Bounds())
	}
}

func TestSkyFromAssets(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "img", "NightSkyHDRI008_4K-TONEMAPPED.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0o755))
	fl, err := os.Create(fp)
	require.NoError(t, err)
	require.NoError(t, png.Encode(fl, image.NewRGBA(image.Rect(0, 0, 8, 4))))
	require.NoError(t, fl.Close())

	ld, err := assets.NewDirLoader(dir)
	require.NoError(t, err)
	f := newFixture()
	env := f.env("solar")
	env.Assets = ld
	h, err := Solar(context.Background(), env)
	require.NoError(t, err)
	defer h.Dispose()
	assertSky(t, h.Content.(*xyz.Scene), false)
}

func TestSolarMotion(t *testing.T) {
	f := newFixture()
	h, sc := f.start(t, "solar")
	defer h.Dispose()
	earth := solid(t, sc, "earth")
	assert.InDelta(t, 62, earth.Pose.Pos.X, 1e-4)
	f.step(60)
	assert.Less(t, earth.Pose.Pos.X, float32(62))
	assert.Less(t, earth.Pose.Pos.Z, float32(0))
	assertSky(t, sc, true)
	ship, ok := sc.ChildByName("ship").(*xyz.Group)
	require.True(t, ok)
	assert.Len(t, ship.Children, 4)
	assert.Equal(t, float32(10), ship.Pose.Pos.X)
	assert.Equal(t, float32(170), ship.Pose.Pos.Z)

	ring := solid(t, sc, "saturn ring")
	assert.False(t, ring.Material.CullBack)
	assert.Equal(t, solid(t, sc, "saturn").Pose.Pos, ring.Pose.Pos)
}

func TestShaderPointer(t *testing.T) {
	f := newFixture()
	h, sc := f.start(t, "shader")
	defer h.Dispose()
	assert.True(t, sc.Wireframe)
	w, ok := h.Controls.(*Wave)
	require.True(t, ok)
	_, moved := w.Pointer()
	assert.False(t, moved)

	f.surf.PointerMove(image.Pt(440, 300))
	f.step(1)
	assert.InDelta(t, 2.047, w.Uniforms.Mouse.X, 1e-2)
	assert.InDelta(t, 0, w.Uniforms.Mouse.Y, 1e-6)
	assert.InDelta(t, 1.0/frame.DefaultFPS, w.Uniforms.Time, 1e-4)

	// outside of the plane keeps the last position
	f.surf.PointerMove(image.Pt(790, 10))
	f.step(1)
	assert.InDelta(t, 2.047, w.Uniforms.Mouse.X, 1e-2)
}

func TestRingMesh(t *testing.T) {
	ms := RingMesh("ring", 1, 2, 8)
	nv, ni, _ := ms.MeshSize()
	assert.Equal(t, 18, nv)
	assert.Equal(t, 48, ni)
	for k := range nv {
		x, y, z := ms.Vertex[3*k], ms.Vertex[3*k+1], ms.Vertex[3*k+2]
		assert.Zero(t, y)
		r := x*x + z*z
		if k%2 == 0 {
			assert.InDelta(t, 1, r, 1e-4)
		} else {
			assert.InDelta(t, 4, r, 1e-4)
		}
	}
}
