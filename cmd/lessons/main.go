// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lessons is a viewer for a collection of 3D graphics lessons,
// with a chooser to switch between them. Only one lesson runs at a time,
// and the last one shown is restored on the next start.
package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/lessons/assets"
	"cogentcore.org/lessons/lessons"
	"cogentcore.org/lessons/resource"
	"cogentcore.org/lessons/session"
	"cogentcore.org/lessons/settings"
	"cogentcore.org/lessons/surface"
	"github.com/muesli/termenv"
)

// Config is the configuration of the lessons viewer.
type Config struct {

	// Example is the id of the lesson to start with. If it is empty,
	// the last lesson shown is restored.
	Example string `posarg:"0" required:"-"`

	// Settings is the file where the last lesson shown is saved.
	// If it is empty, a file in the user configuration directory is used.
	Settings string

	// Assets is the directory that textures and models are loaded from.
	// Lessons use procedural textures for anything missing from it.
	Assets string `default:"assets"`

	// StartTimeout is the maximum number of seconds that a lesson may
	// take to start, for example while loading textures.
	StartTimeout int `default:"30"`

	// DefaultExample is the lesson shown when none has been saved yet.
	DefaultExample string `default:"basics"`

	// List lists the available lessons and exits.
	List bool `flag:"l,list"`

	// Watch reloads the current lesson when files in the asset
	// directory change.
	Watch bool `default:"true"`
}

func main() {
	opts := cli.DefaultOptions("lessons", "A viewer for a collection of 3D graphics lessons.")
	cli.Run(opts, &Config{}, Run)
}

// Run runs the lessons viewer.
func Run(c *Config) error { //cli:cmd -root
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logx.UserLevel}))
	slog.SetDefault(logger)
	reg := session.NewRegistry()
	if err := lessons.Register(reg); err != nil {
		return err
	}
	if c.List {
		return list(os.Stdout, reg)
	}
	if c.Example != "" && !reg.Has(c.Example) {
		return fmt.Errorf("%w: %q", session.ErrUnknownExample, c.Example)
	}

	var store settings.Store
	fst, err := settings.NewFileStore(c.Settings)
	if err != nil {
		slog.Warn("settings are not saved", "err", err)
		store = &settings.MemStore{}
	} else {
		store = fst
	}
	ld, err := assets.NewDirLoader(c.Assets)
	if err != nil {
		slog.Warn("asset directory not available, using procedural textures", "dir", c.Assets, "err", err)
		ld = nil
	}

	logx.PrintlnDebug("lessons:", reg.IDs())
	b := core.NewBody("3D lessons")
	sw := xyzcore.NewScene(b)
	host := newSceneHost(sw)
	surf := surface.New(host, image.Pt(800, 600))
	host.connect(surf)

	ctr := &resource.Counter{}
	swt := session.NewSwitcher(reg, session.Env{
		Surface:   surf,
		Scheduler: host,
		Assets:    ld,
		Logger:    logger,
		Counter:   ctr,
	}, session.Options{
		DefaultID:    c.DefaultExample,
		StartTimeout: time.Duration(c.StartTimeout) * time.Second,
		Store:        store,
		Logger:       logger,
	})

	start := func(id string) {
		if id == "" {
			id = swt.LastExample()
		}
		res := swt.Queue(context.Background(), id)
		go func() {
			if err := <-res; err != nil && !errors.Is(err, session.ErrSuperseded) {
				slog.Error("starting lesson", "id", id, "err", err)
			}
		}()
	}

	var chooser *core.Chooser
	var status *core.Text
	b.AddTopBar(func(bar *core.Frame) {
		tb := core.NewToolbar(bar)
		chooser = core.NewChooser(tb)
		for _, ls := range lessons.Catalog() {
			chooser.Items = append(chooser.Items, core.ChooserItem{Value: ls.ID, Text: ls.Title, Tooltip: ls.Description})
		}
		chooser.OnChange(func(e events.Event) {
			id, _ := chooser.CurrentItem.Value.(string)
			start(id)
		})
		core.NewButton(tb).SetIcon(icons.Update).SetTooltip("Reset the camera").
			OnClick(func(e events.Event) {
				go resetCamera(swt, surf)
			})
		core.NewButton(tb).SetIcon(icons.Refresh).SetTooltip("Reload the lesson").
			OnClick(func(e events.Event) {
				go func() { errors.Log(swt.Reload(context.Background())) }()
			})
		status = core.NewText(tb)
	})

	swt.OnChange(func(st session.State, id string) {
		if host.closed.Load() || status == nil {
			return
		}
		status.AsyncLock()
		status.SetText(fmt.Sprintf("%s: %s", id, st))
		status.Update()
		if st == session.Active {
			chooser.SetCurrentValue(id)
			chooser.Update()
		}
		status.AsyncUnlock()
	})

	var watcher *assets.Watcher
	if c.Watch && ld != nil {
		watcher, err = assets.Watch(ld.Dir, assets.DefaultDebounce, func(name string) {
			slog.Info("asset changed, reloading lesson", "file", name)
			errors.Log(swt.Reload(context.Background()))
		})
		errors.Log(err)
	}

	b.OnShow(func(e events.Event) {
		start(c.Example)
	})
	b.OnClose(func(e events.Event) {
		host.close()
		go swt.Shutdown()
	})
	b.RunMainWindow()

	host.close()
	swt.Shutdown()
	if watcher != nil {
		errors.Log(watcher.Close())
	}
	if ctr.Total() != 0 {
		slog.Warn("resources still live at exit", "live", ctr.String())
	}
	return nil
}

// resetCamera restores the default camera of the active lesson,
// if it has camera controls.
func resetCamera(swt *session.Switcher, surf *surface.Surface) {
	h := swt.Active()
	if h == nil {
		return
	}
	ctl, ok := h.Controls.(interface{ Reset() })
	if !ok {
		return
	}
	surf.Do(ctl.Reset)
}

// list prints the lessons in the given registry.
func list(w io.Writer, reg *session.Registry) error {
	out := termenv.NewOutput(w)
	for _, id := range reg.IDs() {
		ls, _ := lessons.Lookup(id)
		name := out.String(fmt.Sprintf("%-10s", id)).Bold().Foreground(out.Color("6"))
		ctl := ""
		if ls.Controls {
			ctl = out.String(" [orbit]").Faint().String()
		}
		if _, err := fmt.Fprintf(w, "%s %s%s\n", name, ls.Title, ctl); err != nil {
			return err
		}
	}
	return nil
}
