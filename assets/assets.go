// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads the textures and models used by lessons.
// Images are sniffed before decoding, optionally flipped and
// downscaled, and loaded concurrently. A failing asset is reported
// on its own and replaced by a procedural texture, so that it never
// prevents its siblings from loading.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// ErrNotImage is returned for files whose content is not a known image format.
var ErrNotImage = errors.New("assets: not an image")

// DefaultMaxSize is the default maximum width and height of loaded textures.
const DefaultMaxSize = 2048

// DefaultLimit is the default number of textures loaded at the same time.
const DefaultLimit = 4

// Request describes one texture to load.
type Request struct {

	// Name is the name of the texture, used as its key in the scene.
	Name string

	// Path is the slash-separated path of the file in [Loader.FS].
	Path string

	// FlipY flips the image vertically, for texture coordinates
	// that have their origin at the bottom.
	FlipY bool
}

// Texture is the result of loading one [Request].
type Texture struct {
	Name string
	Path string

	// Image is the decoded image. It is never nil: if loading
	// failed, it is a procedural fallback.
	Image *image.RGBA

	// Format is the sniffed file type extension, such as "png".
	Format string

	// Fallback is whether Image is a procedural fallback.
	Fallback bool

	// Err is the error that caused the fallback, if any.
	Err *LoadError
}

// LoadError is the error for one asset that failed to load.
type LoadError struct {
	Name string
	Path string
	Err  error
}

func (le *LoadError) Error() string {
	return fmt.Sprintf("assets: loading %q from %q: %v", le.Name, le.Path, le.Err)
}

func (le *LoadError) Unwrap() error {
	return le.Err
}

// Loader loads assets from a file system.
type Loader struct {

	// FS is the file system that assets are loaded from.
	FS fs.FS

	// Dir is the directory of FS on disk, if it has one.
	// It is used for watching and for formats that need real files.
	Dir string

	// MaxSize is the maximum width and height of loaded textures;
	// larger images are downscaled preserving their aspect ratio.
	// Zero means [DefaultMaxSize] and a negative value means no limit.
	MaxSize int

	// Limit is the number of textures loaded at the same time.
	// Zero means [DefaultLimit].
	Limit int

	// OnError, if set, is called for every asset that fails to load.
	// It may be called from multiple goroutines at the same time.
	OnError func(err *LoadError)
}

// NewLoader returns a new [Loader] for the given file system.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// NewDirLoader returns a new [Loader] for the given directory on disk.
// A leading ~ is expanded to the user home directory.
func NewDirLoader(dir string) (*Loader, error) {
	d, err := homedir.Expand(dir)
	if err != nil {
		return nil, err
	}
	d, err = filepath.Abs(d)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(d)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("assets: %q is not a directory", d)
	}
	return &Loader{FS: os.DirFS(d), Dir: d}, nil
}

// FilePath returns the on-disk path of the given asset,
// or "" if the loader has no directory or the file does not exist.
func (ld *Loader) FilePath(path string) string {
	if ld == nil || ld.Dir == "" {
		return ""
	}
	fp := filepath.Join(ld.Dir, filepath.FromSlash(path))
	if _, err := os.Stat(fp); err != nil {
		return ""
	}
	return fp
}

func (ld *Loader) maxSize() int {
	if ld.MaxSize == 0 {
		return DefaultMaxSize
	}
	return ld.MaxSize
}

// Image loads and decodes the image at the given path.
// It returns the sniffed format along with the image.
func (ld *Loader) Image(ctx context.Context, path string, flipY bool) (*image.RGBA, string, error) {
	if ld == nil || ld.FS == nil {
		return nil, "", fs.ErrNotExist
	}
	b, err := fs.ReadFile(ld.FS, path)
	if err != nil {
		return nil, "", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if !filetype.IsImage(b) {
		return nil, "", ErrNotImage
	}
	kind, _ := filetype.Match(b)
	im, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, kind.Extension, err
	}
	rgba := clone.AsRGBA(im)
	if flipY {
		rgba = transform.FlipV(rgba)
	}
	rgba = Downscale(rgba, ld.maxSize())
	return rgba, kind.Extension, nil
}

// Downscale returns the image scaled down so that neither dimension
// exceeds size, preserving the aspect ratio. Images that already fit,
// and non-positive sizes, return the image unchanged.
func Downscale(im *image.RGBA, size int) *image.RGBA {
	sz := im.Bounds().Size()
	if size <= 0 || (sz.X <= size && sz.Y <= size) {
		return im
	}
	w, h := size, size
	if sz.X > sz.Y {
		h = max(1, sz.Y*size/sz.X)
	} else {
		w = max(1, sz.X*size/sz.Y)
	}
	return transform.Resize(im, w, h, transform.Linear)
}

// LoadTextures loads the given textures concurrently and returns them in
// the same order. An asset that fails is reported through [Loader.OnError]
// and replaced by a [Fallback] texture; it does not affect the others.
// The only error returned is that of ctx. A nil loader returns fallbacks
// for every request without reporting errors.
func (ld *Loader) LoadTextures(ctx context.Context, reqs ...Request) ([]*Texture, error) {
	txs := make([]*Texture, len(reqs))
	if ld == nil {
		for i, rq := range reqs {
			txs[i] = &Texture{Name: rq.Name, Path: rq.Path, Image: Fallback(rq.Name, 256), Fallback: true}
		}
		return txs, ctx.Err()
	}
	g, gctx := errgroup.WithContext(ctx)
	limit := ld.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	g.SetLimit(limit)
	for i, rq := range reqs {
		g.Go(func() error {
			im, format, err := ld.Image(gctx, rq.Path, rq.FlipY)
			if cerr := gctx.Err(); cerr != nil {
				return cerr
			}
			tx := &Texture{Name: rq.Name, Path: rq.Path, Image: im, Format: format}
			if err != nil {
				tx.Err = &LoadError{Name: rq.Name, Path: rq.Path, Err: err}
				tx.Image = Fallback(rq.Name, 256)
				tx.Fallback = true
				slog.Warn("texture fallback", "name", rq.Name, "path", rq.Path, "error", err)
				if ld.OnError != nil {
					ld.OnError(tx.Err)
				}
			}
			txs[i] = tx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return txs, nil
}
