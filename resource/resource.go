// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resource provides a composable bag of disposable resources,
// used to guarantee that everything a lesson session allocates
// (listeners, frame callbacks, GPU meshes and textures, surfaces)
// is released by a single call.
package resource

import "fmt"

// Disposer is anything that holds resources that must be explicitly released.
// GPU-backed objects are not reclaimed by the garbage collector, so
// Dispose is the only correctness mechanism for them.
type Disposer interface {
	Dispose() error
}

// DisposerFunc adapts an ordinary function to the [Disposer] interface.
type DisposerFunc func() error

func (f DisposerFunc) Dispose() error {
	return f()
}

// Kind is the category of a disposable resource, used for accounting.
type Kind int32

const (
	// Other is any resource that does not fit another category.
	Other Kind = iota

	// Listener is a registered event listener (resize, pointer, orbit).
	Listener

	// Frame is a scheduled per-frame callback.
	Frame

	// GPU is a GPU-backed resource such as a mesh, texture or material.
	GPU

	// Surface is an attached render surface and its graphics context.
	Surface

	// KindN is the number of resource kinds.
	KindN
)

var kindNames = [KindN]string{"Other", "Listener", "Frame", "GPU", "Surface"}

func (k Kind) String() string {
	if k < 0 || k >= KindN {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}
