// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lessons provides the 3D lessons that can be shown in a
// session: a catalog describing them, and a [session.Constructor]
// for each one that builds its scene on a [Stage].
package lessons

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/lessons/session"
)

// Constructors are the constructors of the lessons, by catalog id.
var Constructors = map[string]session.Constructor{
	"basics":   Basics,
	"cube":     Cube,
	"sphere":   Sphere,
	"building": Building,
	"solar":    Solar,
	"shader":   Shader,
}

// Register registers all of the lessons in the catalog with the given
// registry, in catalog order. It returns an error if a catalog entry
// has no constructor.
func Register(reg *session.Registry) error {
	var errs []error
	for _, ls := range Catalog() {
		ctor, ok := Constructors[ls.ID]
		if !ok {
			errs = append(errs, errors.New("lessons: no constructor for catalog id "+ls.ID))
			continue
		}
		reg.Register(ls.ID, ctor)
	}
	return errors.Join(errs...)
}
