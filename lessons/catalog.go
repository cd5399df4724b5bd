// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	_ "embed"
	"fmt"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/lessons/assets"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Lesson is the description of one lesson in the catalog.
type Lesson struct {

	// ID is the unique id of the lesson, used in the chooser and in settings.
	ID string `yaml:"id"`

	// Title is the human readable name of the lesson.
	Title string `yaml:"title"`

	// Description is a one sentence description of the lesson.
	Description string `yaml:"description"`

	// Controls is whether the lesson has orbit camera controls.
	Controls bool `yaml:"controls"`

	// Models are the paths of optional OBJ models in the asset
	// directory, by name.
	Models map[string]string `yaml:"models"`

	// Textures are the textures the lesson loads.
	Textures []Texture `yaml:"textures"`
}

// Texture is a texture loaded by a lesson.
type Texture struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"path"`
	FlipY bool   `yaml:"flipY"`
}

// Requests returns the asset requests for the textures of the lesson.
func (ls *Lesson) Requests() []assets.Request {
	rqs := make([]assets.Request, len(ls.Textures))
	for i, tx := range ls.Textures {
		rqs[i] = assets.Request{Name: tx.Name, Path: tx.Path, FlipY: tx.FlipY}
	}
	return rqs
}

type catalogFile struct {
	Lessons []Lesson `yaml:"lessons"`
}

// ParseCatalog parses a catalog in YAML format.
func ParseCatalog(b []byte) ([]Lesson, error) {
	cf := &catalogFile{}
	if err := yaml.Unmarshal(b, cf); err != nil {
		return nil, fmt.Errorf("lessons: parsing catalog: %w", err)
	}
	seen := map[string]bool{}
	for _, ls := range cf.Lessons {
		if ls.ID == "" {
			return nil, fmt.Errorf("lessons: catalog entry %q has no id", ls.Title)
		}
		if seen[ls.ID] {
			return nil, fmt.Errorf("lessons: duplicate catalog id %q", ls.ID)
		}
		seen[ls.ID] = true
	}
	return cf.Lessons, nil
}

var catalog = sync.OnceValues(func() ([]Lesson, error) {
	return ParseCatalog(catalogYAML)
})

// Catalog returns the embedded catalog of lessons, in display order.
func Catalog() []Lesson {
	return errors.Must1(catalog())
}

// Lookup returns the catalog entry with the given id.
func Lookup(id string) (Lesson, bool) {
	for _, ls := range Catalog() {
		if ls.ID == id {
			return ls, true
		}
	}
	return Lesson{}, false
}
