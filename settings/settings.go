// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides durable storage of user selections,
// such as the last lesson that was chosen.
package settings

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Store is durable storage for the last selected lesson.
type Store interface {

	// LastExample returns the id of the last selected lesson,
	// or "" if none has been stored.
	LastExample() (string, error)

	// SetLastExample stores the id of the last selected lesson.
	SetLastExample(id string) error
}

// Settings is the data saved by a [FileStore].
type Settings struct {

	// LastExample is the id of the last successfully started lesson.
	LastExample string

	// Updated is when the settings were last saved.
	Updated time.Time
}

// FileStore is a [Store] that saves [Settings] to a TOML file.
// Writes are atomic: a temporary file is written and then renamed.
type FileStore struct {

	// Filename is the absolute path of the settings file.
	Filename string

	mu sync.Mutex
}

// DefaultFilename is the default settings file, relative to the
// user configuration directory.
const DefaultFilename = "CogentLessons/settings.toml"

// NewFileStore returns a new [FileStore] for the given file name.
// A leading ~ is expanded to the user home directory. If the
// file name is empty, [DefaultFilename] in [os.UserConfigDir] is used.
func NewFileStore(filename string) (*FileStore, error) {
	if filename == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		filename = filepath.Join(dir, DefaultFilename)
	}
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	return &FileStore{Filename: fn}, nil
}

// Open reads the settings from the file. A missing file
// results in zero settings and no error.
func (fst *FileStore) Open() (*Settings, error) {
	fst.mu.Lock()
	defer fst.mu.Unlock()
	return fst.open()
}

func (fst *FileStore) open() (*Settings, error) {
	st := &Settings{}
	b, err := os.ReadFile(fst.Filename)
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.NewDecoder(bytes.NewReader(b)).Decode(st); err != nil {
		return nil, err
	}
	return st, nil
}

// Save writes the given settings to the file, creating
// its directory if necessary.
func (fst *FileStore) Save(st *Settings) error {
	fst.mu.Lock()
	defer fst.mu.Unlock()
	return fst.save(st)
}

func (fst *FileStore) save(st *Settings) error {
	b, err := toml.Marshal(st)
	if err != nil {
		return err
	}
	dir := filepath.Dir(fst.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.toml")
	if err != nil {
		return err
	}
	_, err = tmp.Write(b)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), fst.Filename)
}

func (fst *FileStore) LastExample() (string, error) {
	st, err := fst.Open()
	if err != nil {
		return "", err
	}
	return st.LastExample, nil
}

func (fst *FileStore) SetLastExample(id string) error {
	fst.mu.Lock()
	defer fst.mu.Unlock()
	st, err := fst.open()
	if err != nil {
		// a corrupt file is replaced rather than blocking all future saves
		errors.Log(err)
		st = &Settings{}
	}
	st.LastExample = id
	st.Updated = time.Now()
	return fst.save(st)
}

// MemStore is an in-memory [Store], used for testing.
type MemStore struct {
	mu   sync.Mutex
	last string

	// Err, if set, is returned from all methods.
	Err error
}

func (ms *MemStore) LastExample() (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.Err != nil {
		return "", ms.Err
	}
	return ms.last, nil
}

func (ms *MemStore) SetLastExample(id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.Err != nil {
		return ms.Err
	}
	ms.last = id
	return nil
}
