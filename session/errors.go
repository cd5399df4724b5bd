// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrUnknownExample is returned when a lesson id is not in the [Registry].
	ErrUnknownExample = errors.New("session: unknown example id")

	// ErrSuperseded is returned from [Switcher.SwitchTo] when a later
	// call replaced it before its session could become active.
	ErrSuperseded = errors.New("session: switch superseded by a later call")
)

// ConstructorError is returned when a [Constructor] fails.
type ConstructorError struct {
	ID  string
	Err error
}

func (ce *ConstructorError) Error() string {
	return fmt.Sprintf("session: starting %q: %v", ce.ID, ce.Err)
}

func (ce *ConstructorError) Unwrap() error {
	return ce.Err
}
