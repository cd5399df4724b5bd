// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import "strconv"

// State is the lifecycle state of a [Switcher].
type State int32

const (
	// Idle means that there is no active session.
	Idle State = iota

	// Starting means that a constructor is running.
	Starting

	// Active means that a session is running.
	Active

	// Disposing means that the active session is being torn down.
	Disposing
)

func (st State) String() string {
	switch st {
	case Idle:
		return "Idle"
	case Starting:
		return "Starting"
	case Active:
		return "Active"
	case Disposing:
		return "Disposing"
	}
	return "State(" + strconv.Itoa(int(st)) + ")"
}
