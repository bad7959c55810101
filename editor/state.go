// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import "strconv"

// State is the state of an [Editor].
type State int32

const (
	// Idle has no selection.
	Idle State = iota

	// Selected has a selected node and no caret. Only the arrow keys,
	// Backspace, Enter and Escape are accepted, and each leaves this state.
	Selected

	// Editing has a caret as a child of the selected node.
	Editing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Selected:
		return "Selected"
	case Editing:
		return "Editing"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}
