// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ErrInvariant is returned by [Validate] for a tree that breaks
// one of the structural invariants.
var ErrInvariant = errors.New("tree invariant violated")

// Validate checks the structural invariants of the tree rooted at the
// given node: parent back references match ownership, leaves have no
// children, fractions have exactly two, and there is at most one caret.
// It returns the first violation found.
func Validate(root *Node) error {
	var err error
	seen := map[*Node]bool{}
	var caret *Node
	root.WalkDown(func(k *Node) bool {
		if err != nil {
			return Break
		}
		if seen[k] {
			err = fmt.Errorf("%w: %v is owned twice", ErrInvariant, k)
			return Break
		}
		seen[k] = true
		for _, kid := range k.children {
			if kid.parent != k {
				err = fmt.Errorf("%w: %v at %s does not point back to its parent", ErrInvariant, kid, k.Path())
				return Break
			}
		}
		switch {
		case k.Kind == Leaf && len(k.children) > 0:
			err = fmt.Errorf("%w: leaf at %s has children", ErrInvariant, k.Path())
		case k.Kind == Fraction && len(k.children) != 2:
			err = fmt.Errorf("%w: fraction at %s has %d children", ErrInvariant, k.Path(), len(k.children))
		case k.IsCaret() && caret != nil:
			err = fmt.Errorf("%w: second caret at %s (first at %s)", ErrInvariant, k.Path(), caret.Path())
		case k.IsCaret():
			caret = k
		}
		return err == nil
	})
	return err
}

// FindCaret returns the caret under the given node, or nil if there is none.
func FindCaret(n *Node) *Node {
	var caret *Node
	n.WalkDown(func(k *Node) bool {
		if caret != nil {
			return Break
		}
		if k.IsCaret() {
			caret = k
			return Break
		}
		return Continue
	})
	return caret
}
