// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ErrNoGeometry is returned when a bounding box is needed from a node
// that was not reconciled with rendered output.
var ErrNoGeometry = errors.New("no geometry")

// SetMeasuredBox binds the given measured box to this node, which
// must be a [Leaf]. Only the reconciler should call it. The derived
// boxes of all ancestors are invalidated.
func (n *Node) SetMeasuredBox(box math32.Box2) {
	n.box = box
	n.hasBox = true
	n.measured = true
	n.invalidateParents()
}

// Bounds returns the cached bounding box of this node and whether
// there is one, without computing anything.
func (n *Node) Bounds() (math32.Box2, bool) {
	return n.box, n.hasBox
}

// IsMeasured returns whether the box of this node was bound by
// the reconciler rather than derived from its children.
func (n *Node) IsMeasured() bool {
	return n.measured
}

// ComputeBounds returns the bounding box of this node. The measured box
// of a reconciled [Leaf] is returned unchanged; for every other node it is
// the smallest box enclosing the boxes of all of its children, which is
// memoized until a mutation invalidates it. A node with no children and
// no measured box returns [ErrNoGeometry].
func (n *Node) ComputeBounds() (math32.Box2, error) {
	if n.hasBox {
		return n.box, nil
	}
	if len(n.children) == 0 {
		return math32.Box2{}, fmt.Errorf("%w: %v at %s is not measured", ErrNoGeometry, n, n.Path())
	}
	bb := math32.B2Empty()
	for _, kid := range n.children {
		kb, err := kid.ComputeBounds()
		if err != nil {
			return math32.Box2{}, err
		}
		bb.ExpandByBox(kb)
	}
	n.box = bb
	n.hasBox = true
	return bb, nil
}

// ClearGeometry clears the measured and derived boxes of this node
// and all of its descendants, and the derived boxes of its ancestors.
func (n *Node) ClearGeometry() {
	n.WalkDown(func(k *Node) bool {
		k.box = math32.Box2{}
		k.hasBox = false
		k.measured = false
		return Continue
	})
	n.invalidateParents()
}

// invalidate clears the derived box of this node and its ancestors.
// A measured leaf box stays valid.
func (n *Node) invalidate() {
	if !n.measured {
		n.hasBox = false
	}
	n.invalidateParents()
}

func (n *Node) invalidateParents() {
	for p := n.parent; p != nil; p = p.parent {
		p.hasBox = false
	}
}
