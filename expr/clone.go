// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/jinzhu/copier"

	"cogentcore.org/core/base/errors"
)

// Clone returns a deep copy of this node and its descendants as a new
// root. Geometry is not copied; it is always re-derived by rendering.
func (n *Node) Clone() *Node {
	c := &Node{}
	c.CopyFieldsFrom(n)
	c.children = make([]*Node, len(n.children))
	for i, kid := range n.children {
		kc := kid.Clone()
		kc.parent = c
		kc.index = i
		c.children[i] = kc
	}
	return c
}

// CopyFieldsFrom copies the exported fields of the given node into this
// node, without touching the tree structure or geometry.
func (n *Node) CopyFieldsFrom(from *Node) {
	errors.Log(copier.CopyWithOption(n, from, copier.Option{DeepCopy: true}))
}

// Equal returns whether the two trees have the same kinds, symbols
// and shape, ignoring geometry.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Symbol != b.Symbol || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
