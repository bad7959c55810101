// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "cogentcore.org/core/math32"

// Select returns the smallest node in the subtree rooted at this node
// whose bounding box contains both of the given points. Children are
// tested in document order and the first one containing both points is
// descended into; if none does, this node is returned. A click is the
// case where both points are equal; during a drag the selection widens
// back to an ancestor as soon as the points leave a child's box.
func (n *Node) Select(a, b math32.Vector2) (*Node, error) {
	for _, kid := range n.children {
		kb, err := kid.ComputeBounds()
		if err != nil {
			return nil, err
		}
		if kb.ContainsPoint(a) && kb.ContainsPoint(b) {
			return kid.Select(a, b)
		}
	}
	return n, nil
}
