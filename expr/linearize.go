// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "slices"

// Linearize returns the children of this node as they appear in the
// flattened rendered layout. For a [Sum] or [Product], children of the
// same kind are expanded in place recursively, so Sum[a, Sum[b, c]] gives
// [a, b, c]; children of a different kind stay single units. For a
// [Fraction] or [Leaf] it returns the direct children.
//
// Renderers only produce a flat run of siblings per precedence tier, so
// anything comparing the tree to rendered layout must linearize first.
func (n *Node) Linearize() []*Node {
	if !n.Kind.IsContainer() {
		return slices.Clone(n.children)
	}
	lin := make([]*Node, 0, len(n.children))
	return n.appendLinear(lin, n.Kind)
}

func (n *Node) appendLinear(lin []*Node, k Kind) []*Node {
	for _, kid := range n.children {
		if kid.Kind == k {
			lin = kid.appendLinear(lin, k)
			continue
		}
		lin = append(lin, kid)
	}
	return lin
}

// LinearizeUnits applies the linearization rule of a container of the
// given kind to an arbitrary run of units. Applying it to the result of
// [Node.Linearize] returns the same run.
func LinearizeUnits(k Kind, units []*Node) []*Node {
	if !k.IsContainer() {
		return slices.Clone(units)
	}
	lin := make([]*Node, 0, len(units))
	for _, u := range units {
		if u.Kind == k {
			lin = u.appendLinear(lin, k)
			continue
		}
		lin = append(lin, u)
	}
	return lin
}
