// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
)

// ErrInvalidMutation is returned when a mutation would violate a tree
// invariant. The tree is left unchanged in that case.
var ErrInvalidMutation = errors.New("invalid mutation")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidMutation, fmt.Sprintf(format, args...))
}

// canAttach returns an error if kid can not be attached under n.
func (n *Node) canAttach(kid *Node) error {
	switch {
	case kid == nil:
		return invalid("nil child")
	case kid.parent != nil:
		return invalid("%v already has a parent", kid)
	case kid.IsAncestorOf(n):
		return invalid("%v can not be added under itself", kid)
	}
	return nil
}

// Adding and Inserting Children:

// InsertChild adds the given child at the given position in the children
// list. An index of -1 appends it at the end. The kid node must not be on
// another tree; use [Node.RemoveChild] first to move a node.
func (n *Node) InsertChild(kid *Node, index int) error {
	if n.Kind == Leaf {
		return invalid("%v can not have children", n)
	}
	if n.Kind == Fraction && len(n.children) >= 2 {
		return invalid("%v already has a numerator and a denominator", n)
	}
	if index == -1 {
		index = len(n.children)
	}
	if index < 0 || index > len(n.children) {
		return invalid("index %d out of range for %v", index, n)
	}
	if err := n.canAttach(kid); err != nil {
		return err
	}
	n.children = slices.Insert(n.children, index, kid)
	kid.parent = n
	kid.index = index
	n.invalidate()
	return nil
}

// Deleting Children:

// RemoveChild removes the given child from this node. The removed node
// becomes a root and loses all of its geometry.
func (n *Node) RemoveChild(kid *Node) error {
	idx := -1
	if kid != nil {
		idx = indexOf(n.children, kid, kid.index)
	}
	if idx < 0 {
		return invalid("%v is not a child of %v", kid, n)
	}
	if n.Kind == Fraction {
		return invalid("can not remove a slot of %v", n)
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	n.detach(kid)
	n.invalidate()
	return nil
}

// detach severs the back reference of a former child.
func (n *Node) detach(kid *Node) {
	kid.parent = nil
	kid.index = 0
	kid.ClearGeometry()
}

// Replacing Children:

// ReplaceChild replaces the given child with the given new node,
// at the same index. It is the only way to swap a [Fraction] slot.
func (n *Node) ReplaceChild(old, kid *Node) error {
	idx := -1
	if old != nil {
		idx = indexOf(n.children, old, old.index)
	}
	if idx < 0 {
		return invalid("%v is not a child of %v", old, n)
	}
	if err := n.canAttach(kid); err != nil {
		return err
	}
	n.children[idx] = kid
	kid.parent = n
	kid.index = idx
	n.detach(old)
	n.invalidate()
	return nil
}

// ReplaceChildren replaces all of the children of this node with the given
// nodes. The new children may include current children of this node, which
// keeps them attached; all other current children are detached.
func (n *Node) ReplaceChildren(kids ...*Node) error {
	if n.Kind == Leaf && len(kids) > 0 {
		return invalid("%v can not have children", n)
	}
	if n.Kind == Fraction && len(kids) != 2 {
		return invalid("a fraction needs 2 children, not %d", len(kids))
	}
	for i, kid := range kids {
		if kid != nil && kid.parent == n {
			if slices.Index(kids[:i], kid) >= 0 {
				return invalid("%v is listed twice", kid)
			}
			continue
		}
		if err := n.canAttach(kid); err != nil {
			return err
		}
		if slices.Index(kids[:i], kid) >= 0 {
			return invalid("%v is listed twice", kid)
		}
	}
	for _, old := range n.children {
		if !slices.Contains(kids, old) {
			n.detach(old)
		}
	}
	n.children = slices.Clone(kids)
	for i, kid := range n.children {
		kid.parent = n
		kid.index = i
	}
	n.invalidate()
	return nil
}

// MoveChild moves the given child to the given index among its siblings.
// The index is interpreted after the child has been taken out of the list.
func (n *Node) MoveChild(kid *Node, index int) error {
	from := -1
	if kid != nil {
		from = indexOf(n.children, kid, kid.index)
	}
	if from < 0 {
		return invalid("%v is not a child of %v", kid, n)
	}
	if index < 0 || index >= len(n.children) {
		return invalid("index %d out of range for %v", index, n)
	}
	if from == index {
		return nil
	}
	n.children = slices.Delete(n.children, from, from+1)
	n.children = slices.Insert(n.children, index, kid)
	kid.index = index
	n.invalidate()
	return nil
}

// Changing Leaves:

// SetSymbol sets the symbol of a [Leaf] node, invalidating its geometry.
func (n *Node) SetSymbol(symbol string) error {
	if n.Kind != Leaf {
		return invalid("%v has no symbol", n)
	}
	n.Symbol = symbol
	n.ClearGeometry()
	n.invalidate()
	return nil
}

// PromoteToProduct turns this [Leaf] into a [Product] with the given
// children, clearing its symbol. The node keeps its place in the tree.
func (n *Node) PromoteToProduct(kids ...*Node) error {
	if n.Kind != Leaf {
		return invalid("only a leaf can be promoted, not %v", n)
	}
	for _, kid := range kids {
		if err := n.canAttach(kid); err != nil {
			return err
		}
	}
	symbol := n.Symbol
	n.Kind = Product
	n.Symbol = ""
	n.ClearGeometry()
	if err := n.ReplaceChildren(kids...); err != nil {
		n.Kind = Leaf
		n.Symbol = symbol
		return err
	}
	return nil
}
