// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr provides the semantic expression tree of the editor,
// centered on the [Node] type. A tree is built from [Leaf] symbols and
// the [Sum], [Product] and [Fraction] containers. Nodes carry a bounding
// box that is measured for leaves by the reconciler and derived for all
// other nodes by [Node.ComputeBounds].
package expr

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/core/base/findfast"
	"cogentcore.org/core/math32"
)

// Node is one node of an expression tree.
//
// Nodes are owned exclusively by their parent. All changes of ownership
// must go through [Node.InsertChild], [Node.RemoveChild], [Node.ReplaceChild],
// [Node.ReplaceChildren] and [Node.MoveChild], which keep the parent
// back references consistent and invalidate cached geometry.
type Node struct {

	// Kind is the structural kind of the node. It should only be changed
	// through [Node.PromoteToProduct].
	Kind Kind

	// Symbol is the text token of a [Leaf]. It is empty for the caret
	// and unused for all other kinds. Use [Node.SetSymbol] to change it
	// on a node that is part of a rendered tree.
	Symbol string

	// parent is the node that owns this node, or nil for the root.
	// It is a navigational back reference only.
	parent *Node `copier:"-"`

	// children is the ordered list of owned children.
	children []*Node `copier:"-"`

	// box is the measured or derived bounding box, valid when hasBox is set.
	box math32.Box2 `copier:"-"`

	// hasBox is whether box is valid.
	hasBox bool `copier:"-"`

	// measured is whether box was bound by the reconciler
	// rather than derived from the children.
	measured bool `copier:"-"`

	// index is the last known index in the parent, used as a starting
	// point for [Node.IndexInParent]. It is not guaranteed to be accurate.
	index int `copier:"-"`
}

// NewLeaf returns a new [Leaf] node with the given symbol.
func NewLeaf(symbol string) *Node {
	return &Node{Kind: Leaf, Symbol: symbol}
}

// NewCaret returns a new caret node: a [Leaf] with an empty symbol.
func NewCaret() *Node {
	return &Node{Kind: Leaf}
}

// NewSum returns a new [Sum] node with the given children,
// which must not already have a parent.
func NewSum(kids ...*Node) *Node {
	return newContainer(Sum, kids)
}

// NewProduct returns a new [Product] node with the given children,
// which must not already have a parent.
func NewProduct(kids ...*Node) *Node {
	return newContainer(Product, kids)
}

// NewFraction returns a new [Fraction] node with the given
// numerator and denominator, which must not already have a parent.
func NewFraction(num, den *Node) *Node {
	return newContainer(Fraction, []*Node{num, den})
}

func newContainer(k Kind, kids []*Node) *Node {
	n := &Node{Kind: k}
	if err := n.ReplaceChildren(kids...); err != nil {
		panic(err)
	}
	return n
}

// String returns a short description of the node, like
// `Leaf "a"` or `Sum[3]`.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	if n.Kind == Leaf {
		return n.Kind.String() + " " + strconv.Quote(n.Symbol)
	}
	return fmt.Sprintf("%s[%d]", n.Kind, len(n.children))
}

// IsCaret returns whether this node is a caret: a [Leaf] with an empty symbol.
func (n *Node) IsCaret() bool {
	return n.Kind == Leaf && n.Symbol == ""
}

// Parents:

// Parent returns the parent of this node, or nil if it is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot returns whether this node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Root returns the root of the tree containing this node.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *Node) IndexInParent() int {
	if n.parent == nil {
		return -1
	}
	idx := indexOf(n.parent.children, n, n.index)
	n.index = idx
	return idx
}

// IsAncestorOf returns whether this node is the given node
// or one of its ancestors.
func (n *Node) IsAncestorOf(k *Node) bool {
	for ; k != nil; k = k.parent {
		if k == n {
			return true
		}
	}
	return false
}

// Children:

// HasChildren returns whether this node has any children.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// NumChildren returns the number of children this node has.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *Node) Child(i int) *Node {
	if i >= len(n.children) || i < 0 {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the list of children of this node.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Paths:

// IndexPath returns the child indexes leading from the root to this node.
// The root has an empty, non-nil path.
func (n *Node) IndexPath() []int {
	path := []int{}
	for k := n; k.parent != nil; k = k.parent {
		path = append(path, k.IndexInParent())
	}
	slices.Reverse(path)
	return path
}

// Path returns the path to this node from the tree root, using
// index-based [i] elements separated by / delimiters, like /[0]/[2].
// The root path is /.
func (n *Node) Path() string {
	path := n.IndexPath()
	if len(path) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range path {
		b.WriteString("/[")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("]")
	}
	return b.String()
}

// NodeAt returns the node at the given index path from this node,
// as returned by [Node.IndexPath], or nil if there is none.
func (n *Node) NodeAt(path []int) *Node {
	cur := n
	for _, i := range path {
		cur = cur.Child(i)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// FindPath returns the node at the given path from this node,
// in the format produced by [Node.Path]. It returns nil if no node
// is found at the given path.
func (n *Node) FindPath(path string) *Node {
	cur := n
	for _, pe := range strings.Split(strings.TrimSpace(path), "/") {
		if pe == "" {
			continue
		}
		if len(pe) < 3 || pe[0] != '[' || pe[len(pe)-1] != ']' {
			return nil
		}
		idx, err := strconv.Atoi(pe[1 : len(pe)-1])
		if err != nil {
			return nil
		}
		if idx < 0 { // from end
			idx = len(cur.children) + idx
		}
		cur = cur.Child(idx)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// indexOf returns the index of the given node in the given slice,
// or -1 if it is not found, searching outward from startIndex.
func indexOf(slice []*Node, child *Node, startIndex int) int {
	return findfast.FindFunc(slice, func(e *Node) bool { return e == child }, startIndex)
}
