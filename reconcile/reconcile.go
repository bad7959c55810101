// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reconcile binds the leaves of an expression tree to the
// geometry of its rendered structure.
package reconcile

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/kitsne241/drift/expr"
	"github.com/kitsne241/drift/render"
)

// ErrStructuralMismatch is matched by every [MismatchError].
var ErrStructuralMismatch = errors.New("structural mismatch")

// MismatchError reports a tree node whose rendered counterpart has the
// wrong kind, the wrong number of children, or different text.
type MismatchError struct {

	// Path is the path of the tree node, as given by [expr.Node.Path].
	Path string

	// Node is the tree node.
	Node *expr.Node

	// Structure is the rendered node it was matched against.
	Structure *render.Structure

	// Reason describes the mismatch.
	Reason string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("structural mismatch at %s (%v): %s", e.Path, e.Node, e.Reason)
}

func (e *MismatchError) Unwrap() error {
	return ErrStructuralMismatch
}

// binding is a measured box waiting to be bound to a leaf.
type binding struct {
	leaf *expr.Node
	box  math32.Box2
}

// Reconcile walks the given tree and rendered structure in lockstep and
// binds the box of every [render.Atomic] node to the corresponding
// [expr.Leaf]. Sum and Product nodes pair with [render.Flat] nodes,
// Fraction nodes with [render.TwoSlot] nodes, and children are compared
// against [expr.Node.Linearize]. A Sum or Product that linearizes to a
// single unit is not rendered as a run of its own, so its unit is
// matched against the same rendered node.
//
// Nothing is bound unless the whole walk succeeds. On failure all geometry
// of the tree is cleared and a [*MismatchError] is returned.
func Reconcile(root *expr.Node, s *render.Structure) error {
	var bindings []binding
	if err := match(root, s, &bindings); err != nil {
		root.ClearGeometry()
		return err
	}
	root.ClearGeometry()
	for _, b := range bindings {
		b.leaf.SetMeasuredBox(b.box)
	}
	slog.Debug("reconciled", "leaves", len(bindings))
	return nil
}

func mismatch(n *expr.Node, s *render.Structure, format string, args ...any) error {
	return &MismatchError{Path: n.Path(), Node: n, Structure: s, Reason: fmt.Sprintf(format, args...)}
}

func match(n *expr.Node, s *render.Structure, bindings *[]binding) error {
	if s == nil {
		return mismatch(n, s, "no rendered node")
	}
	var want render.Kind
	switch n.Kind {
	case expr.Leaf:
		if s.Kind != render.Atomic {
			return mismatch(n, s, "leaf rendered as %v", s.Kind)
		}
		if s.Text != n.Symbol {
			return mismatch(n, s, "text %q rendered as %q", n.Symbol, s.Text)
		}
		*bindings = append(*bindings, binding{leaf: n, box: s.Box})
		return nil
	case expr.Fraction:
		want = render.TwoSlot
	default:
		want = render.Flat
	}
	kids := n.Linearize()
	if n.Kind.IsContainer() && len(kids) == 1 {
		return match(kids[0], s, bindings)
	}
	if s.Kind != want {
		return mismatch(n, s, "%v rendered as %v instead of %v", n.Kind, s.Kind, want)
	}
	if len(kids) != len(s.Children) {
		return mismatch(n, s, "%d linearized children rendered as %d", len(kids), len(s.Children))
	}
	for i, kid := range kids {
		if err := match(kid, s.Children[i], bindings); err != nil {
			return err
		}
	}
	return nil
}

// Render renders the code of the given tree with the given renderer and
// reconciles the result with the tree.
func Render(root *expr.Node, r render.Renderer) (*render.Structure, error) {
	s, err := r.Render(root.Code())
	if err != nil {
		root.ClearGeometry()
		return nil, err
	}
	return s, Reconcile(root, s)
}
