// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the rendered structure that a typesetting
// step produces from generated notation, and [Layout], a reference
// renderer that parses the notation and lays it out with font metrics.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/base/indent"
	"cogentcore.org/core/math32"
)

// Kind is the kind of a rendered [Structure] node.
type Kind int32

const (
	// Atomic is a glyph run with text and a screen box.
	Atomic Kind = iota

	// Flat is a flat run of siblings at one precedence tier.
	Flat

	// TwoSlot has exactly two children stacked vertically,
	// numerator first.
	TwoSlot
)

func (k Kind) String() string {
	switch k {
	case Atomic:
		return "Atomic"
	case Flat:
		return "Flat"
	case TwoSlot:
		return "TwoSlot"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Structure is one node of rendered output, as extracted from a
// typeset formula.
type Structure struct {

	// Kind is the kind of the node.
	Kind Kind

	// Text is the text content of an [Atomic] node.
	Text string

	// Box is the screen box of the node. It is what the reconciler
	// binds to leaves for [Atomic] nodes.
	Box math32.Box2

	// Children are the child nodes of a [Flat] or [TwoSlot] node.
	Children []*Structure
}

// NewAtomic returns a new [Atomic] node with the given text and box.
func NewAtomic(text string, box math32.Box2) *Structure {
	return &Structure{Kind: Atomic, Text: text, Box: box}
}

// NewFlat returns a new [Flat] node with the given children.
func NewFlat(kids ...*Structure) *Structure {
	return &Structure{Kind: Flat, Children: kids}
}

// NewTwoSlot returns a new [TwoSlot] node with the given slots.
func NewTwoSlot(num, den *Structure) *Structure {
	return &Structure{Kind: TwoSlot, Children: []*Structure{num, den}}
}

// Atoms returns all [Atomic] nodes under this node in document order.
func (s *Structure) Atoms() []*Structure {
	if s.Kind == Atomic {
		return []*Structure{s}
	}
	var atoms []*Structure
	for _, kid := range s.Children {
		atoms = append(atoms, kid.Atoms()...)
	}
	return atoms
}

// String returns an indented dump of the structure, one node per line.
func (s *Structure) String() string {
	var b strings.Builder
	s.write(&b, 0)
	return b.String()
}

func (s *Structure) write(b *strings.Builder, depth int) {
	b.WriteString(indent.Spaces(depth, 2))
	b.WriteString(s.Kind.String())
	if s.Kind == Atomic {
		b.WriteString(" " + strconv.Quote(s.Text))
	}
	fmt.Fprintf(b, " [%g %g %g %g]\n", s.Box.Min.X, s.Box.Min.Y, s.Box.Max.X, s.Box.Max.Y)
	for _, kid := range s.Children {
		kid.write(b, depth+1)
	}
}

// Renderer turns generated notation into rendered structure.
// It stands for the external typesetting and extraction steps.
type Renderer interface {
	Render(code string) (*Structure, error)
}

// RendererFunc is a function that implements [Renderer].
type RendererFunc func(code string) (*Structure, error)

// Render calls f(code).
func (f RendererFunc) Render(code string) (*Structure, error) {
	return f(code)
}
