// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/core/math32"
)

func TestLayoutRow(t *testing.T) {
	s, err := NewLayout().Render("{2} {a} + {3}")
	require.NoError(t, err)
	atoms := s.Atoms()
	require.Len(t, atoms, 4)
	want := []math32.Box2{
		math32.B2(0, 0, 7, 13),
		math32.B2(11, 0, 18, 13),
		math32.B2(22, 0, 29, 13),
		math32.B2(33, 0, 40, 13),
	}
	for i, a := range atoms {
		assert.Equal(t, want[i], a.Box, a.Text)
	}
	assert.Equal(t, math32.B2(0, 0, 40, 13), s.Box)
	assert.Equal(t, math32.B2(0, 0, 18, 13), s.Children[0].Box)
}

func TestLayoutFraction(t *testing.T) {
	s, err := NewLayout().Render(`\frac{2}{5}`)
	require.NoError(t, err)
	require.Equal(t, TwoSlot, s.Kind)
	assert.Equal(t, math32.B2(0, 0, 11, 30), s.Box)
	assert.Equal(t, math32.B2(2, 0, 9, 13), s.Children[0].Box)
	assert.Equal(t, math32.B2(2, 17, 9, 30), s.Children[1].Box)
}

func TestLayoutOrigin(t *testing.T) {
	l := NewLayout()
	l.Origin = math32.Vec2(100, 50)
	l.CaretWidth = 3
	s, err := l.Render("{}")
	require.NoError(t, err)
	assert.Equal(t, math32.B2(100, 50, 103, 63), s.Box)
}

func TestLayoutContainment(t *testing.T) {
	s, err := NewLayout().Render(`\frac{\frac{{x} + {1}}{{y} {z}}}{{2}} - {q}`)
	require.NoError(t, err)
	var check func(s *Structure)
	check = func(s *Structure) {
		for _, kid := range s.Children {
			assert.True(t, s.Box.ContainsBox(kid.Box), "%v in %v", kid.Box, s.Box)
			check(kid)
		}
	}
	check(s)

	// slots are stacked
	frac := s.Children[0]
	require.Equal(t, TwoSlot, frac.Kind)
	assert.Less(t, frac.Children[0].Box.Max.Y, frac.Children[1].Box.Min.Y)
}

func TestLayoutSyntaxError(t *testing.T) {
	_, err := NewLayout().Render("{")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestStructureString(t *testing.T) {
	s, err := NewLayout().Render(`\frac{2}{5}`)
	require.NoError(t, err)
	want := `TwoSlot [0 0 11 30]
  Atomic "2" [2 0 9 13]
  Atomic "5" [2 17 9 30]
`
	assert.Equal(t, want, s.String())
	assert.True(t, strings.HasPrefix(NewFlat().String(), "Flat"))
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestRendererFunc(t *testing.T) {
	var r Renderer = RendererFunc(func(code string) (*Structure, error) {
		return atom(code), nil
	})
	s, err := r.Render("x")
	require.NoError(t, err)
	assert.Equal(t, "x", s.Text)
}
