// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitsne241/drift/expr"
	"github.com/kitsne241/drift/reconcile"
	"github.com/kitsne241/drift/render"
)

// dviPre is the opcode that starts every DVI document.
const dviPre = 247

func TestDVI(t *testing.T) {
	b, err := DVI(expr.Sample().Code())
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, byte(dviPre), b[0])
}

func TestChecked(t *testing.T) {
	root := expr.Sample()
	s, err := reconcile.Render(root, Checked(render.NewLayout()))
	require.NoError(t, err)
	assert.Equal(t, render.Flat, s.Kind)
	_, err = root.ComputeBounds()
	assert.NoError(t, err)
}

func TestError(t *testing.T) {
	err := &Error{Code: "{x}", Err: assert.AnError}
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), `"{x}"`)
}
