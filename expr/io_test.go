// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/core/math32"
	. "github.com/kitsne241/drift/expr"
)

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			root := Sample()
			root.FindPath("/[2]").SetMeasuredBox(math32.B2(0, 0, 1, 1))
			fn := filepath.Join(dir, "sample"+ext)
			require.NoError(t, Save(root, fn))
			got, err := Open(fn)
			require.NoError(t, err)
			assert.True(t, Equal(root, got))
			assert.Equal(t, root.Code(), got.Code())
			assert.False(t, got.FindPath("/[2]").IsMeasured())
			require.NoError(t, Validate(got))
		})
	}
}

func TestOpenUnknownFormat(t *testing.T) {
	_, err := Open("sample.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, Save(Sample(), filepath.Join(t.TempDir(), "sample")), ErrUnknownFormat)
}

func TestWriteJSON(t *testing.T) {
	b, err := WriteBytes(NewFraction(NewLeaf("2"), NewCaret()), JSON)
	require.NoError(t, err)
	want := `{
  "kind": "Fraction",
  "children": [
    {
      "kind": "Leaf",
      "symbol": "2",
      "children": []
    },
    {
      "kind": "Leaf",
      "children": []
    }
  ]
}
`
	assert.Equal(t, want, string(b))
}

func TestReadAliases(t *testing.T) {
	src := `{"kind": "Frac", "children": [{"symbol": "a"}, {"kind": "Leaf", "symbol": "b"}]}`
	root, err := Read(strings.NewReader(src), JSON)
	require.NoError(t, err)
	assert.Equal(t, Fraction, root.Kind)
	assert.Equal(t, `\frac{a}{b}`, root.Code())
}

func TestReadYAML(t *testing.T) {
	src := `
kind: Sum
children:
  - kind: Product
    children:
      - symbol: "2"
      - symbol: x
  - symbol: "="
  - symbol: "4"
`
	root, err := ReadBytes([]byte(src), YAML)
	require.NoError(t, err)
	assert.Equal(t, "{2} {x} = {4}", root.Code())
}

func TestReadInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"fraction arity", `{"kind": "Fraction", "children": [{"symbol": "a"}]}`, ErrInvalidMutation},
		{"leaf children", `{"kind": "Leaf", "children": [{"symbol": "a"}]}`, ErrInvalidMutation},
		{"two carets", `{"kind": "Sum", "children": [{"symbol": ""}, {"symbol": ""}]}`, ErrInvariant},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadBytes([]byte(test.src), JSON)
			assert.ErrorIs(t, err, test.err)
		})
	}
	_, err := ReadBytes([]byte(`{"kind": "Matrix"}`), JSON)
	assert.Error(t, err)
}

func TestKindText(t *testing.T) {
	for _, k := range KindValues() {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var got Kind
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "Kind(9)", Kind(9).String())
	var k Kind
	assert.Error(t, k.SetString("Matrix"))
	assert.True(t, Sum.IsContainer())
	assert.True(t, Product.IsContainer())
	assert.False(t, Fraction.IsContainer())
	assert.False(t, Leaf.IsContainer())
}
