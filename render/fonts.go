// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-fonts/latin-modern/lmmath"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"cogentcore.org/core/base/errors"
)

// ErrUnknownFont is returned for a font name that is not one of [FontNames].
var ErrUnknownFont = errors.New("unknown font")

// FontBasic is the name of the fixed 7x13 bitmap face, which has no size.
const FontBasic = "basic"

var (
	fontData = map[string][]byte{
		"lmroman10":       lmroman10regular.TTF,
		"lmroman10italic": lmroman10italic.TTF,
		"lmmath":          lmmath.TTF,
	}

	fontsMu sync.Mutex
	parsed  = map[string]*opentype.Font{}
)

// FontNames returns the names accepted by [NewFace], sorted.
func FontNames() []string {
	names := []string{FontBasic}
	for nm := range fontData {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

// NewFace returns a face of the named font at the given size in points,
// at 72 dots per inch so that a point is a dot. The Latin Modern fonts
// are the ones TeX typesets with; [FontBasic] and the empty name give
// [basicfont.Face7x13].
func NewFace(name string, size float64) (font.Face, error) {
	if name == "" || name == FontBasic {
		return basicfont.Face7x13, nil
	}
	f, err := parseFont(name)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
}

// parseFont returns the parsed font of the given name, parsing it once.
func parseFont(name string) (*opentype.Font, error) {
	fontsMu.Lock()
	defer fontsMu.Unlock()
	if f, ok := parsed[name]; ok {
		return f, nil
	}
	data, ok := fontData[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, want one of %v", ErrUnknownFont, name, FontNames())
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", name, err)
	}
	parsed[name] = f
	return f, nil
}
