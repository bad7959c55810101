// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"cogentcore.org/core/math32"
)

// Layout is a reference [Renderer]: it parses notation with [Parse]
// and lays the result out left to right using the metrics of a font face.
// Fractions are stacked, numerator over denominator, centered on a rule
// that sits on the math axis.
type Layout struct {

	// Face is the font face used to measure text.
	Face font.Face

	// Gap is the horizontal space between the elements of a [Flat] run.
	Gap float32

	// FracGap is the vertical space between a fraction rule
	// and each of its slots.
	FracGap float32

	// FracPad is the amount by which a fraction rule extends
	// past the wider of its slots on each side.
	FracPad float32

	// CaretWidth is the width of an atom with empty text.
	CaretWidth float32

	// Origin is the top left corner of the laid out formula.
	Origin math32.Vector2
}

// NewLayout returns a new [Layout] with default settings.
func NewLayout() *Layout {
	l := &Layout{}
	l.Defaults()
	return l
}

func (l *Layout) Defaults() {
	l.Face = basicfont.Face7x13
	l.Gap = 4
	l.FracGap = 2
	l.FracPad = 2
	l.CaretWidth = 2
}

// Render parses the given notation and returns its laid out structure.
func (l *Layout) Render(code string) (*Structure, error) {
	s, err := Parse(code)
	if err != nil {
		return nil, err
	}
	m := l.measure(s)
	l.place(s, l.Origin.X, l.Origin.Y+m.ascent)
	return s, nil
}

// metrics are the horizontal extent and the vertical extents
// around the baseline of a laid out node.
type metrics struct {
	width, ascent, descent float32
}

func (l *Layout) face() font.Face {
	if l.Face == nil {
		return basicfont.Face7x13
	}
	return l.Face
}

// lineMetrics returns the ascent and descent of a line of text.
func (l *Layout) lineMetrics() (ascent, descent float32) {
	fm := l.face().Metrics()
	return float32(fm.Ascent.Ceil()), float32(fm.Descent.Ceil())
}

// axis returns the height of the fraction rule above the baseline.
func (l *Layout) axis() float32 {
	ascent, _ := l.lineMetrics()
	return math32.Round(ascent / 3)
}

func (l *Layout) measure(s *Structure) metrics {
	ascent, descent := l.lineMetrics()
	switch s.Kind {
	case Flat:
		m := metrics{ascent: ascent, descent: descent}
		for i, kid := range s.Children {
			km := l.measure(kid)
			if i > 0 {
				m.width += l.Gap
			}
			m.width += km.width
			m.ascent = max(m.ascent, km.ascent)
			m.descent = max(m.descent, km.descent)
		}
		return m
	case TwoSlot:
		num, den := l.measure(s.Children[0]), l.measure(s.Children[1])
		axis := l.axis()
		return metrics{
			width:   max(num.width, den.width) + 2*l.FracPad,
			ascent:  axis + l.FracGap + num.ascent + num.descent,
			descent: l.FracGap + den.ascent + den.descent - axis,
		}
	}
	w := float32(font.MeasureString(l.face(), s.Text).Ceil())
	if s.Text == "" {
		w = l.CaretWidth
	}
	return metrics{width: w, ascent: ascent, descent: descent}
}

// place sets the boxes of the given node and its descendants,
// with its left edge at x and its baseline at y.
func (l *Layout) place(s *Structure, x, baseline float32) metrics {
	m := l.measure(s)
	s.Box = math32.B2(x, baseline-m.ascent, x+m.width, baseline+m.descent)
	switch s.Kind {
	case Flat:
		for _, kid := range s.Children {
			km := l.place(kid, x, baseline)
			x += km.width + l.Gap
		}
	case TwoSlot:
		rule := baseline - l.axis()
		num, den := l.measure(s.Children[0]), l.measure(s.Children[1])
		l.place(s.Children[0], x+(m.width-num.width)/2, rule-l.FracGap-num.descent)
		l.place(s.Children[1], x+(m.width-den.width)/2, rule+l.FracGap+den.ascent)
	}
	return m
}
