// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/core/base/errors"
)

// ErrSyntax is returned for notation that can not be parsed.
var ErrSyntax = errors.New("notation syntax error")

// operators are the tokens that separate the sum-level
// precedence tier of a sequence.
const operators = "+-="

// Parse parses the given notation into a [Structure] without geometry.
//
// Brace groups with no whitespace or nested braces are atoms with their
// raw content as text, which is how generated code keeps leaf symbols
// atomic. Bare runs and commands other than \frac are also atoms.
// \frac takes two arguments and gives a [TwoSlot]. A sequence with
// operators is a [Flat] of operator atoms and product-tier runs between
// them, where a run of more than one unit is itself a [Flat].
// A sequence of one element collapses to that element.
func Parse(code string) (*Structure, error) {
	p := &parser{src: code}
	items, err := p.sequence(false)
	if err != nil {
		return nil, err
	}
	return tier(items), nil
}

// item is one element of a parsed sequence.
type item struct {
	s  *Structure
	op bool
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		r, sz := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += sz
	}
}

// sequence parses items up to the end of input, or up to and
// including the closing brace of the current group.
func (p *parser) sequence(inGroup bool) ([]item, error) {
	var items []item
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			if inGroup {
				return nil, p.errorf("missing }")
			}
			return items, nil
		}
		c := p.src[p.pos]
		switch {
		case c == '}':
			if !inGroup {
				return nil, p.errorf("unexpected }")
			}
			p.pos++
			return items, nil
		case strings.IndexByte(operators, c) >= 0:
			p.pos++
			items = append(items, item{s: atom(string(c)), op: true})
		default:
			s, err := p.unit()
			if err != nil {
				return nil, err
			}
			items = append(items, item{s: s})
		}
	}
}

// unit parses a group, a command or a bare run.
func (p *parser) unit() (*Structure, error) {
	switch p.src[p.pos] {
	case '{':
		return p.group()
	case '\\':
		return p.command()
	}
	start := p.pos
	for p.pos < len(p.src) {
		r, sz := utf8.DecodeRuneInString(p.src[p.pos:])
		if unicode.IsSpace(r) || strings.ContainsRune("{}\\"+operators, r) {
			break
		}
		p.pos += sz
	}
	return atom(p.src[start:p.pos]), nil
}

// group parses a brace group starting at the current position.
func (p *parser) group() (*Structure, error) {
	end := p.matching()
	if end < 0 {
		return nil, p.errorf("missing }")
	}
	raw := p.src[p.pos+1 : end]
	if !strings.ContainsAny(raw, "{} \t\n\r") {
		p.pos = end + 1
		return atom(raw), nil
	}
	p.pos++
	items, err := p.sequence(true)
	if err != nil {
		return nil, err
	}
	return tier(items), nil
}

// matching returns the index of the brace closing the group
// that opens at the current position, or -1.
func (p *parser) matching() int {
	depth := 0
	for i := p.pos; i < len(p.src); i++ {
		switch p.src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// command parses a backslash command starting at the current position.
func (p *parser) command() (*Structure, error) {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	if name == `\` {
		return nil, p.errorf("empty command")
	}
	if name != `\frac` {
		return atom(name), nil
	}
	num, err := p.argument()
	if err != nil {
		return nil, err
	}
	den, err := p.argument()
	if err != nil {
		return nil, err
	}
	return NewTwoSlot(num, den), nil
}

// argument parses one command argument: a group or a single token.
func (p *parser) argument() (*Structure, error) {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] == '}' {
		return nil, p.errorf(`missing \frac argument`)
	}
	switch p.src[p.pos] {
	case '{':
		return p.group()
	case '\\':
		return p.command()
	}
	_, sz := utf8.DecodeRuneInString(p.src[p.pos:])
	s := atom(p.src[p.pos:p.pos+sz])
	p.pos += sz
	return s, nil
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// tier groups the items of a sequence by precedence tier.
func tier(items []item) *Structure {
	hasOp := false
	for _, it := range items {
		hasOp = hasOp || it.op
	}
	if !hasOp {
		kids := make([]*Structure, len(items))
		for i, it := range items {
			kids[i] = it.s
		}
		return collapse(kids)
	}
	var out, run []*Structure
	flush := func() {
		if len(run) > 0 {
			out = append(out, collapse(run))
		}
		run = nil
	}
	for _, it := range items {
		if it.op {
			flush()
			out = append(out, it.s)
			continue
		}
		run = append(run, it.s)
	}
	flush()
	return collapse(out)
}

// collapse returns the only element of a run of one, or a [Flat].
func collapse(run []*Structure) *Structure {
	switch len(run) {
	case 0:
		return NewFlat()
	case 1:
		return run[0]
	}
	return NewFlat(run...)
}

// atom returns a new [Atomic] node with the given text and no geometry.
func atom(text string) *Structure {
	return &Structure{Kind: Atomic, Text: text}
}
