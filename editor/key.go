// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kitsne241/drift/expr"
)

// Key is a logical key: either a single character or one of the
// named keys.
type Key string

const (
	ArrowLeft  Key = "ArrowLeft"
	ArrowRight Key = "ArrowRight"
	Backspace  Key = "Backspace"
	Enter      Key = "Enter"
	Escape     Key = "Escape"
)

// IsChar returns whether the key is a single character.
func (k Key) IsChar() bool {
	return k != "" && utf8.RuneCountInString(string(k)) == 1
}

// IsAlnum returns whether the key is a single letter or digit.
func (k Key) IsAlnum() bool {
	if !k.IsChar() {
		return false
	}
	r, _ := utf8.DecodeRuneInString(string(k))
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsOperator returns whether the key is one of the [expr.Operators].
func (k Key) IsOperator() bool {
	return expr.IsOperator(string(k))
}

// ParseKeys parses a comma separated list of keys, like "ArrowRight,x,+".
// Spaces around keys are ignored; empty entries are dropped.
func ParseKeys(s string) []Key {
	var keys []Key
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		keys = append(keys, Key(f))
	}
	return keys
}
