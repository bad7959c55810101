// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
)

// Kind is the structural kind of a [Node].
type Kind int32

const (
	// Leaf is an atomic symbol with no children.
	// A Leaf with an empty [Node.Symbol] is the caret.
	Leaf Kind = iota

	// Sum is an associative addition-level sequence.
	Sum

	// Product is an associative multiplication-level sequence.
	Product

	// Fraction has exactly two children: numerator and denominator.
	Fraction

	kindN
)

var kindNames = [...]string{
	Leaf:     "Leaf",
	Sum:      "Sum",
	Product:  "Product",
	Fraction: "Fraction",
}

// kindAliases are alternative names accepted by [Kind.SetString].
var kindAliases = map[string]Kind{
	"":     Leaf,
	"Frac": Fraction,
}

// KindValues returns all possible values for the type Kind.
func KindValues() []Kind {
	return []Kind{Leaf, Sum, Product, Fraction}
}

// String returns the string representation of this Kind value.
func (k Kind) String() string {
	if k < 0 || k >= kindN {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the Kind value from its string representation,
// and returns an error if the string is invalid.
func (k *Kind) SetString(s string) error {
	for i, nm := range kindNames {
		if nm == s {
			*k = Kind(i)
			return nil
		}
	}
	if a, ok := kindAliases[s]; ok {
		*k = a
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Kind", s)
}

// IsContainer returns whether the kind is an associative
// container, which is true for [Sum] and [Product].
func (k Kind) IsContainer() bool {
	return k == Sum || k == Product
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (k *Kind) UnmarshalText(text []byte) error {
	return k.SetString(string(text))
}
