// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

package scanner

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Attributes is a set of unique attribute keys with their string value.
// A key can be present without a value ("boolean" attribute). Its value
// is then the empty string but [Attributes.IsBoolean] tells it apart from
// an attribute explicitly set to "".
//
// The zero value is an empty set, ready to use.
type Attributes struct {
	values map[string]string
	flags  map[string]struct{}
}

// Get returns an attribute's value and whether it exists.
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Value returns an attribute's value or an empty string.
func (a Attributes) Value(key string) string {
	return a.values[key]
}

// Has returns true when the attribute exists.
func (a Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// IsBoolean returns true when the attribute exists without a value.
func (a Attributes) IsBoolean(key string) bool {
	_, ok := a.flags[key]
	return ok
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.values)
}

// Set sets an attribute's value, replacing any previous one.
func (a *Attributes) Set(key, value string) {
	if a.values == nil {
		a.values = map[string]string{}
	}
	a.values[key] = value
	delete(a.flags, key)
}

// SetBoolean adds an attribute without value.
func (a *Attributes) SetBoolean(key string) {
	a.Set(key, "")
	if a.flags == nil {
		a.flags = map[string]struct{}{}
	}
	a.flags[key] = struct{}{}
}

// Keys returns the attribute names in lexicographic order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a.values))
}

// All iterates over the attributes in lexicographic key order.
func (a Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range a.Keys() {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Clone returns a copy of the attributes that doesn't share
// any storage with a.
func (a Attributes) Clone() Attributes {
	return Attributes{
		values: maps.Clone(a.values),
		flags:  maps.Clone(a.flags),
	}
}

type attrState uint8

const (
	capturingKey attrState = iota
	capturingWrapper
	capturingValue
	whiteSpace
)

// parseAttributes reads the attribute part of a tag, left to right.
// It never fails: unbalanced quotes or stray "=" produce whatever
// the state machine ends up with.
func parseAttributes(text string) Attributes {
	var (
		attrs Attributes
		key   strings.Builder
		value strings.Builder
		quote rune
		state = capturingKey
	)

	record := func() {
		if key.Len() > 0 {
			attrs.Set(key.String(), value.String())
		}
		key.Reset()
		value.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch state {
		case capturingKey:
			switch {
			case c == '=':
				state = capturingWrapper
			case unicode.IsSpace(c):
				// A key followed by spaces is either waiting for "=" or is
				// a boolean attribute.
				j := i + 1
				for j < len(runes) && unicode.IsSpace(runes[j]) {
					j++
				}
				if j < len(runes) && runes[j] == '=' {
					i = j
					state = capturingWrapper
					continue
				}
				if key.Len() > 0 {
					attrs.SetBoolean(key.String())
				}
				key.Reset()
				value.Reset()
				i = j - 1
				state = whiteSpace
			default:
				key.WriteRune(c)
			}
		case capturingWrapper:
			switch {
			case unicode.IsSpace(c):
				continue
			case c == '\'' || c == '"':
				quote = c
			default:
				quote = 0
				value.WriteRune(c)
			}
			state = capturingValue
		case capturingValue:
			if (quote != 0 && c == quote) || (quote == 0 && unicode.IsSpace(c)) {
				record()
				state = whiteSpace
				continue
			}
			value.WriteRune(c)
		case whiteSpace:
			if !unicode.IsSpace(c) {
				key.WriteRune(c)
				state = capturingKey
			}
		}
	}

	if key.Len() > 0 {
		if state == capturingKey {
			attrs.SetBoolean(key.String())
		} else {
			record()
		}
	}

	return attrs
}
