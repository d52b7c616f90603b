// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

package scanner

import (
	"strconv"

	"codeberg.org/readeck/htmltree/pkg/element"
)

// Type is the type of a [Token].
type Type uint8

const (
	// UnknownToken is a token the tree builder ignores, like an
	// unterminated tag at the end of the input.
	UnknownToken Type = iota
	// OpeningTag looks like <div>.
	OpeningTag
	// ClosingTag looks like </div>.
	ClosingTag
	// VoidTag is an opening tag of a void element, like <br> or <img/>.
	VoidTag
	// Comment is anything starting with "<!", including doctypes.
	Comment
	// Text is a non blank run of characters between tags.
	Text
)

var typeNames = [...]string{
	UnknownToken: "Unknown",
	OpeningTag:   "OpeningTag",
	ClosingTag:   "ClosingTag",
	VoidTag:      "VoidTag",
	Comment:      "Comment",
	Text:         "Text",
}

// String implements [fmt.Stringer].
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Token is a classified lexical unit of the input.
// Tokens are read-only once returned by [Scan]; their [Attributes]
// must not be modified.
type Token struct {
	Type Type
	// Raw is the token's source text, "<" and ">" included for tags.
	Raw string
	// Kind is the element resolved from the tag name. It's only
	// meaningful for tags and comments, see [Token.Element].
	Kind element.Kind
	Attr Attributes
}

// Element returns the token's element kind. The boolean is false
// for text and unknown tokens.
func (t Token) Element() (element.Kind, bool) {
	switch t.Type {
	case OpeningTag, ClosingTag, VoidTag, Comment:
		return t.Kind, true
	}
	return "", false
}

// String returns a short description of the token, for debugging.
func (t Token) String() string {
	return t.Type.String() + " " + strconv.Quote(t.Raw)
}
