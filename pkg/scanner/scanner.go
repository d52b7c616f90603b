// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package scanner turns markup text into a sequence of tokens.
//
// The scanner is a single pass state machine with one character of
// look-ahead. It is not an HTML5 tokenizer: there is no entity decoding,
// no doctype handling, and the content of script and style elements
// is dropped.
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"codeberg.org/readeck/htmltree/pkg/element"
)

type state uint8

const (
	determiningTokenType state = iota
	capturingTag
	capturingText
	capturingRawText
)

var (
	rawTextStarts = []string{"<script", "<style"}
	rawTextEnds   = []string{"</script", "</style"}
)

// scanner holds the state of a single [Scan] call.
type scanner struct {
	src   string
	pos   int
	state state
	typ   Type
	buf   strings.Builder
	out   []Token
}

// Scan reads markup and returns its tokens in source order.
// It never fails. Unrecognized tag names resolve to unknown element
// kinds and malformed attributes are read on a best effort basis.
func Scan(markup string) []Token {
	s := &scanner{src: markup}
	return s.run()
}

func (s *scanner) run() []Token {
	for {
		c, ok := s.next()
		if !ok {
			break
		}

		switch s.state {
		case determiningTokenType:
			if c == '<' {
				s.startTag()
			} else {
				s.typ = Text
				s.state = capturingText
			}
			s.buf.WriteRune(c)
		case capturingTag:
			s.buf.WriteRune(c)
			if c == '>' {
				s.endTag()
			}
		case capturingText:
			if c == '<' {
				s.endText()
				s.startTag()
			}
			s.buf.WriteRune(c)
		case capturingRawText:
			// The closing tag is matched on "</script" or "</style" and
			// the character that follows goes away with the content.
			if hasSuffixFold(s.buf.String(), rawTextEnds) {
				s.reset()
				s.state = determiningTokenType
				continue
			}
			s.buf.WriteRune(c)
		}
	}

	s.flush()
	return s.out
}

// next consumes and returns the next rune.
func (s *scanner) next() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	return c, true
}

// peek returns the next rune without consuming it.
func (s *scanner) peek() rune {
	if s.pos >= len(s.src) {
		return utf8.RuneError
	}
	c, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return c
}

// startTag is called on "<" and decides the tag type from
// the next character.
func (s *scanner) startTag() {
	switch s.peek() {
	case '!':
		s.typ = Comment
	case '/':
		s.typ = ClosingTag
	default:
		s.typ = OpeningTag
	}
	s.state = capturingTag
}

// endTag is called on ">" and emits the tag token, unless it opens
// a raw text element.
func (s *scanner) endTag() {
	raw, typ := s.buf.String(), s.typ
	s.reset()

	if hasPrefixFold(raw, rawTextStarts) {
		s.state = capturingRawText
		return
	}

	s.out = append(s.out, newTagToken(typ, raw))
	s.state = determiningTokenType
}

// endText emits the pending text when it's not blank.
func (s *scanner) endText() {
	if text := s.buf.String(); !isBlank(text) {
		s.out = append(s.out, Token{Type: Text, Raw: text})
	}
	s.reset()
}

// flush handles whatever is left at the end of the input.
func (s *scanner) flush() {
	switch s.state {
	case capturingText:
		s.endText()
	case capturingTag:
		s.out = append(s.out, Token{Type: UnknownToken, Raw: s.buf.String()})
		s.reset()
	case capturingRawText:
		s.reset()
	}
}

func (s *scanner) reset() {
	s.buf.Reset()
	s.typ = UnknownToken
}

// newTagToken resolves the element kind and attributes of a complete tag.
func newTagToken(typ Type, raw string) Token {
	name, attrText := splitTag(raw)
	t := Token{
		Type: typ,
		Raw:  raw,
		Kind: element.FromTagName(name),
	}
	if attrText != "" {
		t.Attr = parseAttributes(attrText)
	}
	if t.Type == OpeningTag && t.Kind.IsVoid() {
		t.Type = VoidTag
	}
	return t
}

// splitTag strips the tag delimiters and returns the tag name
// and the attribute text.
func splitTag(raw string) (name string, attrs string) {
	content := strings.TrimPrefix(raw, "<")
	content = strings.TrimSuffix(content, ">")
	content = strings.TrimSpace(content)
	content = strings.TrimSuffix(content, "/")
	content = strings.TrimPrefix(content, "/")
	content = strings.TrimSpace(content)

	i := strings.IndexFunc(content, unicode.IsSpace)
	if i < 0 {
		return content, ""
	}
	return content[:i], strings.TrimSpace(content[i:])
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func hasPrefixFold(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return true
		}
	}
	return false
}

func hasSuffixFold(s string, suffixes []string) bool {
	for _, p := range suffixes {
		if len(s) >= len(p) && strings.EqualFold(s[len(s)-len(p):], p) {
			return true
		}
	}
	return false
}
