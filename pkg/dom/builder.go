// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

package dom

import (
	"log/slog"

	"codeberg.org/readeck/htmltree/pkg/scanner"
)

// Option is a [Builder] option.
type Option func(*Builder)

// WithLogger sets the builder's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// Builder creates document trees from tokens.
// A Builder only holds configuration and can be used concurrently.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder returns a new [Builder].
func NewBuilder(options ...Option) *Builder {
	b := &Builder{}
	for _, f := range options {
		f(b)
	}
	return b
}

// Build returns a new document built from tokens with default options.
func Build(tokens []scanner.Token, options ...Option) *Node {
	return NewBuilder(options...).Build(tokens)
}

// Parse scans markup and returns its document tree.
func Parse(markup string, options ...Option) *Node {
	return Build(scanner.Scan(markup), options...)
}

// nodeStack is the stack of open elements.
type nodeStack []*Node

func (s *nodeStack) push(n *Node) {
	*s = append(*s, n)
}

// pop removes and returns the top element, or nil when the stack is empty.
func (s *nodeStack) pop() *Node {
	i := len(*s) - 1
	if i < 0 {
		return nil
	}
	n := (*s)[i]
	*s = (*s)[:i]
	return n
}

// top returns the most recently opened element, or nil.
func (s nodeStack) top() *Node {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Build consumes all the tokens and returns the document node.
//
// Any closing tag closes the most recently opened element, whatever
// its name. A closing tag with no open element is ignored. Void
// elements never receive children.
func (b *Builder) Build(tokens []scanner.Token) *Node {
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	root := NewDocument()
	var open nodeStack

	for i, tok := range tokens {
		parent := open.top()
		if parent == nil {
			parent = root
		}

		switch tok.Type {
		case scanner.OpeningTag:
			open.push(parent.AppendChild(NewElement(tok.Kind, tok.Attr)))
		case scanner.VoidTag:
			parent.AppendChild(NewElement(tok.Kind, tok.Attr))
		case scanner.ClosingTag:
			n := open.pop()
			switch {
			case n == nil:
				logger.Debug("closing tag without open element",
					slog.Int("token", i),
					slog.String("tag", tok.Kind.TagName()),
				)
			case n.Kind != tok.Kind:
				logger.Debug("closing tag does not match open element",
					slog.Int("token", i),
					slog.String("open", n.Kind.TagName()),
					slog.String("tag", tok.Kind.TagName()),
				)
			}
		case scanner.Text:
			parent.AppendChild(NewText(tok.Raw))
		case scanner.Comment:
			c := parent.AppendChild(NewComment(tok.Raw))
			c.Attr = tok.Attr
		default:
			logger.Debug("token ignored",
				slog.Int("token", i),
				slog.String("type", tok.Type.String()),
				slog.String("raw", tok.Raw),
			)
		}
	}

	return root
}
