// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

package dom

import (
	"bufio"
	"io"
	"strings"
)

type writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Render writes the markup of n to w. A document renders as its
// children. Text and comments are written as they were found.
func Render(w io.Writer, n *Node) error {
	if x, ok := w.(*bufio.Writer); ok {
		render(x, n)
		return x.Flush()
	}
	buf := bufio.NewWriter(w)
	render(buf, n)
	return buf.Flush()
}

// OuterHTML returns the markup of an element and its descendants.
// The boolean is false when n is not an element.
//
// Attributes are written in key order. A void element has no
// closing tag.
func (n *Node) OuterHTML() (string, bool) {
	if n.Type != ElementNode {
		return "", false
	}
	b := new(strings.Builder)
	render(b, n)
	return b.String(), true
}

// InnerHTML returns the markup of the node's children.
func (n *Node) InnerHTML() string {
	b := new(strings.Builder)
	for _, c := range n.children {
		render(b, c)
	}
	return b.String()
}

// render writes a node. Write errors are not checked here: both
// strings.Builder and bufio.Writer keep them for later.
func render(w writer, n *Node) {
	switch n.Type {
	case DocumentNode:
		for _, c := range n.children {
			render(w, c)
		}
		return
	case TextNode, CommentNode:
		_, _ = w.WriteString(n.Data)
		return
	}

	_ = w.WriteByte('<')
	_, _ = w.WriteString(n.Kind.TagName())
	for k, v := range n.Attr.All() {
		_ = w.WriteByte(' ')
		_, _ = w.WriteString(k)
		if n.Attr.IsBoolean(k) {
			continue
		}
		q := attrQuote(v)
		_ = w.WriteByte('=')
		_ = w.WriteByte(q)
		_, _ = w.WriteString(v)
		_ = w.WriteByte(q)
	}
	_ = w.WriteByte('>')

	if n.Kind.IsVoid() {
		return
	}

	for _, c := range n.children {
		render(w, c)
	}
	_, _ = w.WriteString("</")
	_, _ = w.WriteString(n.Kind.TagName())
	_ = w.WriteByte('>')
}

// attrQuote returns the quote for an attribute value. Values are
// never escaped, a value with double quotes is single quoted.
func attrQuote(v string) byte {
	if strings.ContainsRune(v, '"') && !strings.ContainsRune(v, '\'') {
		return '\''
	}
	return '"'
}
