// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package htmlconv converts document trees from and to [html.Node] trees.
//
// This gives access to the tools working on golang.org/x/net/html
// nodes, like CSS selectors and XPath expressions, while returning
// results from the original tree.
package htmlconv

import (
	"strings"

	"golang.org/x/net/html"

	"codeberg.org/readeck/htmltree/pkg/dom"
	"codeberg.org/readeck/htmltree/pkg/element"
	"codeberg.org/readeck/htmltree/pkg/scanner"
)

// Document is the [html.Node] rendition of a [dom.Node] tree.
type Document struct {
	Root  *html.Node
	nodes map[*html.Node]*dom.Node
}

// ToHTML converts a tree to an [html.Node] tree. The returned
// [Document] keeps track of the original nodes.
func ToHTML(root *dom.Node) *Document {
	d := &Document{nodes: map[*html.Node]*dom.Node{}}
	d.Root = d.convert(root)
	return d
}

// Node returns the [dom.Node] an [html.Node] was created from.
func (d *Document) Node(n *html.Node) *dom.Node {
	return d.nodes[n]
}

// Nodes returns the [dom.Node] list matching a list of [html.Node].
// Nodes that are not part of the document are skipped.
func (d *Document) Nodes(list []*html.Node) []*dom.Node {
	res := make([]*dom.Node, 0, len(list))
	for _, n := range list {
		if x, ok := d.nodes[n]; ok {
			res = append(res, x)
		}
	}
	return res
}

func (d *Document) convert(n *dom.Node) *html.Node {
	var res *html.Node

	switch n.Type {
	case dom.DocumentNode:
		res = &html.Node{Type: html.DocumentNode}
	case dom.ElementNode:
		res = &html.Node{
			Type:     html.ElementNode,
			Data:     n.Kind.TagName(),
			DataAtom: n.Kind.Atom(),
			Attr:     make([]html.Attribute, 0, n.Attr.Len()),
		}
		for k, v := range n.Attr.All() {
			res.Attr = append(res.Attr, html.Attribute{Key: k, Val: v})
		}
	case dom.TextNode:
		res = &html.Node{Type: html.TextNode, Data: n.Data}
	case dom.CommentNode:
		res = convertComment(n)
	}

	d.nodes[res] = n
	for _, c := range n.Children() {
		res.AppendChild(d.convert(c))
	}
	return res
}

// convertComment returns a comment or doctype node. The comment's
// delimiters are removed.
func convertComment(n *dom.Node) *html.Node {
	raw := n.Data
	if strings.HasPrefix(raw, "<!--") && strings.HasSuffix(raw, "-->") && len(raw) >= 7 {
		return &html.Node{Type: html.CommentNode, Data: raw[4 : len(raw)-3]}
	}

	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "<!"), ">")
	if name, rest, _ := strings.Cut(raw, " "); strings.EqualFold(name, "doctype") {
		return &html.Node{Type: html.DoctypeNode, Data: strings.TrimSpace(rest)}
	}
	return &html.Node{Type: html.CommentNode, Data: raw}
}

// FromHTML converts an [html.Node] tree. The result is a document when
// n is a document node, otherwise a detached node. Doctypes become
// comments, other node types are skipped.
func FromHTML(n *html.Node) *dom.Node {
	var res *dom.Node

	switch n.Type {
	case html.DocumentNode:
		res = dom.NewDocument()
	case html.ElementNode:
		var attr scanner.Attributes
		for _, a := range n.Attr {
			attr.Set(a.Key, a.Val)
		}
		res = dom.NewElement(element.FromTagName(n.Data), attr)
	case html.TextNode:
		res = dom.NewText(n.Data)
	case html.CommentNode:
		res = dom.NewComment("<!--" + n.Data + "-->")
	case html.DoctypeNode:
		res = dom.NewComment("<!DOCTYPE " + n.Data + ">")
	default:
		return nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if x := FromHTML(c); x != nil {
			res.AppendChild(x)
		}
	}
	return res
}
