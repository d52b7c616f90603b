// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

package dom

import (
	"strings"

	"codeberg.org/readeck/htmltree/pkg/element"
)

// ElementByID returns the first element, in document order, whose
// id attribute is id. It returns nil when there's none.
func (n *Node) ElementByID(id string) *Node {
	for x := range n.Elements() {
		if v, ok := x.Attr.Get("id"); ok && v == id {
			return x
		}
	}
	return nil
}

// ElementsByClass returns all the elements, in document order,
// having class in their class attribute.
func (n *Node) ElementsByClass(class string) []*Node {
	var res []*Node
	for x := range n.Elements() {
		if hasClass(x, class) {
			res = append(res, x)
		}
	}
	return res
}

// ElementsByTag returns all the elements of a given kind,
// in document order.
func (n *Node) ElementsByTag(kind element.Kind) []*Node {
	var res []*Node
	for x := range n.Elements() {
		if x.Kind == kind {
			res = append(res, x)
		}
	}
	return res
}

// HasClass returns true when the element has class in its class attribute.
func (n *Node) HasClass(class string) bool {
	return n.Type == ElementNode && hasClass(n, class)
}

func hasClass(n *Node, class string) bool {
	for c := range strings.FieldsSeq(n.Attr.Value("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of the node and
// its descendants. Comments are not included.
func (n *Node) TextContent() string {
	var b strings.Builder
	for x := range n.All() {
		if x.Type == TextNode {
			b.WriteString(x.Data)
		}
	}
	return b.String()
}
