// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package dom builds and queries a document tree from scanned markup.
//
// A tree is built once, by [Build] or [Parse], and is read-only
// afterwards. Every node owns its children. The link to a node's parent
// is a weak pointer: it never keeps a tree alive, and [Node.Parent]
// returns nil once nothing else holds the parent.
package dom

import (
	"iter"
	"slices"
	"weak"

	"codeberg.org/readeck/htmltree/pkg/element"
	"codeberg.org/readeck/htmltree/pkg/scanner"
)

// NodeType is the type of a [Node].
type NodeType uint8

const (
	// DocumentNode is the root of a tree.
	DocumentNode NodeType = iota
	// ElementNode is an element, its tag is in [Node.Kind].
	ElementNode
	// TextNode holds text in [Node.Data].
	TextNode
	// CommentNode holds a comment, delimiters included, in [Node.Data].
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	}
	return "Unknown"
}

// Node is a node of a document tree.
type Node struct {
	Type NodeType
	Kind element.Kind
	Data string
	Attr scanner.Attributes

	parent   weak.Pointer[Node]
	children []*Node
}

// NewDocument returns an empty document node.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// NewElement returns a detached element node.
func NewElement(kind element.Kind, attr scanner.Attributes) *Node {
	return &Node{Type: ElementNode, Kind: kind, Attr: attr}
}

// NewText returns a detached text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// NewComment returns a detached comment node.
func NewComment(data string) *Node {
	return &Node{Type: CommentNode, Data: data}
}

// AppendChild adds c as the last child of n and returns c.
// It panics if c already has a parent or is a document.
func (n *Node) AppendChild(c *Node) *Node {
	if c.parent != (weak.Pointer[Node]{}) || c.Type == DocumentNode {
		panic("dom: AppendChild called for an attached child or a document")
	}
	c.parent = weak.Make(n)
	n.children = append(n.children, c)
	return c
}

// Parent returns the node's parent. It returns nil for a document,
// a detached node, or when the parent is not referenced anymore.
func (n *Node) Parent() *Node {
	return n.parent.Value()
}

// Children returns a copy of the node's children list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// TagName returns the tag name of an element, or an empty string.
func (n *Node) TagName() string {
	if n.Type != ElementNode {
		return ""
	}
	return n.Kind.TagName()
}

// All iterates over n and all its descendants, in document order.
// A node is visited before its children.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Elements iterates over the element nodes of [Node.All].
func (n *Node) Elements() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for x := range n.All() {
			if x.Type == ElementNode && !yield(x) {
				return
			}
		}
	}
}

// Ancestors iterates over the node's parent, its parent's parent, etc.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}
