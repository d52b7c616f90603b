// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

package dom

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes an indented, one node per line, description of a tree.
func Dump(w io.Writer, n *Node) error {
	buf := bufio.NewWriter(w)
	dump(buf, n, 0)
	return buf.Flush()
}

func dump(w *bufio.Writer, n *Node, depth int) {
	_, _ = w.WriteString(strings.Repeat("  ", depth))
	switch n.Type {
	case DocumentNode:
		_, _ = w.WriteString("Document")
	case ElementNode:
		_, _ = w.WriteString("Element: " + n.Kind.String())
		for k, v := range n.Attr.All() {
			if n.Attr.IsBoolean(k) {
				_, _ = fmt.Fprintf(w, " %s", k)
			} else {
				_, _ = fmt.Fprintf(w, " %s=%s", k, strconv.Quote(v))
			}
		}
	case TextNode:
		_, _ = w.WriteString("Text: " + strconv.Quote(n.Data))
	case CommentNode:
		_, _ = w.WriteString("Comment: " + strconv.Quote(n.Data))
	}
	_ = w.WriteByte('\n')

	for _, c := range n.children {
		dump(w, c, depth+1)
	}
}

type jsonNode struct {
	Type     string            `json:"type"`
	Tag      string            `json:"tag,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Data     string            `json:"data,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// MarshalJSON implements [json.Marshaler]. It exports the node
// and its descendants.
func (n *Node) MarshalJSON() ([]byte, error) {
	v := jsonNode{
		Type:     strings.ToLower(n.Type.String()),
		Data:     n.Data,
		Children: n.children,
	}
	if n.Type == ElementNode {
		v.Tag = n.Kind.TagName()
	}
	if n.Attr.Len() > 0 {
		v.Attrs = make(map[string]string, n.Attr.Len())
		for k, val := range n.Attr.All() {
			v.Attrs[k] = val
		}
	}
	return json.Marshal(v)
}
