// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

package htmlconv

import (
	"errors"
	"fmt"

	"github.com/antchfx/htmlquery"
	shiori "github.com/go-shiori/dom"

	"codeberg.org/readeck/htmltree/pkg/dom"
)

// ErrInvalidExpression is returned when an XPath expression can't be compiled.
var ErrInvalidExpression = errors.New("invalid expression")

// QuerySelectorAll returns the descendants of root matching a CSS selector,
// in document order. An invalid selector matches nothing.
func QuerySelectorAll(root *dom.Node, selector string) []*dom.Node {
	d := ToHTML(root)
	return d.Nodes(shiori.QuerySelectorAll(d.Root, selector))
}

// QuerySelector returns the first descendant of root matching a CSS
// selector, or nil.
func QuerySelector(root *dom.Node, selector string) *dom.Node {
	d := ToHTML(root)
	if n := shiori.QuerySelector(d.Root, selector); n != nil {
		return d.Node(n)
	}
	return nil
}

// XPath returns the nodes matching an XPath expression evaluated
// from root.
func XPath(root *dom.Node, expr string) ([]*dom.Node, error) {
	d := ToHTML(root)
	nodes, err := htmlquery.QueryAll(d.Root, expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}
	return d.Nodes(nodes), nil
}
