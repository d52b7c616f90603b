// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

package dom_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	. "codeberg.org/readeck/htmltree/internal/testing" //revive:disable:dot-imports
	"codeberg.org/readeck/htmltree/pkg/dom"
	"codeberg.org/readeck/htmltree/pkg/element"
	"codeberg.org/readeck/htmltree/pkg/scanner"
)

func tagNames(nodes []*dom.Node) []string {
	res := []string{}
	for _, n := range nodes {
		res = append(res, n.TagName())
	}
	return res
}

func outerHTML(t *testing.T, n *dom.Node) string {
	t.Helper()
	require.NotNil(t, n)
	s, ok := n.OuterHTML()
	require.True(t, ok)
	return s
}

func TestPage(t *testing.T) {
	root := dom.Parse(ReadFixture(t, "page.html"))

	t.Run("dump", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, dom.Dump(buf, root))
		AssertGolden(t, "page.dump.txt", buf.String())
	})

	t.Run("outer html", func(t *testing.T) {
		html := root.ElementsByTag(element.Html)
		require.Len(t, html, 1)
		AssertGolden(t, "page.expected.html", outerHTML(t, html[0])+"\n")
	})

	t.Run("render", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, dom.Render(buf, root))
		require.Equal(t,
			"<!DOCTYPE html>"+strings.TrimSpace(ReadFixture(t, "page.expected.html")),
			buf.String(),
		)
	})

	t.Run("by id", func(t *testing.T) {
		assert := require.New(t)
		assert.Equal(`<title id="hmm">Test</title>`, outerHTML(t, root.ElementByID("hmm")))
		assert.Equal(`<p id="p1">Hi <b>there</b><br>friend</p>`, outerHTML(t, root.ElementByID("p1")))
		assert.Nil(root.ElementByID("nope"))
	})

	t.Run("by class", func(t *testing.T) {
		assert := require.New(t)
		nodes := root.ElementsByClass("bg-red")
		assert.Equal([]string{"body", "a"}, tagNames(nodes))
		assert.Equal("/home", nodes[1].Attr.Value("href"))

		assert.Len(root.ElementsByClass("nav-link"), 2)
		assert.Empty(root.ElementsByClass("nav"))
		assert.Empty(root.ElementsByClass(""))
	})

	t.Run("by tag", func(t *testing.T) {
		assert := require.New(t)
		assert.Len(root.ElementsByTag(element.A), 2)
		assert.Len(root.ElementsByTag(element.Script), 0)
		assert.Len(root.ElementsByTag(element.Br), 1)
	})

	t.Run("script content", func(t *testing.T) {
		for n := range root.All() {
			if n.Type == dom.TextNode {
				require.NotContains(t, n.Data, "var x")
			}
		}
	})

	t.Run("text content", func(t *testing.T) {
		require.Equal(t, "Hi therefriend", root.ElementByID("p1").TextContent())
	})

	t.Run("parents", func(t *testing.T) {
		assert := require.New(t)
		assert.Nil(root.Parent())

		title := root.ElementByID("hmm")
		assert.Equal(element.Head, title.Parent().Kind)

		b := root.ElementsByTag(element.B)[0]
		ancestors := slices.Collect(b.Ancestors())
		assert.Len(ancestors, 4)
		assert.Equal([]string{"p", "body", "html", ""}, tagNames(ancestors))
		assert.Same(root, ancestors[3])
	})

	t.Run("pre-order", func(t *testing.T) {
		names := []string{}
		for n := range root.Elements() {
			names = append(names, n.TagName())
		}
		require.Equal(t, []string{
			"html", "head", "title", "meta", "body", "nav", "a", "a",
			"form", "input", "button", "p", "b", "br",
		}, names)
	})
}

func TestTitleScenario(t *testing.T) {
	assert := require.New(t)
	root := dom.Parse(`<html><head><title id="hmm">Test</title><br/></head>` +
		`<body><p id="p1">Hi</p></body></html>`)

	assert.Equal(`<title id="hmm">Test</title>`, outerHTML(t, root.ElementByID("hmm")))

	br := root.ElementsByTag(element.Br)
	assert.Len(br, 1)
	assert.Equal("<br>", outerHTML(t, br[0]))
	assert.Zero(br[0].ChildCount())
	assert.Equal(element.Head, br[0].Parent().Kind)
}

func TestVoidElements(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"<br>", "<br>"},
		{"<br/>", "<br>"},
		{`<hr class="thicc">`, `<hr class="thicc">`},
		{`<img src="a.png" alt="a" width=10>`, `<img alt="a" src="a.png" width="10">`},
		{`<input type="checkbox" checked>`, `<input checked type="checkbox">`},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			root := dom.Parse(test.src)
			require.Equal(t, 1, root.ChildCount())
			s := outerHTML(t, root.FirstChild())
			require.Equal(t, test.expected, s)
			require.NotContains(t, s, "</")
		})
	}
}

func TestVoidElementHasNoChildren(t *testing.T) {
	root := dom.Parse(`<p><img src="x">text<br>more</p>`)
	p := root.FirstChild()
	require.Equal(t, 4, p.ChildCount())
	for _, c := range p.Children() {
		require.Zero(t, c.ChildCount())
	}
}

func TestClassScenario(t *testing.T) {
	assert := require.New(t)
	root := dom.Parse(`<div class='a b'>x</div><div class='a'>y</div>`)

	assert.Len(root.ElementsByClass("a"), 2)
	assert.Len(root.ElementsByClass("b"), 1)
	assert.Equal("x", root.ElementsByClass("b")[0].TextContent())
	assert.True(root.FirstChild().HasClass("b"))
	assert.False(root.LastChild().HasClass("b"))
	assert.False(root.HasClass("a"))
}

func TestElementsByTagUnknown(t *testing.T) {
	assert := require.New(t)
	root := dom.Parse(`<div><div-like><div></div></div-like></div><DIV-LIKE></DIV-LIKE>`)

	divs := root.ElementsByTag(element.Div)
	assert.Len(divs, 2)
	for _, n := range divs {
		assert.Equal(element.Div, n.Kind)
	}

	assert.Len(root.ElementsByTag(element.FromTagName("div-like")), 1)
	assert.Len(root.ElementsByTag(element.FromTagName("DIV-LIKE")), 1)
}

func TestElementByIDFirstMatch(t *testing.T) {
	root := dom.Parse(`<section><p id="x">first</p></section><p id="x">second</p>`)
	require.Equal(t, "first", root.ElementByID("x").TextContent())
}

func TestQueriesIncludeRoot(t *testing.T) {
	root := dom.Parse(`<div id="top" class="c"><span class="c"></span></div>`)
	div := root.FirstChild()
	require.Same(t, div, div.ElementByID("top"))
	require.Len(t, div.ElementsByClass("c"), 2)
	require.Len(t, div.ElementsByTag(element.Div), 1)
}

func TestOuterHTMLNotApplicable(t *testing.T) {
	root := dom.Parse(`<!-- c --><p>x</p>`)

	for _, n := range []*dom.Node{root, root.FirstChild(), root.LastChild().FirstChild()} {
		s, ok := n.OuterHTML()
		assert.False(t, ok, n.Type.String())
		assert.Empty(t, s)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{
			`<a href="/x" title='say "hi"' data-x=1 hidden>t</a>`,
			`<a data-x="1" hidden href="/x" title='say "hi"'>t</a>`,
		},
		{
			`<input value="" required>`,
			`<input required value="">`,
		},
		{
			`<My-Widget Size="2"><b>x</b></My-Widget>`,
			`<My-Widget Size="2"><b>x</b></My-Widget>`,
		},
		{
			`<UL><LI>one<LI>two</LI></LI></UL>`,
			`<ul><li>one<li>two</li></li></ul>`,
		},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			assert := require.New(t)
			src := dom.Parse(test.src).FirstChild()
			out := outerHTML(t, src)
			assert.Equal(test.expected, out)

			// Scanning the output gives the same opening tag.
			a := scanner.Scan(test.src)[0]
			b := scanner.Scan(out)[0]
			assert.Equal(a.Kind, b.Kind)
			assert.Equal(a.Attr.Keys(), b.Attr.Keys())
			for _, k := range a.Attr.Keys() {
				assert.Equal(a.Attr.Value(k), b.Attr.Value(k))
				assert.Equal(a.Attr.IsBoolean(k), b.Attr.IsBoolean(k))
			}
		})
	}
}

func TestInnerHTML(t *testing.T) {
	root := dom.Parse(`<div><p>a</p>b<!-- c --></div>`)
	require.Equal(t, `<p>a</p>b<!-- c -->`, root.FirstChild().InnerHTML())
	require.Equal(t, `<div><p>a</p>b<!-- c --></div>`, root.InnerHTML())
}

func TestMismatchedClosingTag(t *testing.T) {
	assert := require.New(t)
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	root := dom.Parse(`<div><span></div>x`, dom.WithLogger(logger))

	div := root.FirstChild()
	assert.Equal(1, root.ChildCount())
	assert.Equal(element.Div, div.Kind)
	assert.Equal(2, div.ChildCount())
	assert.Equal(element.Span, div.FirstChild().Kind)
	assert.Equal(dom.TextNode, div.LastChild().Type)
	assert.Equal("x", div.LastChild().Data)

	assert.Contains(buf.String(), "closing tag does not match open element")
	assert.Contains(buf.String(), "open=span")
}

func TestExcessClosingTag(t *testing.T) {
	assert := require.New(t)
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	root := dom.Parse(`</p><p>a</p></p>b`, dom.WithLogger(logger))
	assert.Equal(2, root.ChildCount())
	assert.Equal(element.P, root.FirstChild().Kind)
	assert.Equal("b", root.LastChild().Data)
	assert.Equal(2, strings.Count(buf.String(), "closing tag without open element"))
}

func TestUnknownTokenDropped(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	root := dom.Parse(`<p>a<b`, dom.WithLogger(logger))
	require.Equal(t, 1, root.ChildCount())
	require.Equal(t, `<p>a</p>`, outerHTML(t, root.FirstChild()))
	require.Contains(t, buf.String(), "token ignored")
}

func TestCommentAttributes(t *testing.T) {
	root := dom.Parse(`<!-- hi -->`)
	c := root.FirstChild()
	require.Equal(t, dom.CommentNode, c.Type)
	require.Equal(t, "<!-- hi -->", c.Data)
	require.True(t, c.Attr.IsBoolean("hi"))
}

func TestBuildTokens(t *testing.T) {
	tokens := []scanner.Token{
		{Type: scanner.OpeningTag, Raw: "<ul>", Kind: element.Ul},
		{Type: scanner.OpeningTag, Raw: "<li>", Kind: element.Li},
		{Type: scanner.Text, Raw: "1"},
		{Type: scanner.ClosingTag, Raw: "</li>", Kind: element.Li},
		{Type: scanner.UnknownToken, Raw: "<"},
		{Type: scanner.VoidTag, Raw: "<hr>", Kind: element.Hr},
		{Type: scanner.ClosingTag, Raw: "</ul>", Kind: element.Ul},
		{Type: scanner.ClosingTag, Raw: "</ul>", Kind: element.Ul},
	}

	root := dom.Build(tokens)
	require.Equal(t, "<ul><li>1</li><hr></ul>", root.InnerHTML())
}

func TestParentReleased(t *testing.T) {
	p := func() *dom.Node {
		root := dom.Parse(`<div><p>x</p></div>`)
		return root.ElementsByTag(element.P)[0]
	}()

	runtime.GC()
	require.Nil(t, p.Parent())
	require.Empty(t, slices.Collect(p.Ancestors()))
	require.Equal(t, "x", p.TextContent())
}

func TestAppendChildPanics(t *testing.T) {
	root := dom.NewDocument()
	c := root.AppendChild(dom.NewText("x"))
	require.Same(t, root, c.Parent())
	require.Panics(t, func() {
		dom.NewDocument().AppendChild(c)
	})
	require.Panics(t, func() {
		root.AppendChild(dom.NewDocument())
	})
}

func TestConcurrentBuild(t *testing.T) {
	b := dom.NewBuilder()
	var g errgroup.Group
	results := make([]string, 8)

	for i := range results {
		g.Go(func() error {
			src := strings.Repeat(`<div class="x"><p>a</p></div>`, i+1)
			results[i] = b.Build(scanner.Scan(src)).InnerHTML()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, s := range results {
		require.Equal(t, i+1, strings.Count(s, `<div class="x">`))
	}
}

func TestJSON(t *testing.T) {
	root := dom.Parse(`<div class="a"><p>x</p><!-- c --></div>`)
	data, err := json.Marshal(root)
	require.NoError(t, err)

	AssertJSON(t, data, `{
		"type": "document",
		"children": [{
			"type": "element",
			"tag": "div",
			"attrs": {"class": "a"},
			"children": [
				{"type": "element", "tag": "p", "children": [{"type": "text", "data": "x"}]},
				{"type": "comment", "data": "<!-- c -->", "attrs": {"c": "", "--": ""}}
			]
		}]
	}`)
}
