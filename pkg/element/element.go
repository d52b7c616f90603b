// SPDX-FileCopyrightText: © 2025 Olivier Meunier <olivier@neokraft.net>
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package element is the catalog of recognized markup elements.
//
// A [Kind] is either one of the exported constants, whose value is the
// lower-case tag name, or an unknown kind carrying the tag name exactly
// as it was found in the source.
package element

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Kind is the resolved identity of an element.
type Kind string

// Document structure.
const (
	Html   Kind = "html" //nolint:revive
	Head   Kind = "head"
	Body   Kind = "body"
	Title  Kind = "title"
	Meta   Kind = "meta"
	Link   Kind = "link"
	Style  Kind = "style"
	Script Kind = "script"
	Base   Kind = "base"
)

// Sectioning.
const (
	Article Kind = "article"
	Section Kind = "section"
	Nav     Kind = "nav"
	Aside   Kind = "aside"
	Header  Kind = "header"
	Footer  Kind = "footer"
	Main    Kind = "main"
	Hgroup  Kind = "hgroup"
)

// Headings.
const (
	H1 Kind = "h1"
	H2 Kind = "h2"
	H3 Kind = "h3"
	H4 Kind = "h4"
	H5 Kind = "h5"
	H6 Kind = "h6"
)

// Text content.
const (
	P          Kind = "p"
	Hr         Kind = "hr"
	Pre        Kind = "pre"
	Blockquote Kind = "blockquote"
	Ol         Kind = "ol"
	Ul         Kind = "ul"
	Li         Kind = "li"
	Dl         Kind = "dl"
	Dt         Kind = "dt"
	Dd         Kind = "dd"
	Figure     Kind = "figure"
	Figcaption Kind = "figcaption"
	Div        Kind = "div"
)

// Inline text semantics.
const (
	A      Kind = "a"
	Em     Kind = "em"
	Strong Kind = "strong"
	Small  Kind = "small"
	S      Kind = "s"
	Cite   Kind = "cite"
	Q      Kind = "q"
	Dfn    Kind = "dfn"
	Abbr   Kind = "abbr"
	Ruby   Kind = "ruby"
	Rt     Kind = "rt"
	Rp     Kind = "rp"
	Data   Kind = "data"
	Time   Kind = "time"
	Code   Kind = "code"
	Var    Kind = "var"
	Samp   Kind = "samp"
	Kbd    Kind = "kbd"
	Sub    Kind = "sub"
	Sup    Kind = "sup"
	I      Kind = "i"
	B      Kind = "b"
	U      Kind = "u"
	Mark   Kind = "mark"
	Bdi    Kind = "bdi"
	Bdo    Kind = "bdo"
	Span   Kind = "span"
	Br     Kind = "br"
	Wbr    Kind = "wbr"
)

// Images, multimedia and embedded content.
const (
	Picture  Kind = "picture"
	Source   Kind = "source"
	Img      Kind = "img"
	Svg      Kind = "svg"
	Math     Kind = "math"
	Audio    Kind = "audio"
	Video    Kind = "video"
	Track    Kind = "track"
	Map      Kind = "map"
	Area     Kind = "area"
	Iframe   Kind = "iframe"
	Embed    Kind = "embed"
	Object   Kind = "object"
	Param    Kind = "param"
	Canvas   Kind = "canvas"
	Noscript Kind = "noscript"
	Del      Kind = "del"
	Ins      Kind = "ins"
)

// Tables.
const (
	Table    Kind = "table"
	Caption  Kind = "caption"
	Colgroup Kind = "colgroup"
	Col      Kind = "col"
	Tbody    Kind = "tbody"
	Thead    Kind = "thead"
	Tfoot    Kind = "tfoot"
	Tr       Kind = "tr"
	Td       Kind = "td"
	Th       Kind = "th"
)

// Forms and interactive elements.
const (
	Form     Kind = "form"
	Label    Kind = "label"
	Input    Kind = "input"
	Button   Kind = "button"
	Select   Kind = "select"
	Datalist Kind = "datalist"
	Optgroup Kind = "optgroup"
	Option   Kind = "option"
	Textarea Kind = "textarea"
	Output   Kind = "output"
	Progress Kind = "progress"
	Meter    Kind = "meter"
	Fieldset Kind = "fieldset"
	Legend   Kind = "legend"
	Details  Kind = "details"
	Summary  Kind = "summary"
	Dialog   Kind = "dialog"
	Template Kind = "template"
	Slot     Kind = "slot"
)

// Obsolete elements that may still appear in documents.
const (
	Acronym  Kind = "acronym"
	Applet   Kind = "applet"
	Basefont Kind = "basefont"
	Big      Kind = "big"
	Center   Kind = "center"
	Dir      Kind = "dir"
	Font     Kind = "font"
	Frame    Kind = "frame"
	Frameset Kind = "frameset"
	Noframes Kind = "noframes"
	Strike   Kind = "strike"
	Tt       Kind = "tt"
)

type set map[Kind]struct{}

func newSet(kinds ...Kind) set {
	s := make(set, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

func (s set) has(k Kind) bool {
	_, ok := s[k]
	return ok
}

var catalog = newSet(
	Html, Head, Body, Title, Meta, Link, Style, Script, Base,
	Article, Section, Nav, Aside, Header, Footer, Main, Hgroup,
	H1, H2, H3, H4, H5, H6,
	P, Hr, Pre, Blockquote, Ol, Ul, Li, Dl, Dt, Dd, Figure, Figcaption, Div,
	A, Em, Strong, Small, S, Cite, Q, Dfn, Abbr, Ruby, Rt, Rp, Data, Time, Code, Var,
	Samp, Kbd, Sub, Sup, I, B, U, Mark, Bdi, Bdo, Span, Br, Wbr,
	Picture, Source, Img, Svg, Math, Audio, Video, Track, Map, Area,
	Iframe, Embed, Object, Param, Canvas, Noscript, Del, Ins,
	Table, Caption, Colgroup, Col, Tbody, Thead, Tfoot, Tr, Td, Th,
	Form, Label, Input, Button, Select, Datalist, Optgroup, Option, Textarea,
	Output, Progress, Meter, Fieldset, Legend, Details, Summary, Dialog,
	Template, Slot,
	Acronym, Applet, Basefont, Big, Center, Dir, Font, Frame, Frameset, Noframes, Strike, Tt,
)

var (
	voidElements = newSet(
		Area, Base, Br, Col, Embed, Hr, Img, Input, Link, Meta, Param, Source, Track, Wbr,
	)
	obsoleteElements = newSet(
		Acronym, Applet, Basefont, Big, Center, Dir, Font, Frame, Frameset, Noframes, Strike, Tt,
	)
	sectioningElements = newSet(Article, Section, Nav, Aside)
	headingElements    = newSet(H1, H2, H3, H4, H5, H6)
	formElements       = newSet(
		Form, Input, Button, Select, Textarea, Label, Fieldset, Legend,
		Optgroup, Option, Datalist, Output, Progress, Meter,
	)
	tableElements = newSet(
		Table, Caption, Colgroup, Col, Tbody, Thead, Tfoot, Tr, Td, Th,
	)
	rawTextElements = newSet(Script, Style)
)

// FromTagName returns the [Kind] for a tag name. The lookup is case
// insensitive. An unrecognized name yields an unknown kind holding
// the name unchanged.
func FromTagName(name string) Kind {
	if k := Kind(strings.ToLower(name)); catalog.has(k) {
		return k
	}
	return Kind(name)
}

// TagName returns the element's tag name.
func (k Kind) TagName() string {
	return string(k)
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k.IsUnknown() {
		return "Unknown(" + string(k) + ")"
	}
	return string(k)
}

// IsUnknown returns true when the kind is not part of the catalog.
func (k Kind) IsUnknown() bool {
	return !catalog.has(k)
}

// Atom returns the [atom.Atom] of the element's tag name, or zero when
// the name has no atom.
func (k Kind) Atom() atom.Atom {
	return atom.Lookup([]byte(k))
}

// IsVoid returns true for elements that cannot have children.
func (k Kind) IsVoid() bool {
	return voidElements.has(k)
}

// IsObsolete returns true for deprecated elements.
func (k Kind) IsObsolete() bool {
	return obsoleteElements.has(k)
}

// IsSectioning returns true for sectioning content elements.
func (k Kind) IsSectioning() bool {
	return sectioningElements.has(k)
}

// IsHeading returns true for h1 to h6.
func (k Kind) IsHeading() bool {
	return headingElements.has(k)
}

// IsFormElement returns true for form related elements.
func (k Kind) IsFormElement() bool {
	return formElements.has(k)
}

// IsTableElement returns true for table related elements.
func (k Kind) IsTableElement() bool {
	return tableElements.has(k)
}

// IsRawText returns true for elements whose content is not markup.
func (k Kind) IsRawText() bool {
	return rawTextElements.has(k)
}
