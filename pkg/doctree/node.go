// Package doctree defines the document tree produced by the parsers.
package doctree

import (
	"strconv"
	"strings"

	"github.com/yaklabco/textright/pkg/source"
)

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind identifies the variant of a Node.
type Kind uint8

// Node kinds.
const (
	KindHeading Kind = iota
	KindParagraph
	KindQuote
	KindOrderedList
	KindUnorderedList
	KindRaw
	KindEmpty
)

// Node is an element of the document tree. The concrete types are the
// pointer types declared in this package; the set is closed.
type Node interface {
	// Kind returns the node variant.
	Kind() Kind

	// Meta returns the fields shared by every variant.
	Meta() *Base

	node()
}

// Base holds the fields shared by every node variant.
type Base struct {
	// Tags are the style tags declared immediately before the node.
	Tags []string

	// Children is empty for Heading, Paragraph, Raw and Empty.
	Children []Node

	// Range is the range of source lines the node was built from.
	Range LineRange
}

// Meta returns b.
func (b *Base) Meta() *Base { return b }

func (*Base) node() {}

// LineRange is a half-open range [Start, End) of 0-based line indexes.
type LineRange struct {
	Start int
	End   int
}

// Len returns the number of lines in the range.
func (r LineRange) Len() int { return r.End - r.Start }

// Inline is unformatted inline content over one or more source spans.
// Inline formatting is left to a later pass.
type Inline struct {
	Spans []source.Span
}

// Text returns the spans joined by newlines.
func (i Inline) Text() string {
	texts := make([]string, len(i.Spans))
	for idx, span := range i.Spans {
		texts[idx] = span.Text()
	}
	return strings.Join(texts, "\n")
}

// Heading is a section heading.
type Heading struct {
	Base

	// Level is the number of '#' characters. It is not clamped.
	Level   int
	Content Inline
}

// Paragraph is a run of text lines.
type Paragraph struct {
	Base

	Content Inline
}

// Quote is a quoted section; its children hold the quoted content.
type Quote struct {
	Base
}

// OrderedList is a numbered list item; its children hold the item content.
type OrderedList struct {
	Base

	// InitialValue is the literal marker, such as "1", "01" or "#".
	InitialValue string
	Type         OrderedListType
}

// UnorderedList is a bulleted list item; its children hold the item content.
type UnorderedList struct {
	Base

	// InitialValue is the literal bullet.
	InitialValue string
	Type         UnorderedListType
}

// Raw is an opaque passthrough block such as an embedded HTML element.
type Raw struct {
	Base

	// Name is the tag name from the start line. It may be empty.
	Name       string
	Attributes []Attribute

	// Closed reports whether an end tag was found.
	Closed bool

	// Form says how Lines relate to the element.
	Form RawForm

	// Lines holds the verbatim lines between the start and end tags, or the
	// whole markup for RawFragment.
	Lines []string
}

// Content returns the raw lines joined by newlines.
func (r *Raw) Content() string {
	return strings.Join(r.Lines, "\n")
}

// Attr returns the value of the first attribute named key.
func (r *Raw) Attr(key string) (string, bool) {
	for _, attr := range r.Attributes {
		if strings.EqualFold(attr.Key, key) {
			return attr.Value, true
		}
	}
	return "", false
}

// RawForm describes what a raw node's lines hold.
type RawForm int

const (
	// RawElement lines are markup placed inside the named element.
	RawElement RawForm = iota
	// RawText lines are plain text placed inside the named element.
	RawText
	// RawFragment lines are complete markup, element tags included.
	RawFragment
)

func (f RawForm) String() string {
	switch f {
	case RawElement:
		return "element"
	case RawText:
		return "text"
	case RawFragment:
		return "fragment"
	default:
		return "RawForm(" + strconv.Itoa(int(f)) + ")"
	}
}

// Attribute is a key/value pair from a raw start tag.
type Attribute struct {
	Key   string
	Value string
}

// Empty is a node with no content.
type Empty struct {
	Base
}

func (*Heading) Kind() Kind       { return KindHeading }
func (*Paragraph) Kind() Kind     { return KindParagraph }
func (*Quote) Kind() Kind         { return KindQuote }
func (*OrderedList) Kind() Kind   { return KindOrderedList }
func (*UnorderedList) Kind() Kind { return KindUnorderedList }
func (*Raw) Kind() Kind           { return KindRaw }
func (*Empty) Kind() Kind         { return KindEmpty }

// IsContainer reports whether nodes of kind can have children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindQuote, KindOrderedList, KindUnorderedList:
		return true
	case KindHeading, KindParagraph, KindRaw, KindEmpty:
		return false
	default:
		return false
	}
}

// Document is a parsed input file.
type Document struct {
	// Path is the file path, or empty for in-memory input.
	Path string

	// Lines holds the source lines all spans in the tree point into.
	Lines []source.Line

	Nodes []Node
}

// LineCount returns the number of source lines.
func (d *Document) LineCount() int {
	return len(d.Lines)
}
