// Package blocks groups classified lines into blocks.
package blocks

import (
	"strings"

	"github.com/yaklabco/textright/pkg/lineparse"
	"github.com/yaklabco/textright/pkg/source"
)

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind identifies the type of a block.
type Kind uint8

// Block kinds. Blank lines never form a block.
const (
	KindHeading Kind = iota
	KindListItem
	KindRaw
	KindQuote
	KindStyle
	KindParagraph
)

// Block is a contiguous run of classified lines with one structural meaning.
// The concrete types are the pointer types declared in this package.
type Block interface {
	// Kind returns the block type.
	Kind() Kind

	// Lines returns the member lines in source order. It is never empty.
	Lines() []lineparse.Line

	block()
}

type members struct {
	lines []lineparse.Line
}

// Lines returns the member lines in source order.
func (m *members) Lines() []lineparse.Line { return m.lines }

func (m *members) add(line lineparse.Line) { m.lines = append(m.lines, line) }

func (*members) block() {}

// Heading is a single heading line.
type Heading struct {
	members

	// Level is the number of '#' characters.
	Level   int
	Content source.Span
}

// ListItem is a list item line plus its continuation lines.
type ListItem struct {
	members

	Ordered bool

	// Marker is the bullet, number or '#' introducing the item.
	Marker source.Span

	// Body holds the item content: the text after the marker followed by the
	// content of every continuation line.
	Body []source.Span
}

// Raw is an opaque region between a start tag line and an end tag line.
type Raw struct {
	members

	Name       source.Span
	Attributes source.Span

	// Content holds the lines between the start and end tags.
	Content []source.Span

	// Closed reports whether an end tag was found before the input ended.
	Closed bool
}

// Quote is a run of consecutive quote lines.
type Quote struct {
	members

	Body []source.Span
}

// Style is a single style line.
type Style struct {
	members

	Content source.Span
}

// Paragraph is a run of consecutive text lines.
type Paragraph struct {
	members

	Content []source.Span
}

func (*Heading) Kind() Kind   { return KindHeading }
func (*ListItem) Kind() Kind  { return KindListItem }
func (*Raw) Kind() Kind       { return KindRaw }
func (*Quote) Kind() Kind     { return KindQuote }
func (*Style) Kind() Kind     { return KindStyle }
func (*Paragraph) Kind() Kind { return KindParagraph }

// Prefix returns the literal marker text, such as "-", "12" or "#".
func (l *ListItem) Prefix() string { return l.Marker.Text() }

// Text returns the inner raw lines joined by newlines.
func (r *Raw) Text() string { return joinSpans(r.Content) }

// Text returns the paragraph lines joined by newlines.
func (p *Paragraph) Text() string { return joinSpans(p.Content) }

func joinSpans(spans []source.Span) string {
	texts := make([]string, len(spans))
	for idx, span := range spans {
		texts[idx] = span.Text()
	}
	return strings.Join(texts, "\n")
}
