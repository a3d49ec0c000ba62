// Package lineparse classifies source lines by their structural role.
//
// Classification is stateful: whether a line continues a paragraph, a list
// item or a raw block depends on the lines before it. The State carries that
// context from one call of Classify to the next.
package lineparse

import "github.com/yaklabco/textright/pkg/source"

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind identifies the structural role of a classified line.
type Kind uint8

// Line kinds.
const (
	KindHeading Kind = iota
	KindStyle
	KindQuote
	KindBlank
	KindText
	KindUnorderedListItem
	KindOrderedListItem
	KindListItemContinuation
	KindRawTagStart
	KindRawContinuation
	KindRawTagEnd
)

// Line is a classified source line. The concrete types are the pointer types
// declared in this package; the set is closed.
//
// The named spans of every concrete type are adjacent, do not overlap, and
// together cover Source.
type Line interface {
	// Kind returns the structural kind of the line.
	Kind() Kind

	// Source returns the span of the whole line.
	Source() source.Span

	line()
}

// Heading is a line starting with one or more '#'.
type Heading struct {
	Src     source.Span
	Hashes  source.Span
	Space   source.Span
	Content source.Span
}

// Level returns the number of '#' characters.
func (h *Heading) Level() int { return h.Hashes.Len() }

// Style is a "---name---" line declaring a tag for the next content node.
type Style struct {
	Src           source.Span
	Open          source.Span
	LeadingSpace  source.Span
	Content       source.Span
	TrailingSpace source.Span
	Close         source.Span
}

// Quote is a line starting with '>'.
type Quote struct {
	Src     source.Span
	Indent  source.Span
	Marker  source.Span
	Space   source.Span
	Content source.Span
}

// Blank is a line holding only spaces and tabs.
type Blank struct {
	Src source.Span
}

// Text is a line of plain paragraph text.
type Text struct {
	Src source.Span
}

// Content returns the text of the line.
func (t *Text) Content() source.Span { return t.Src }

// UnorderedListItem starts an item introduced by '-', '*' or '+'.
type UnorderedListItem struct {
	Src     source.Span
	Indent  source.Span
	Bullet  source.Span
	Space   source.Span
	Content source.Span
}

// OrderedListItem starts an item introduced by a number or '#' and a period.
type OrderedListItem struct {
	Src     source.Span
	Indent  source.Span
	Number  source.Span
	Period  source.Span
	Space   source.Span
	Content source.Span
}

// ListItemContinuation is an indented line belonging to the open list item.
type ListItemContinuation struct {
	Src     source.Span
	Indent  source.Span
	Content source.Span
}

// RawTagStart opens a raw passthrough block, as in "<div class=x>".
type RawTagStart struct {
	Src        source.Span
	Open       source.Span
	Name       source.Span
	Attributes source.Span
	Space      source.Span
	Close      source.Span
}

// RawContinuation is a line inside an open raw block.
type RawContinuation struct {
	Src source.Span
}

// Content returns the verbatim text of the line.
func (r *RawContinuation) Content() source.Span { return r.Src }

// RawTagEnd closes a raw block, as in "</div>".
type RawTagEnd struct {
	Src      source.Span
	Open     source.Span
	Name     source.Span
	Space    source.Span
	Close    source.Span
	Trailing source.Span
}

func (*Heading) Kind() Kind              { return KindHeading }
func (*Style) Kind() Kind                { return KindStyle }
func (*Quote) Kind() Kind                { return KindQuote }
func (*Blank) Kind() Kind                { return KindBlank }
func (*Text) Kind() Kind                 { return KindText }
func (*UnorderedListItem) Kind() Kind    { return KindUnorderedListItem }
func (*OrderedListItem) Kind() Kind      { return KindOrderedListItem }
func (*ListItemContinuation) Kind() Kind { return KindListItemContinuation }
func (*RawTagStart) Kind() Kind          { return KindRawTagStart }
func (*RawContinuation) Kind() Kind      { return KindRawContinuation }
func (*RawTagEnd) Kind() Kind            { return KindRawTagEnd }

func (l *Heading) Source() source.Span              { return l.Src }
func (l *Style) Source() source.Span                { return l.Src }
func (l *Quote) Source() source.Span                { return l.Src }
func (l *Blank) Source() source.Span                { return l.Src }
func (l *Text) Source() source.Span                 { return l.Src }
func (l *UnorderedListItem) Source() source.Span    { return l.Src }
func (l *OrderedListItem) Source() source.Span      { return l.Src }
func (l *ListItemContinuation) Source() source.Span { return l.Src }
func (l *RawTagStart) Source() source.Span          { return l.Src }
func (l *RawContinuation) Source() source.Span      { return l.Src }
func (l *RawTagEnd) Source() source.Span            { return l.Src }

func (*Heading) line()              {}
func (*Style) line()                {}
func (*Quote) line()                {}
func (*Blank) line()                {}
func (*Text) line()                 {}
func (*UnorderedListItem) line()    {}
func (*OrderedListItem) line()      {}
func (*ListItemContinuation) line() {}
func (*RawTagStart) line()          {}
func (*RawContinuation) line()      {}
func (*RawTagEnd) line()            {}

// Parts returns the named spans of line in source order.
func Parts(line Line) []source.Span {
	switch line := line.(type) {
	case *Heading:
		return []source.Span{line.Hashes, line.Space, line.Content}
	case *Style:
		return []source.Span{line.Open, line.LeadingSpace, line.Content, line.TrailingSpace, line.Close}
	case *Quote:
		return []source.Span{line.Indent, line.Marker, line.Space, line.Content}
	case *UnorderedListItem:
		return []source.Span{line.Indent, line.Bullet, line.Space, line.Content}
	case *OrderedListItem:
		return []source.Span{line.Indent, line.Number, line.Period, line.Space, line.Content}
	case *ListItemContinuation:
		return []source.Span{line.Indent, line.Content}
	case *RawTagStart:
		return []source.Span{line.Open, line.Name, line.Attributes, line.Space, line.Close}
	case *RawTagEnd:
		return []source.Span{line.Open, line.Name, line.Space, line.Close, line.Trailing}
	default:
		return []source.Span{line.Source()}
	}
}
