package blocks

import (
	"errors"
	"fmt"

	"github.com/yaklabco/textright/pkg/cursor"
	"github.com/yaklabco/textright/pkg/lineparse"
)

// ErrUnhandledKind is returned when a line kind appears where no block can
// start. The classifier never produces such a sequence, so it indicates a bug.
var ErrUnhandledKind = errors.New("unhandled kind")

// Assemble groups classified lines into blocks in a single forward pass.
// Blank lines outside list items are dropped.
func Assemble(lines []lineparse.Line) ([]Block, error) {
	var out []Block

	cur := cursor.New(lines)
	for ; cur.Valid(); cur.Advance() {
		line, _ := cur.Current()

		switch line := line.(type) {
		case *lineparse.Heading:
			heading := &Heading{Level: line.Level(), Content: line.Content}
			heading.add(line)
			out = append(out, heading)

		case *lineparse.UnorderedListItem:
			item := &ListItem{Marker: line.Bullet}
			item.add(line)
			item.Body = append(item.Body, line.Content)
			collectContinuations(cur, item)
			out = append(out, item)

		case *lineparse.OrderedListItem:
			item := &ListItem{Ordered: true, Marker: line.Number}
			item.add(line)
			item.Body = append(item.Body, line.Content)
			collectContinuations(cur, item)
			out = append(out, item)

		case *lineparse.RawTagStart:
			out = append(out, assembleRaw(cur, line))

		case *lineparse.Quote:
			quote := &Quote{}
			quote.add(line)
			quote.Body = append(quote.Body, line.Content)
			for _, next := range cur.AdvanceWhile(isKind(lineparse.KindQuote)) {
				quote.add(next)
				quote.Body = append(quote.Body, next.(*lineparse.Quote).Content)
			}
			out = append(out, quote)

		case *lineparse.Style:
			style := &Style{Content: line.Content}
			style.add(line)
			out = append(out, style)

		case *lineparse.Text:
			para := &Paragraph{}
			para.add(line)
			para.Content = append(para.Content, line.Content())
			for _, next := range cur.AdvanceWhile(isKind(lineparse.KindText)) {
				para.add(next)
				para.Content = append(para.Content, next.(*lineparse.Text).Content())
			}
			out = append(out, para)

		case *lineparse.Blank:

		default:
			return nil, fmt.Errorf("%w: %s at line %d", ErrUnhandledKind, line.Kind(), line.Source().LineIndex()+1)
		}
	}

	return out, nil
}

// collectContinuations appends the continuation lines following a list item.
// A single blank line stays inside the item when a continuation follows it.
func collectContinuations(cur *cursor.Cursor[lineparse.Line], item *ListItem) {
	for {
		next, ok := cur.Peek(1)
		if !ok {
			return
		}

		switch next := next.(type) {
		case *lineparse.ListItemContinuation:
			item.add(next)
			item.Body = append(item.Body, next.Content)
			cur.Advance()

		case *lineparse.Blank:
			after, ok := cur.Peek(2)
			if !ok {
				return
			}
			cont, ok := after.(*lineparse.ListItemContinuation)
			if !ok {
				return
			}
			item.add(next)
			item.add(cont)
			item.Body = append(item.Body, next.Src, cont.Content)
			cur.Advance()
			cur.Advance()

		default:
			return
		}
	}
}

func assembleRaw(cur *cursor.Cursor[lineparse.Line], start *lineparse.RawTagStart) *Raw {
	raw := &Raw{Name: start.Name, Attributes: start.Attributes}
	raw.add(start)

	for _, next := range cur.AdvanceWhile(isKind(lineparse.KindRawContinuation)) {
		raw.add(next)
		raw.Content = append(raw.Content, next.(*lineparse.RawContinuation).Content())
	}

	if next, ok := cur.Peek(1); ok {
		if end, ok := next.(*lineparse.RawTagEnd); ok {
			raw.add(end)
			raw.Closed = true
			cur.Advance()
		}
	}

	return raw
}

func isKind(kind lineparse.Kind) func(lineparse.Line) bool {
	return func(line lineparse.Line) bool {
		return line.Kind() == kind
	}
}
