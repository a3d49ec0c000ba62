package goldmark

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"
	"golang.org/x/net/html"

	"github.com/yaklabco/textright/pkg/doctree"
	"github.com/yaklabco/textright/pkg/parser"
	"github.com/yaklabco/textright/pkg/source"
)

// codeElement holds code blocks in rendered output.
const codeElement = "pre"

// mapper converts a goldmark AST into doctree nodes.
type mapper struct {
	content    []byte
	lines      []source.Line
	lineStarts []int
	maxDepth   int
}

func newMapper(content []byte, lines []source.Line, maxDepth int) *mapper {
	starts := []int{0}
	for idx, b := range content {
		if b == '\n' {
			starts = append(starts, idx+1)
		}
	}
	return &mapper{
		content:    content,
		lines:      lines,
		lineStarts: starts,
		maxDepth:   maxDepth,
	}
}

// mapChildren maps the block children of gmParent at the given depth.
func (m *mapper) mapChildren(gmParent ast.Node, depth int) ([]doctree.Node, error) {
	if depth > m.maxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", parser.ErrStackLimit, depth, m.maxDepth)
	}

	var nodes []doctree.Node
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		mapped, err := m.mapNode(child, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, mapped...)
	}
	return nodes, nil
}

// mapNode converts one goldmark block. Lists expand to one node per item.
func (m *mapper) mapNode(gmNode ast.Node, depth int) ([]doctree.Node, error) {
	switch gmn := gmNode.(type) {
	case *ast.Heading:
		return one(&doctree.Heading{
			Base:    m.base(gmn, nil),
			Level:   gmn.Level,
			Content: m.inline(gmn),
		})

	case *ast.Paragraph, *ast.TextBlock:
		return one(&doctree.Paragraph{
			Base:    m.base(gmn, nil),
			Content: m.inline(gmn),
		})

	case *ast.Blockquote:
		children, err := m.mapChildren(gmn, depth+1)
		if err != nil {
			return nil, err
		}
		return one(&doctree.Quote{Base: m.base(gmn, children)})

	case *ast.List:
		return m.mapList(gmn, depth)

	case *ast.FencedCodeBlock:
		return one(m.mapFencedCodeBlock(gmn))

	case *ast.CodeBlock:
		return one(&doctree.Raw{
			Base:   m.base(gmn, nil),
			Name:   codeElement,
			Closed: true,
			Form:   doctree.RawText,
			Lines:  m.segmentTexts(gmn.Lines()),
		})

	case *ast.HTMLBlock:
		return one(m.mapHTMLBlock(gmn))

	case *ast.ThematicBreak:
		return one(&doctree.Empty{Base: m.base(gmn, nil)})

	case *east.Table:
		return one(m.mapTable(gmn))

	default:
		if gmNode.Type() == ast.TypeBlock && gmNode.Lines().Len() > 0 {
			return one(&doctree.Paragraph{
				Base:    m.base(gmNode, nil),
				Content: m.inline(gmNode),
			})
		}
		// Containers without lines of their own contribute their children.
		return m.mapChildren(gmNode, depth)
	}
}

func one(node doctree.Node) ([]doctree.Node, error) {
	return []doctree.Node{node}, nil
}

// mapList emits one list node per item, numbering ordered items from the
// list's start value.
func (m *mapper) mapList(list *ast.List, depth int) ([]doctree.Node, error) {
	var nodes []doctree.Node

	number := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		children, err := m.mapChildren(item, depth+1)
		if err != nil {
			return nil, err
		}

		base := m.base(item, children)
		if list.IsOrdered() {
			value := strconv.Itoa(number)
			nodes = append(nodes, &doctree.OrderedList{
				Base:         base,
				InitialValue: value,
				Type:         parser.OrderedListType(value),
			})
			number++
			continue
		}

		bullet := string(list.Marker)
		nodes = append(nodes, &doctree.UnorderedList{
			Base:         base,
			InitialValue: bullet,
			Type:         parser.UnorderedListType(bullet),
		})
	}

	return nodes, nil
}

// mapFencedCodeBlock maps a fence to a pre element holding plain text. The
// info string's language becomes a lang attribute; anything after it is
// parsed as further attributes.
func (m *mapper) mapFencedCodeBlock(codeBlock *ast.FencedCodeBlock) *doctree.Raw {
	raw := &doctree.Raw{
		Base:   m.base(codeBlock, nil),
		Name:   codeElement,
		Closed: true,
		Form:   doctree.RawText,
		Lines:  m.segmentTexts(codeBlock.Lines()),
	}

	if lang := codeBlock.Language(m.content); len(lang) > 0 {
		raw.Attributes = append(raw.Attributes, doctree.Attribute{Key: "lang", Value: string(lang)})
	}
	if codeBlock.Info != nil {
		info := string(codeBlock.Info.Value(m.content))
		if _, attrs, ok := strings.Cut(info, " "); ok {
			raw.Attributes = append(raw.Attributes, parser.ParseAttributes(attrs)...)
		}
	}
	return raw
}

// mapHTMLBlock keeps the block's markup whole and names the node after its
// first start tag.
func (m *mapper) mapHTMLBlock(block *ast.HTMLBlock) *doctree.Raw {
	lines := m.segmentTexts(block.Lines())
	if block.HasClosure() {
		lines = append(lines, m.segmentText(block.ClosureLine))
	}

	raw := &doctree.Raw{
		Base:   m.base(block, nil),
		Closed: block.HasClosure() || block.HTMLBlockType >= ast.HTMLBlockType6,
		Form:   doctree.RawFragment,
		Lines:  lines,
	}
	raw.Name, raw.Attributes = startTag(strings.Join(lines, "\n"))
	return raw
}

// mapTable renders a GFM table as rows of a table element. Cell text is
// escaped; inline markup inside cells is not interpreted.
func (m *mapper) mapTable(table *east.Table) *doctree.Raw {
	raw := &doctree.Raw{
		Base:   m.base(table, nil),
		Name:   "table",
		Closed: true,
	}

	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		cellTag := "td"
		if _, ok := row.(*east.TableHeader); ok {
			cellTag = "th"
		}

		var sb strings.Builder
		sb.WriteString("<tr>")
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			sb.WriteString("<" + cellTag)
			if typed, ok := cell.(*east.TableCell); ok && typed.Alignment != east.AlignNone {
				sb.WriteString(` align="` + typed.Alignment.String() + `"`)
			}
			sb.WriteString(">" + html.EscapeString(m.cellText(cell)) + "</" + cellTag + ">")
		}
		sb.WriteString("</tr>")
		raw.Lines = append(raw.Lines, sb.String())
	}
	return raw
}

// cellText returns the source text of a cell, markers included.
func (m *mapper) cellText(cell ast.Node) string {
	return strings.TrimSpace(strings.Join(m.segmentTexts(cell.Lines()), " "))
}

// startTag returns the name and attributes of the first start tag in text.
func startTag(text string) (string, []doctree.Attribute) {
	tokenizer := html.NewTokenizer(strings.NewReader(text))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return "", nil
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			var attrs []doctree.Attribute
			for _, attr := range token.Attr {
				attrs = append(attrs, doctree.Attribute{Key: attr.Key, Value: attr.Val})
			}
			return token.Data, attrs
		case html.TextToken, html.EndTagToken, html.CommentToken, html.DoctypeToken:
			continue
		}
	}
}

func (m *mapper) base(gmNode ast.Node, children []doctree.Node) doctree.Base {
	base := doctree.Base{Children: children}
	if start, end, ok := m.byteRange(gmNode); ok {
		base.Range = doctree.LineRange{
			Start: m.lineAt(start),
			End:   m.lineAt(max(start, end-1)) + 1,
		}
	}
	return base
}

func (m *mapper) inline(gmNode ast.Node) doctree.Inline {
	segments := gmNode.Lines()
	spans := make([]source.Span, 0, segments.Len())
	for idx := range segments.Len() {
		if span, ok := m.span(segments.At(idx)); ok {
			spans = append(spans, span)
		}
	}
	return doctree.Inline{Spans: spans}
}

func (m *mapper) segmentTexts(segments *gmtext.Segments) []string {
	texts := make([]string, 0, segments.Len())
	for idx := range segments.Len() {
		texts = append(texts, m.segmentText(segments.At(idx)))
	}
	return texts
}

// segmentText returns a segment without its line terminator, keeping the
// padding goldmark adds for tab-expanded indentation.
func (m *mapper) segmentText(seg gmtext.Segment) string {
	value := seg.Value(m.content)
	value = bytes.TrimRight(value, "\r\n")
	return string(value)
}

// span maps a segment to a span of the line holding its start.
func (m *mapper) span(seg gmtext.Segment) (source.Span, bool) {
	if len(m.lines) == 0 || seg.Start >= len(m.content) {
		return source.Span{}, false
	}

	lineIdx := m.lineAt(seg.Start)
	line := &m.lines[lineIdx]
	offset := m.lineStarts[lineIdx]

	start := min(seg.Start-offset, line.Len())
	end := min(max(seg.Stop-offset, start), line.Len())
	return source.NewSpan(line, start, end), true
}

// lineAt returns the index of the line holding byte offset.
func (m *mapper) lineAt(offset int) int {
	idx := sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > offset
	}) - 1
	return min(max(idx, 0), max(len(m.lines)-1, 0))
}

// byteRange returns the extent of a node's segments, including those of its
// descendants.
func (m *mapper) byteRange(gmNode ast.Node) (int, int, bool) {
	start, end, found := len(m.content), 0, false

	extend := func(seg gmtext.Segment) {
		if seg.Stop < seg.Start {
			return
		}
		start = min(start, seg.Start)
		end = max(end, seg.Stop)
		found = true
	}

	//nolint:errcheck // the walker never fails
	ast.Walk(gmNode, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := n.(type) {
		case *ast.Text:
			extend(typed.Segment)
		case *ast.RawHTML:
			segments := typed.Segments
			for idx := range segments.Len() {
				extend(segments.At(idx))
			}
		default:
			if n.Type() == ast.TypeBlock {
				segments := n.Lines()
				for idx := range segments.Len() {
					extend(segments.At(idx))
				}
			}
		}
		return ast.WalkContinue, nil
	})

	if !found || len(m.lines) == 0 {
		return 0, 0, false
	}
	return start, end, true
}
