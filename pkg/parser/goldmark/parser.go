// Package goldmark provides a CommonMark backend that maps a goldmark AST onto
// the document tree produced by the TextRight parser.
//
// It lets CommonMark input flow through the same analysis, reporting and
// rendering as TextRight documents.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/textright/pkg/doctree"
	"github.com/yaklabco/textright/pkg/parser"
	"github.com/yaklabco/textright/pkg/source"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser parses CommonMark documents with goldmark.
type Parser struct {
	flavor   string
	maxDepth int
	md       goldmark.Markdown
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor:   f,
		maxDepth: parser.DefaultMaxDepth,
		md:       newGoldmarkInstance(f),
	}
}

// WithMaxDepth sets the nesting limit; values <= 0 restore the default.
func (p *Parser) WithMaxDepth(depth int) *Parser {
	if depth <= 0 {
		depth = parser.DefaultMaxDepth
	}
	p.maxDepth = depth
	return p
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse converts Markdown bytes into a document tree.
//
// Spans in the tree point into the document's own lines, exactly as for
// TextRight input. Nesting deeper than the configured limit fails with
// parser.ErrStackLimit.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*doctree.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	content = copyContent(content)
	doc := &doctree.Document{
		Path:  path,
		Lines: source.Split(content),
	}

	gmDoc := p.md.Parser().Parse(text.NewReader(content))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(content, doc.Lines, p.maxDepth)
	nodes, err := m.mapChildren(gmDoc, 0)
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return nil, err
	}
	doc.Nodes = nodes

	return doc, nil
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts,
			goldmark.WithExtensions(
				extension.GFM,
			),
		)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
