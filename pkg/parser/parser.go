// Package parser turns TextRight markup into a document tree.
//
// Parsing runs in two phases per nesting level. Lines are first classified
// one by one, then grouped into blocks, and blocks become nodes. List item and
// quote bodies go through the same pipeline again with their own state.
package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/textright/pkg/blocks"
	"github.com/yaklabco/textright/pkg/doctree"
	"github.com/yaklabco/textright/pkg/lineparse"
	"github.com/yaklabco/textright/pkg/source"
)

// ErrUnhandledKind reports a line or block kind with no handler. It signals a
// bug in the parser, not a problem with the input.
var ErrUnhandledKind = blocks.ErrUnhandledKind

// ErrStackLimit is returned when nesting exceeds Options.MaxDepth.
var ErrStackLimit = errors.New("nesting depth limit exceeded")

// Parser parses TextRight documents. It holds no per-document state and is
// safe for concurrent use.
type Parser struct {
	opts Options
}

// New creates a parser with the given options.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Options returns the parser configuration.
func (p *Parser) Options() Options {
	return p.opts
}

// Parse splits content into lines and builds its document tree.
//
// Malformed input never fails: every line falls back to a permissive
// interpretation. Errors are limited to cancellation, ErrStackLimit and
// ErrUnhandledKind.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*doctree.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	doc := &doctree.Document{
		Path:  path,
		Lines: source.Split(content),
	}

	nodes, err := p.ParseLines(doc.Lines)
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return nil, err
	}
	doc.Nodes = nodes

	return doc, nil
}

// ParseLines builds the tree for already split lines.
// The returned nodes reference lines, which must not be modified afterwards.
func (p *Parser) ParseLines(lines []source.Line) ([]doctree.Node, error) {
	return p.build(source.Spans(lines), 0)
}

// build runs the full pipeline over spans at the given nesting depth.
func (p *Parser) build(spans []source.Span, depth int) ([]doctree.Node, error) {
	if depth > p.opts.maxDepth() {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrStackLimit, depth, p.opts.maxDepth())
	}

	lines := lineparse.ClassifyAll(spans, lineparse.Options{
		DisallowSimpleParagraphs: p.opts.DisallowSimpleParagraphs,
	})

	blks, err := blocks.Assemble(lines)
	if err != nil {
		return nil, err
	}

	b := &builder{parser: p, depth: depth}
	return b.build(blks)
}
