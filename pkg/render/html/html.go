// Package html renders a document tree as HTML.
//
// Each node becomes one element and sibling elements are separated by a
// newline. Heading levels above 6 render as H6. Inline text is escaped; raw
// block content is written verbatim unless the node marks it as text.
package html

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/textright/pkg/doctree"
)

// MaxHeadingLevel is the deepest heading element HTML defines.
const MaxHeadingLevel = 6

// ErrUnknownNode is returned for a node type the renderer does not handle.
var ErrUnknownNode = errors.New("unknown node type")

// Render writes the HTML for nodes to w.
func Render(w io.Writer, nodes []doctree.Node) error {
	var sb strings.Builder
	if err := renderNodes(&sb, nodes); err != nil {
		return err
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

// RenderString returns the HTML for nodes.
func RenderString(nodes []doctree.Node) (string, error) {
	var sb strings.Builder
	if err := renderNodes(&sb, nodes); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Escape escapes the characters &, ', <, > and " in text.
func Escape(text string) string {
	return html.EscapeString(text)
}

func renderNodes(sb *strings.Builder, nodes []doctree.Node) error {
	first := true
	for _, node := range nodes {
		if _, ok := node.(*doctree.Empty); ok {
			continue
		}
		if !first {
			sb.WriteByte('\n')
		}
		first = false

		if err := renderNode(sb, node); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(sb *strings.Builder, node doctree.Node) error {
	switch node := node.(type) {
	case *doctree.Heading:
		level := min(max(node.Level, 1), MaxHeadingLevel)
		writeElement(sb, "H"+strconv.Itoa(level), Escape(node.Content.Text()))

	case *doctree.Paragraph:
		writeElement(sb, "P", Escape(node.Content.Text()))

	case *doctree.Quote:
		sb.WriteString("<QUOTE>")
		if err := renderNodes(sb, node.Children); err != nil {
			return err
		}
		sb.WriteString("</QUOTE>")

	case *doctree.OrderedList:
		return renderListItem(sb, "OL", node.Children)

	case *doctree.UnorderedList:
		return renderListItem(sb, "UL", node.Children)

	case *doctree.Raw:
		renderRaw(sb, node)

	default:
		return fmt.Errorf("%w: %T", ErrUnknownNode, node)
	}

	return nil
}

// renderRaw writes a raw node according to its form. Text content is
// escaped; element and fragment content is written verbatim.
func renderRaw(sb *strings.Builder, raw *doctree.Raw) {
	if raw.Form == doctree.RawFragment {
		sb.WriteString(raw.Content())
		return
	}

	sb.WriteString("<" + raw.Name)
	for _, attr := range raw.Attributes {
		sb.WriteString(" " + attr.Key + `="` + Escape(attr.Value) + `"`)
	}
	sb.WriteString(">")
	if raw.Form == doctree.RawText {
		sb.WriteString(Escape(raw.Content()))
	} else {
		sb.WriteString(raw.Content())
	}
	sb.WriteString("</" + raw.Name + ">")
}

// renderListItem writes one list element holding a single item.
func renderListItem(sb *strings.Builder, tag string, children []doctree.Node) error {
	sb.WriteString("<" + tag + "><LI>")
	if err := renderNodes(sb, children); err != nil {
		return err
	}
	sb.WriteString("</LI></" + tag + ">")
	return nil
}

func writeElement(sb *strings.Builder, tag, content string) {
	sb.WriteString("<" + tag + ">")
	sb.WriteString(content)
	sb.WriteString("</" + tag + ">")
}
