package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/yaklabco/textright/pkg/doctree"
	"github.com/yaklabco/textright/pkg/langdetect"
)

// Tree formatting constants.
const (
	defaultContentWidth = 60
	minContentWidth     = 16
	ellipsis            = "..."
)

// TreeOptions controls document tree formatting.
type TreeOptions struct {
	// ShowRaw includes the verbatim lines of raw blocks.
	ShowRaw bool

	// ContentWidth is the maximum width of inline content previews.
	// 0 means the default.
	ContentWidth int
}

// TreeFormatter formats document trees for terminal output.
type TreeFormatter struct {
	styles      *Styles
	highlighter *Highlighter
	opts        TreeOptions
}

// NewTreeFormatter creates a tree formatter. highlighter may be nil.
func NewTreeFormatter(styles *Styles, highlighter *Highlighter, opts TreeOptions) *TreeFormatter {
	if opts.ContentWidth <= 0 {
		opts.ContentWidth = defaultContentWidth
	}
	opts.ContentWidth = max(opts.ContentWidth, minContentWidth)

	return &TreeFormatter{
		styles:      styles,
		highlighter: highlighter,
		opts:        opts,
	}
}

// FormatDocument renders doc as a tree rooted at a header naming path.
func (f *TreeFormatter) FormatDocument(path string, doc *doctree.Document) string {
	header := fmt.Sprintf("%s %s",
		f.styles.FilePath.Render(path),
		f.styles.Dim.Render(fmt.Sprintf("(%s, %s)",
			plural(doc.LineCount(), "line"), plural(countNodes(doc.Nodes), "node"))),
	)

	if len(doc.Nodes) == 0 {
		return header + "\n"
	}

	root := tree.Root(header).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(f.styles.Enumerator)
	f.addChildren(root, doc.Nodes)

	return root.String() + "\n"
}

func (f *TreeFormatter) addChildren(parent *tree.Tree, nodes []doctree.Node) {
	for _, node := range nodes {
		if node == nil {
			continue
		}

		label := f.Label(node)
		children := node.Meta().Children

		raw, isRaw := node.(*doctree.Raw)
		showRaw := isRaw && f.opts.ShowRaw && len(raw.Lines) > 0

		if len(children) == 0 && !showRaw {
			parent.Child(label)
			continue
		}

		sub := tree.Root(label)
		f.addChildren(sub, children)
		if showRaw {
			sub.Child(f.rawContent(raw))
		}
		parent.Child(sub)
	}
}

// Label returns the one-line description of node used in the tree.
func (f *TreeFormatter) Label(node doctree.Node) string {
	s := f.styles
	parts := []string{s.Kind.Render(node.Kind().String())}

	switch n := node.(type) {
	case *doctree.Heading:
		parts = append(parts,
			s.Heading.Render("h"+strconv.Itoa(n.Level)),
			f.preview(n.Content.Text()))
	case *doctree.Paragraph:
		parts = append(parts, f.preview(n.Content.Text()))
	case *doctree.OrderedList:
		parts = append(parts, s.Marker.Render(n.InitialValue), s.Dim.Render(string(n.Type)))
	case *doctree.UnorderedList:
		parts = append(parts, s.Marker.Render(n.InitialValue), s.Dim.Render(string(n.Type)))
	case *doctree.Raw:
		parts = append(parts, f.rawTag(n))
		if !n.Closed {
			parts = append(parts, s.Warning.Render("unclosed"))
		}
	}

	if tags := node.Meta().Tags; len(tags) > 0 {
		quoted := make([]string, len(tags))
		for i, tag := range tags {
			quoted[i] = strconv.Quote(tag)
		}
		parts = append(parts, s.Tag.Render("tags="+strings.Join(quoted, ",")))
	}

	parts = append(parts, s.Location.Render(formatRange(node.Meta().Range)))

	return strings.Join(parts, " ")
}

func (f *TreeFormatter) preview(text string) string {
	first, _, multiline := strings.Cut(text, "\n")
	first = truncateString(first, f.opts.ContentWidth)
	if multiline && !strings.HasSuffix(first, ellipsis) {
		first += " " + ellipsis
	}
	return f.styles.Content.Render(strconv.Quote(first))
}

func (f *TreeFormatter) rawTag(raw *doctree.Raw) string {
	s := f.styles

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(s.RawName.Render(raw.Name))
	for _, attr := range raw.Attributes {
		sb.WriteString(" ")
		sb.WriteString(s.Attribute.Render(attr.Key))
		if attr.Value != "" {
			sb.WriteString("=" + strconv.Quote(attr.Value))
		}
	}
	sb.WriteString(">")

	return sb.String()
}

func (f *TreeFormatter) rawContent(raw *doctree.Raw) string {
	return f.highlighter.Highlight(langdetect.ForRaw(raw), raw.Content())
}

// formatRange renders a 0-based half-open range as 1-based line numbers.
func formatRange(r doctree.LineRange) string {
	if r.Len() <= 1 {
		return "L" + strconv.Itoa(r.Start+1)
	}
	return fmt.Sprintf("L%d-%d", r.Start+1, r.End)
}

func countNodes(nodes []doctree.Node) int {
	var count int
	//nolint:errcheck,revive // the callback never fails
	doctree.Walk(nodes, func(doctree.Node, int) error {
		count++
		return nil
	})
	return count
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
