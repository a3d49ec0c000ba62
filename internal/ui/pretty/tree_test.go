package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textright/internal/ui/pretty"
	"github.com/yaklabco/textright/pkg/doctree"
	"github.com/yaklabco/textright/pkg/source"
)

func sampleDocument() *doctree.Document {
	lines := source.FromStrings(
		"Title",
		"",
		"item",
		"more",
		`<script type="module">`,
		"let x = 1;",
		"</script>",
	)

	return &doctree.Document{
		Path:  "doc.tr",
		Lines: lines,
		Nodes: []doctree.Node{
			&doctree.Heading{
				Base:    doctree.Base{Range: doctree.LineRange{Start: 0, End: 1}},
				Level:   1,
				Content: doctree.Inline{Spans: []source.Span{lines[0].Whole()}},
			},
			&doctree.UnorderedList{
				Base: doctree.Base{
					Tags:  []string{"intro"},
					Range: doctree.LineRange{Start: 2, End: 4},
					Children: []doctree.Node{
						&doctree.Paragraph{
							Base:    doctree.Base{Range: doctree.LineRange{Start: 2, End: 4}},
							Content: doctree.Inline{Spans: []source.Span{lines[2].Whole(), lines[3].Whole()}},
						},
					},
				},
				InitialValue: "-",
				Type:         doctree.UnorderedDash,
			},
			&doctree.Raw{
				Base:       doctree.Base{Range: doctree.LineRange{Start: 4, End: 7}},
				Name:       "script",
				Attributes: []doctree.Attribute{{Key: "type", Value: "module"}},
				Closed:     true,
				Lines:      []string{"let x = 1;"},
			},
		},
	}
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTreeFormatter(pretty.NewStyles(false), nil, pretty.TreeOptions{})
	out := formatter.FormatDocument("doc.tr", sampleDocument())

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "doc.tr (7 lines, 4 nodes)", lines[0])
	assert.Equal(t, `├── Heading h1 "Title" L1`, lines[1])
	assert.Equal(t, `├── UnorderedList - dash tags="intro" L3-4`, lines[2])
	assert.Equal(t, `│   ╰── Paragraph "item ..." L3-4`, lines[3])
	assert.Equal(t, `╰── Raw <script type="module"> L5-7`, lines[4])
}

func TestFormatDocument_ShowRaw(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTreeFormatter(pretty.NewStyles(false), nil, pretty.TreeOptions{ShowRaw: true})
	out := formatter.FormatDocument("doc.tr", sampleDocument())

	assert.Contains(t, out, `╰── Raw <script type="module"> L5-7`)
	assert.Contains(t, out, "    ╰── let x = 1;")
}

func TestFormatDocument_Empty(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTreeFormatter(pretty.NewStyles(false), nil, pretty.TreeOptions{})
	out := formatter.FormatDocument("empty.tr", &doctree.Document{})

	assert.Equal(t, "empty.tr (0 lines, 0 nodes)\n", out)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	long := source.FromStrings(strings.Repeat("word ", 20))

	tests := []struct {
		name string
		node doctree.Node
		want string
	}{
		{
			name: "ordered list",
			node: &doctree.OrderedList{InitialValue: "01", Type: doctree.OrderedDecimalLeadingZero},
			want: "OrderedList 01 decimal-leading-zero L1",
		},
		{
			name: "quote with tags",
			node: &doctree.Quote{Base: doctree.Base{Tags: []string{"a", "b c"}, Range: doctree.LineRange{Start: 3, End: 5}}},
			want: `Quote tags="a","b c" L4-5`,
		},
		{
			name: "unclosed raw without name",
			node: &doctree.Raw{Base: doctree.Base{Range: doctree.LineRange{Start: 9, End: 12}}},
			want: "Raw <> unclosed L10-12",
		},
		{
			name: "raw with bare attribute",
			node: &doctree.Raw{Name: "pre", Attributes: []doctree.Attribute{{Key: "hidden"}}, Closed: true},
			want: "Raw <pre hidden> L1",
		},
		{
			name: "empty",
			node: &doctree.Empty{Base: doctree.Base{Range: doctree.LineRange{Start: 1, End: 2}}},
			want: "Empty L2",
		},
		{
			name: "truncated paragraph",
			node: &doctree.Paragraph{Content: doctree.Inline{Spans: []source.Span{long[0].Whole()}}},
			want: `Paragraph "word word word word word word word word word word word wo..." L1`,
		},
	}

	formatter := pretty.NewTreeFormatter(pretty.NewStyles(false), nil, pretty.TreeOptions{})

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, formatter.Label(testCase.node))
		})
	}
}
