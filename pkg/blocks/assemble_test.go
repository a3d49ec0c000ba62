package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textright/pkg/blocks"
	"github.com/yaklabco/textright/pkg/lineparse"
	"github.com/yaklabco/textright/pkg/source"
)

func assemble(t *testing.T, texts ...string) []blocks.Block {
	t.Helper()

	lines := lineparse.ClassifyAll(source.Spans(source.FromStrings(texts...)), lineparse.Options{})
	out, err := blocks.Assemble(lines)
	require.NoError(t, err)
	return out
}

func spanTexts(spans []source.Span) []string {
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, len(spans))
	for idx, span := range spans {
		out[idx] = span.Text()
	}
	return out
}

func TestAssembleKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lines    []string
		expected []blocks.Kind
	}{
		{name: "empty input", lines: nil, expected: nil},
		{name: "only blanks", lines: []string{"", "  "}, expected: nil},
		{name: "heading", lines: []string{"# a"}, expected: []blocks.Kind{blocks.KindHeading}},
		{
			name:     "paragraphs split by blank",
			lines:    []string{"a", "b", "", "c"},
			expected: []blocks.Kind{blocks.KindParagraph, blocks.KindParagraph},
		},
		{
			name:     "consecutive quotes",
			lines:    []string{"> a", "> b", "c"},
			expected: []blocks.Kind{blocks.KindQuote, blocks.KindParagraph},
		},
		{
			name:     "style then heading",
			lines:    []string{"---note---", "# h"},
			expected: []blocks.Kind{blocks.KindStyle, blocks.KindHeading},
		},
		{
			name:     "two list items",
			lines:    []string{"- a", "- b"},
			expected: []blocks.Kind{blocks.KindListItem, blocks.KindListItem},
		},
		{
			name:     "raw between paragraphs",
			lines:    []string{"p", "", "<div>", "x", "</div>", "q"},
			expected: []blocks.Kind{blocks.KindParagraph, blocks.KindRaw, blocks.KindParagraph},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out := assemble(t, testCase.lines...)

			var got []blocks.Kind
			for _, block := range out {
				got = append(got, block.Kind())
			}
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestAssembleListItem(t *testing.T) {
	t.Parallel()

	out := assemble(t, "- item one", "  more text", "", "next para")
	require.Len(t, out, 2)

	item, ok := out[0].(*blocks.ListItem)
	require.True(t, ok)
	assert.False(t, item.Ordered)
	assert.Equal(t, "-", item.Prefix())
	assert.Equal(t, []string{"item one", "more text"}, spanTexts(item.Body))
	assert.Len(t, item.Lines(), 2)

	para, ok := out[1].(*blocks.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "next para", para.Text())
}

func TestAssembleListItemKeepsInnerBlank(t *testing.T) {
	t.Parallel()

	out := assemble(t, " 01. first", "", "   second")
	require.Len(t, out, 1)

	item, ok := out[0].(*blocks.ListItem)
	require.True(t, ok)
	assert.True(t, item.Ordered)
	assert.Equal(t, "01", item.Prefix())
	assert.Equal(t, []string{"first", "", "second"}, spanTexts(item.Body))
	assert.Len(t, item.Lines(), 3)
}

func TestAssembleRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lines   []string
		closed  bool
		content []string
		members int
	}{
		{
			name:    "closed",
			lines:   []string{"<div>", "a", "b", "</div>"},
			closed:  true,
			content: []string{"a", "b"},
			members: 4,
		},
		{
			name:    "unclosed absorbs rest of input",
			lines:   []string{"<div>", "a", "b"},
			closed:  false,
			content: []string{"a", "b"},
			members: 3,
		},
		{
			name:    "empty",
			lines:   []string{"<br>", "</br>"},
			closed:  true,
			content: nil,
			members: 2,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out := assemble(t, testCase.lines...)
			require.Len(t, out, 1)

			raw, ok := out[0].(*blocks.Raw)
			require.True(t, ok)
			assert.Equal(t, testCase.closed, raw.Closed)
			assert.Equal(t, testCase.content, spanTexts(raw.Content))
			assert.Len(t, raw.Lines(), testCase.members)
		})
	}
}

func TestAssembleRawText(t *testing.T) {
	t.Parallel()

	out := assemble(t, `<pre class="x">`, "  a", "b", "</pre>")
	raw, ok := out[0].(*blocks.Raw)
	require.True(t, ok)

	assert.Equal(t, "pre", raw.Name.Text())
	assert.Equal(t, ` class="x"`, raw.Attributes.Text())
	assert.Equal(t, "  a\nb", raw.Text())
}

func TestAssembleQuoteAndHeading(t *testing.T) {
	t.Parallel()

	out := assemble(t, "#### Deep", "> one", ">two")
	require.Len(t, out, 2)

	heading, ok := out[0].(*blocks.Heading)
	require.True(t, ok)
	assert.Equal(t, 4, heading.Level)
	assert.Equal(t, "Deep", heading.Content.Text())

	quote, ok := out[1].(*blocks.Quote)
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two"}, spanTexts(quote.Body))
}

// Every non-blank line belongs to exactly one block, in source order.
func TestAssembleMembersPartitionLines(t *testing.T) {
	t.Parallel()

	texts := []string{
		"# h", "text", "more", "", "- a", "  b", "", "  c", "", "", "> q",
		"---s---", "<x>", "raw", "</x>", " 2. two", "",
	}
	out := assemble(t, texts...)

	next := 0
	for _, block := range out {
		for _, line := range block.Lines() {
			idx := line.Source().LineIndex()
			for next < idx {
				assert.True(t, lineparse.IsBlank(texts[next]), "line %d skipped but not blank", next)
				next++
			}
			assert.Equal(t, next, idx, "lines must be contiguous and ordered")
			next++
		}
	}
	for ; next < len(texts); next++ {
		assert.True(t, lineparse.IsBlank(texts[next]))
	}
}

func TestAssembleUnhandledKind(t *testing.T) {
	t.Parallel()

	line := &source.Line{Index: 2, Text: "  stray"}
	stray := &lineparse.ListItemContinuation{
		Src:     line.Whole(),
		Indent:  line.Whole().Slice(0, 2),
		Content: line.Whole().From(2),
	}

	_, err := blocks.Assemble([]lineparse.Line{stray})
	require.ErrorIs(t, err, blocks.ErrUnhandledKind)
	assert.Contains(t, err.Error(), "ListItemContinuation")
	assert.Contains(t, err.Error(), "line 3")
}
