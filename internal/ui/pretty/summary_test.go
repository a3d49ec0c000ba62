package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/textright/internal/ui/pretty"
	"github.com/yaklabco/textright/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "no files",
			stats: runner.Stats{},
			want:  "No files to parse.\n",
		},
		{
			name:  "single file",
			stats: runner.Stats{FilesDiscovered: 1, FilesParsed: 1, LinesTotal: 1, NodesTotal: 1},
			want:  "1 file parsed, 1 line, 1 node\n",
		},
		{
			name:  "with failures",
			stats: runner.Stats{FilesDiscovered: 4, FilesParsed: 3, FilesErrored: 1, LinesTotal: 42, NodesTotal: 17},
			want:  "3 files parsed, 42 lines, 17 nodes, 1 failed\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			styles := pretty.NewStyles(false)
			assert.Equal(t, testCase.want, styles.FormatSummaryOneLine(testCase.stats))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 3,
		FilesParsed:     3,
		LinesTotal:      20,
		NodesTotal:      9,
		NodesByKind:     map[string]int{"Paragraph": 6, "Heading": 3},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files discovered:  3")
	assert.Contains(t, result, "Lines:             20")
	assert.Contains(t, result, "Nodes:             9")
	assert.Contains(t, result, "    Heading:         3")
	assert.Contains(t, result, "    Paragraph:       6")
	assert.Less(t, strings.Index(result, "Heading:"), strings.Index(result, "Paragraph:"), "kinds are sorted")
	assert.NotContains(t, result, "Files failed:")
	assert.Contains(t, result, "Parse succeeded")
}

func TestFormatSummary_WithFailures(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	result := styles.FormatSummary(runner.Stats{FilesDiscovered: 2, FilesParsed: 1, FilesErrored: 1})

	assert.Contains(t, result, "Files failed:      1")
	assert.Contains(t, result, "Parse failed for some files")
}
