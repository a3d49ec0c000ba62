package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/textright/pkg/doctree"
	"github.com/yaklabco/textright/pkg/parser"
	"github.com/yaklabco/textright/pkg/reporter"
	"github.com/yaklabco/textright/pkg/runner"
)

func parseDoc(t *testing.T, path, content string) *doctree.Document {
	t.Helper()

	doc, err := parser.New(parser.DefaultOptions()).Parse(context.Background(), path, []byte(content))
	require.NoError(t, err)
	return doc
}

// sampleResult holds two parsed files and one failure.
func sampleResult(t *testing.T) *runner.Result {
	t.Helper()

	return &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/work/a.tr", Document: parseDoc(t, "/work/a.tr", "# Title\n\n- item\n")},
			{Path: "/work/b.tr", Document: parseDoc(t, "/work/b.tr", "<script type=\"module\">\nlet x = 1;\n</script>\n")},
			{Path: "/work/c.tr", Error: errors.New("boom")},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesParsed:     2,
			FilesErrored:    1,
			LinesTotal:      6,
			NodesTotal:      4,
			NodesByKind: map[string]int{
				"Heading":       1,
				"UnorderedList": 1,
				"Paragraph":     1,
				"Raw":           1,
			},
		},
	}
}

func newOptions(format reporter.Format, out, errOut *bytes.Buffer) reporter.Options {
	opts := reporter.DefaultOptions()
	opts.Writer = out
	opts.ErrorWriter = errOut
	opts.Format = format
	opts.Color = "never"
	opts.WorkingDir = "/work"
	return opts
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "yaml", input: "yaml", want: reporter.FormatYAML},
		{name: "yml alias", input: "yml", want: reporter.FormatYAML},
		{name: "html", input: "html", want: reporter.FormatHTML},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown", input: "xml", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(testCase.input)
			if testCase.wantErr {
				require.Error(t, err)
				assert.False(t, got.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(newOptions(reporter.FormatJSON, &out, &errOut))
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	var output reporter.DocumentOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &output))

	assert.Equal(t, reporter.OutputVersion, output.Version)
	require.Len(t, output.Files, 3)

	first := output.Files[0]
	assert.Equal(t, "a.tr", first.Path)
	assert.Equal(t, 3, first.Lines)
	require.Len(t, first.Nodes, 2)

	heading := first.Nodes[0]
	assert.Equal(t, "Heading", heading.Kind)
	assert.Equal(t, 1, heading.Level)
	assert.Equal(t, "Title", heading.Content)
	assert.Equal(t, 1, heading.StartLine)
	assert.Equal(t, 1, heading.EndLine)
	assert.Nil(t, heading.Closed)

	list := first.Nodes[1]
	assert.Equal(t, "UnorderedList", list.Kind)
	assert.Equal(t, "-", list.InitialValue)
	assert.Equal(t, "dash", list.ListType)
	assert.Equal(t, 3, list.StartLine)
	require.Len(t, list.Children, 1)
	assert.Equal(t, "Paragraph", list.Children[0].Kind)
	assert.Equal(t, "item", list.Children[0].Content)

	second := output.Files[1]
	require.Len(t, second.Nodes, 1)
	raw := second.Nodes[0]
	assert.Equal(t, "Raw", raw.Kind)
	assert.Equal(t, "script", raw.Name)
	assert.Equal(t, []reporter.AttributeView{{Key: "type", Value: "module"}}, raw.Attributes)
	require.NotNil(t, raw.Closed)
	assert.True(t, *raw.Closed)
	assert.Equal(t, []string{"let x = 1;"}, raw.Lines)
	assert.Equal(t, 1, raw.StartLine)
	assert.Equal(t, 3, raw.EndLine)

	third := output.Files[2]
	assert.Equal(t, "boom", third.Error)
	assert.Empty(t, third.Nodes)

	assert.Equal(t, 3, output.Summary.FilesDiscovered)
	assert.Equal(t, 1, output.Summary.FilesErrored)
	assert.Equal(t, 4, output.Summary.Nodes)
	assert.Equal(t, 1, output.Summary.ByKind["Raw"])
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	opts := newOptions(reporter.FormatJSON, &out, &errOut)
	opts.Compact = true
	rep, err := reporter.New(opts)
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
	assert.True(t, json.Valid(out.Bytes()))
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(newOptions(reporter.FormatJSON, &out, &errOut))
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Contains(t, out.String(), `"files": []`)
}

func TestYAMLReporter(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(newOptions(reporter.FormatYAML, &out, &errOut))
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	var output reporter.DocumentOutput
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &output))

	require.Len(t, output.Files, 3)
	assert.Equal(t, "a.tr", output.Files[0].Path)
	assert.Equal(t, "Heading", output.Files[0].Nodes[0].Kind)
	assert.Equal(t, "script", output.Files[1].Nodes[0].Name)
	assert.Equal(t, "boom", output.Files[2].Error)
	assert.Equal(t, 2, output.Summary.FilesParsed)
}

func TestHTMLReporter(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(newOptions(reporter.FormatHTML, &out, &errOut))
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	want := "<!-- a.tr -->\n" +
		"<H1>Title</H1>\n<UL><LI><P>item</P></LI></UL>\n" +
		"\n" +
		"<!-- b.tr -->\n" +
		"<script type=\"module\">let x = 1;</script>\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, "c.tr: error: boom\n", errOut.String())
}

func TestHTMLReporter_SingleFile(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(newOptions(reporter.FormatHTML, &out, &errOut))
	require.NoError(t, err)

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/work/a.tr", Document: parseDoc(t, "/work/a.tr", "a < b\n")},
		},
	}
	_, err = rep.Report(context.Background(), result)
	require.NoError(t, err)

	assert.Equal(t, "<P>a &lt; b</P>\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(newOptions(reporter.FormatText, &out, &errOut))
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	got := out.String()
	assert.Contains(t, got, "a.tr (3 lines, 3 nodes)")
	assert.Contains(t, got, `Heading h1 "Title" L1`)
	assert.Contains(t, got, "b.tr (3 lines, 1 node)")
	assert.Contains(t, got, `Raw <script type="module"> L1-3`)
	assert.Contains(t, got, "c.tr: error: boom\n")
	assert.True(t, strings.HasSuffix(got, "2 files parsed, 6 lines, 4 nodes, 1 failed\n"))
}

func TestTextReporter_Separators(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	opts := newOptions(reporter.FormatText, &out, &errOut)
	opts.ShowSummary = false
	rep, err := reporter.New(opts)
	require.NoError(t, err)

	result := &runner.Result{Files: []runner.FileOutcome{
		{Path: "/work/bad.tr", Error: errors.New("boom")},
		{Path: "/work/a.tr", Document: parseDoc(t, "/work/a.tr", "# T\n")},
		{Path: "/work/skipped.tr"},
		{Path: "/work/last.tr", Error: errors.New("oops")},
	}}

	_, err = rep.Report(context.Background(), result)
	require.NoError(t, err)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "bad.tr: error: boom\n\na.tr ("), got)
	assert.True(t, strings.HasSuffix(got, "\n\nlast.tr: error: oops\n"), got)
	assert.NotContains(t, got, "\n\n\n")
}

func TestTextReporter_NoSummary(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	opts := newOptions(reporter.FormatText, &out, &errOut)
	opts.ShowSummary = false
	rep, err := reporter.New(opts)
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "files parsed")
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(newOptions(reporter.FormatText, &out, &errOut))
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, "No files to parse.\n", out.String())
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(newOptions(reporter.FormatSummary, &out, &errOut))
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	got := out.String()
	for _, want := range []string{
		"Nodes by Kind",
		"Files",
		"Raw Blocks",
		"Failures",
		"boom",
		"Total: 2 of 3 files parsed, 6 lines, 4 nodes, max depth 1, 1 failed",
	} {
		assert.Contains(t, got, want)
	}
	assert.Less(t, strings.Index(got, "Nodes by Kind"), strings.Index(got, "Raw Blocks"))
}

func TestSummaryReporter_NoFiles(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(newOptions(reporter.FormatSummary, &out, &errOut))
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, "No files to parse.\n", out.String())
}

func TestBuildOutput_KeepsAbsolutePaths(t *testing.T) {
	t.Parallel()

	output := reporter.BuildOutput(sampleResult(t), "")
	require.Len(t, output.Files, 3)
	assert.Equal(t, "/work/a.tr", output.Files[0].Path)
}

func TestTextReporter_Stats(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	opts := newOptions(reporter.FormatText, &out, &errOut)
	opts.Stats = true
	rep, err := reporter.New(opts)
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Files failed:      1")
	assert.Contains(t, got, "    UnorderedList:   1")
	assert.True(t, strings.HasSuffix(got, "Parse failed for some files\n"))
}

func TestNodeViews_RawForm(t *testing.T) {
	t.Parallel()

	views := reporter.NodeViews([]doctree.Node{
		&doctree.Raw{Name: "div"},
		&doctree.Raw{Name: "pre", Form: doctree.RawText},
	})

	require.Len(t, views, 2)
	assert.Empty(t, views[0].Form)
	assert.Equal(t, "text", views[1].Form)
}
