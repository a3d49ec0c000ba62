package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/textright/internal/ui/pretty"
	"github.com/yaklabco/textright/pkg/analysis"
)

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	tables *pretty.TableFormatter
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)
	return &SummaryRenderer{
		opts:   opts,
		styles: styles,
		tables: pretty.NewTableFormatter(styles, getTerminalWidth(opts.Writer)),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Files == 0 {
		fmt.Fprintln(r.out, r.styles.Dim.Render("No files to parse."))
		return nil
	}

	sections := []string{
		r.tables.Format(kindTable(report.ByKind)),
		r.tables.Format(fileTable(report.ByFile)),
		r.tables.Format(rawTable(report.RawBlocks)),
		r.tables.Format(failureTable(report.Failures)),
	}
	for _, section := range sections {
		if section == "" {
			continue
		}
		fmt.Fprint(r.out, section)
		fmt.Fprintln(r.out)
	}

	r.renderTotals(report.Totals)
	return nil
}

func kindTable(kinds []analysis.KindAnalysis) pretty.Table {
	table := pretty.Table{
		Title: "Nodes by Kind",
		Columns: []pretty.Column{
			{Header: "Kind"},
			{Header: "Count", Align: pretty.AlignRight},
			{Header: "Files", Align: pretty.AlignRight},
		},
	}
	for _, kind := range kinds {
		table.Rows = append(table.Rows, []string{
			kind.Kind,
			strconv.Itoa(kind.Count),
			strconv.Itoa(len(kind.Files)),
		})
	}
	return table
}

func fileTable(files []analysis.FileAnalysis) pretty.Table {
	table := pretty.Table{
		Title: "Files",
		Columns: []pretty.Column{
			{Header: "File", Path: true},
			{Header: "Lines", Align: pretty.AlignRight},
			{Header: "Nodes", Align: pretty.AlignRight},
			{Header: "Depth", Align: pretty.AlignRight},
			{Header: "Raw", Align: pretty.AlignRight},
			{Header: "Tags"},
		},
	}
	for _, file := range files {
		table.Rows = append(table.Rows, []string{
			file.Path,
			strconv.Itoa(file.Lines),
			strconv.Itoa(file.Nodes),
			strconv.Itoa(file.MaxDepth),
			strconv.Itoa(file.RawBlocks),
			strings.Join(file.Tags, ","),
		})
	}
	return table
}

func rawTable(raws []analysis.RawEntry) pretty.Table {
	table := pretty.Table{
		Title: "Raw Blocks",
		Columns: []pretty.Column{
			{Header: "File", Path: true},
			{Header: "Line", Align: pretty.AlignRight},
			{Header: "Name"},
			{Header: "Language"},
			{Header: "Lines", Align: pretty.AlignRight},
			{Header: "Closed"},
		},
	}
	for _, raw := range raws {
		closed := "yes"
		if !raw.Closed {
			closed = "no"
		}
		table.Rows = append(table.Rows, []string{
			raw.FilePath,
			strconv.Itoa(raw.StartLine),
			raw.Name,
			raw.Language,
			strconv.Itoa(raw.Lines),
			closed,
		})
	}
	return table
}

func failureTable(failures []analysis.FailureEntry) pretty.Table {
	table := pretty.Table{
		Title: "Failures",
		Columns: []pretty.Column{
			{Header: "File", Path: true},
			{Header: "Error"},
		},
	}
	for _, failure := range failures {
		table.Rows = append(table.Rows, []string{failure.FilePath, failure.Message})
	}
	return table
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	parts := []string{
		fmt.Sprintf("%d of %d files parsed", totals.FilesParsed, totals.Files),
		fmt.Sprintf("%d lines", totals.Lines),
		fmt.Sprintf("%d nodes", totals.Nodes),
		fmt.Sprintf("max depth %d", totals.MaxDepth),
	}
	if totals.HasUnclosedRaw() {
		parts = append(parts, r.styles.Warning.Render(fmt.Sprintf("%d unclosed raw", totals.UnclosedRaw)))
	}
	if totals.HasFailures() {
		parts = append(parts, r.styles.Error.Render(fmt.Sprintf("%d failed", totals.FilesFailed)))
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+strings.Join(parts, ", "))
}
