package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/textright/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files parsed, 42 lines, 17 nodes, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No files to parse.") + "\n"
	}

	parts := []string{
		s.Success.Render(plural(stats.FilesParsed, "file") + " parsed"),
		plural(stats.LinesTotal, "line"),
		plural(stats.NodesTotal, "node"),
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(strconv.Itoa(stats.FilesErrored)+" failed"))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files parsed:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesParsed)) + "\n")

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Lines:             " +
		s.SummaryValue.Render(strconv.Itoa(stats.LinesTotal)) + "\n")
	builder.WriteString("  Nodes:             " +
		s.SummaryValue.Render(strconv.Itoa(stats.NodesTotal)) + "\n")

	kinds := make([]string, 0, len(stats.NodesByKind))
	for kind := range stats.NodesByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		label := fmt.Sprintf("    %s:", kind)
		builder.WriteString(padRight(label, len("  Files discovered:  ")) +
			s.SummaryValue.Render(strconv.Itoa(stats.NodesByKind[kind])) + "\n")
	}

	builder.WriteString("\n")

	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Parse failed for some files"))
	} else {
		builder.WriteString(s.Success.Render("Parse succeeded"))
	}
	builder.WriteString("\n")

	return builder.String()
}
