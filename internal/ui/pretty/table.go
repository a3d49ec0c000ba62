package pretty

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minColumnWidth   = 4
	defaultTermWidth = 100
	heavySeparator   = "═"
	lightSeparator   = "─"
)

// Alignment is the horizontal alignment of a table column.
type Alignment int

// Column alignments.
const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one table column.
type Column struct {
	Header string
	Align  Alignment

	// Path truncates from the left so the file name survives.
	Path bool
}

// Table is a titled grid of text cells.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// TableFormatter formats tables that fit the terminal width.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// Format renders table. An empty table renders as an empty string.
func (t *TableFormatter) Format(table Table) string {
	if len(table.Rows) == 0 || len(table.Columns) == 0 {
		return ""
	}

	widths := t.columnWidths(table)
	total := totalWidth(widths)

	var builder strings.Builder

	if table.Title != "" {
		builder.WriteString(t.styles.Bold.Render(table.Title))
		builder.WriteString("\n")
	}

	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	headers := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		headers[i] = t.styles.TableHeader.Render(pad(col.Header, widths[i], col.Align))
	}
	builder.WriteString(strings.Join(headers, strings.Repeat(" ", tablePadding)))
	builder.WriteString("\n")

	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, total)))
	builder.WriteString("\n")

	for _, row := range table.Rows {
		cells := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if col.Path {
				cell = truncateFilePath(cell, widths[i])
			} else {
				cell = truncateString(cell, widths[i])
			}
			cells[i] = pad(cell, widths[i], col.Align)
		}
		builder.WriteString(strings.TrimRight(strings.Join(cells, strings.Repeat(" ", tablePadding)), " "))
		builder.WriteString("\n")
	}

	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	return builder.String()
}

// columnWidths sizes each column to its widest cell, then shrinks the
// widest left-aligned column until the table fits the terminal.
func (t *TableFormatter) columnWidths(table Table) []int {
	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = max(minColumnWidth, lipgloss.Width(col.Header))
	}

	for _, row := range table.Rows {
		for i := range min(len(row), len(widths)) {
			widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
		}
	}

	if excess := totalWidth(widths) - t.termWidth; excess > 0 {
		widest := -1
		for i, col := range table.Columns {
			if col.Align == AlignLeft && (widest < 0 || widths[i] > widths[widest]) {
				widest = i
			}
		}
		if widest >= 0 {
			floor := max(minColumnWidth, lipgloss.Width(table.Columns[widest].Header))
			widths[widest] = max(floor, widths[widest]-excess)
		}
	}

	return widths
}

func totalWidth(widths []int) int {
	total := tablePadding * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

func pad(s string, width int, align Alignment) string {
	if align == AlignRight {
		return padLeft(s, width)
	}
	return padRight(s, width)
}

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= len(ellipsis) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	runes := []rune(path)
	if len(runes) <= maxLen {
		return path
	}
	if maxLen <= len(ellipsis) {
		return string(runes[len(runes)-maxLen:])
	}
	return ellipsis + string(runes[len(runes)-maxLen+len(ellipsis):])
}
