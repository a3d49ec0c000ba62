package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/textright/internal/ui/pretty"
	"github.com/yaklabco/textright/pkg/analysis"
	"github.com/yaklabco/textright/pkg/runner"
)

// TextReporter formats results as styled document trees.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	tree   *pretty.TreeFormatter
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)
	return &TextReporter{
		opts:   opts,
		styles: styles,
		tree: pretty.NewTreeFormatter(styles, pretty.NewHighlighter(colorEnabled), pretty.TreeOptions{
			ShowRaw:      opts.ShowRaw,
			ContentWidth: getTerminalWidth(opts.Writer) / 2,
		}),
		bw: bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(runner.Stats{}))
		}
		return 0, nil
	}

	printed := false
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if file.Error == nil && file.Document == nil {
			continue
		}

		if printed {
			fmt.Fprintln(r.bw)
		}
		printed = true

		path := analysis.RelativePath(file.Path, r.opts.WorkingDir)
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFailure(path, file.Error))
			continue
		}
		fmt.Fprint(r.bw, r.tree.FormatDocument(path, file.Document))
	}

	switch {
	case r.opts.Stats:
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	case r.opts.ShowSummary:
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failedFiles(result), nil
}
