package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/textright/internal/ui/pretty"
	"github.com/yaklabco/textright/pkg/analysis"
	"github.com/yaklabco/textright/pkg/render/html"
	"github.com/yaklabco/textright/pkg/runner"
)

// HTMLReporter writes the rendered HTML of every parsed file. Each file is
// preceded by a comment naming it when more than one file is reported.
type HTMLReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)
	return &HTMLReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Failures go to the error writer so that the
// output stays valid HTML.
func (r *HTMLReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	separate := len(result.Files) > 1
	first := true
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		path := analysis.RelativePath(file.Path, r.opts.WorkingDir)
		if file.Error != nil {
			fmt.Fprint(r.opts.ErrorWriter, r.styles.FormatFailure(path, file.Error))
			continue
		}
		if file.Document == nil {
			continue
		}

		if !first {
			r.bw.WriteByte('\n')
		}
		first = false

		if separate {
			fmt.Fprintf(r.bw, "<!-- %s -->\n", strings.ReplaceAll(path, "--", "- -"))
		}
		if err := html.Render(r.bw, file.Document.Nodes); err != nil {
			return 0, fmt.Errorf("render %s: %w", path, err)
		}
		r.bw.WriteByte('\n')
	}

	return failedFiles(result), nil
}
