package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textright/internal/logging"
	"github.com/yaklabco/textright/internal/ui/pretty"
	"github.com/yaklabco/textright/pkg/analysis"
	"github.com/yaklabco/textright/pkg/config"
	"github.com/yaklabco/textright/pkg/fsutil"
	"github.com/yaklabco/textright/pkg/render/html"
	"github.com/yaklabco/textright/pkg/reporter"
	"github.com/yaklabco/textright/pkg/runner"
)

// htmlExtension is the extension of files written with --output-dir.
const htmlExtension = ".html"

type parseFlags struct {
	sharedFlags

	format    string
	sortBy    string
	showRaw   bool
	compact   bool
	noSummary bool
	stats     bool
}

func newParseCommand() *cobra.Command {
	var cfg config.Config
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [paths...]",
		Short: "Parse TextRight documents",
		Long:  parseLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, &cfg, flags)
		},
	}

	addParseFlags(cmd, &cfg, flags)

	return cmd
}

const parseLongDescription = `Parse TextRight documents and report their structure.

By default, parses all .tr, .txt and .md files in the current directory
and subdirectories. Specify paths to parse specific files or directories;
files named explicitly are parsed whatever their extension.

Examples:
  textright parse                         # Parse current directory
  textright parse docs/                   # Parse docs directory
  textright parse notes.tr --show-raw     # Include raw block content
  textright parse --format json           # Output trees as JSON
  textright parse --format summary        # Aggregate statistics
  textright parse --output-dir site/      # Write one HTML file per input
  textright parse --backend gfm README.md # Map Markdown onto the same tree`

func runParse(cmd *cobra.Command, args []string, cfg *config.Config, flags *parseFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	applySharedFlags(cmd, cfg, &flags.sharedFlags)

	finalCfg, workDir, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	docParser, err := newDocumentParser(finalCfg)
	if err != nil {
		return err
	}

	runOpts := finalCfg.RunnerOptions(args, workDir)

	logger.Debug("starting parse run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	start := time.Now()
	result, err := runner.New(docParser).Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("parse run failed: %w", err)
	}

	logger.Debug("parse run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldDuration, time.Since(start),
	)

	for _, file := range result.Files {
		if file.Error != nil {
			logger.Debug("file failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
		}
	}

	if finalCfg.OutputDir != "" {
		if err := writeOutputDir(ctx, cmd, finalCfg, workDir, result); err != nil {
			return err
		}
	} else if err := report(cmd, finalCfg, flags, workDir, result); err != nil {
		return err
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrParseFailures
	}

	return nil
}

func report(cmd *cobra.Command, cfg *config.Config, flags *parseFlags, workDir string, result *runner.Result) error {
	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	sortBy := analysis.SortField(flags.sortBy)
	if !sortBy.IsValid() {
		return fmt.Errorf("%w: invalid sort %q: must be count, alpha or depth", ErrUsage, flags.sortBy)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       string(cfg.Color),
		ShowSummary: !flags.noSummary,
		Stats:       flags.stats,
		ShowRaw:     flags.showRaw,
		Compact:     flags.compact,
		SortBy:      sortBy,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(cmd.Context(), result); err != nil {
		logging.FromContext(cmd.Context()).Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	return nil
}

// writeOutputDir renders every parsed file to cfg.OutputDir, mirroring the
// layout of the inputs below workDir.
func writeOutputDir(ctx context.Context, cmd *cobra.Command, cfg *config.Config, workDir string, result *runner.Result) error {
	logger := logging.FromContext(ctx)
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.ErrOrStderr()))

	var written int
	for _, file := range result.Files {
		displayPath := analysis.RelativePath(file.Path, workDir)
		if file.Error != nil {
			fmt.Fprint(cmd.ErrOrStderr(), styles.FormatFailure(displayPath, file.Error))
			continue
		}
		if file.Document == nil {
			continue
		}

		outPath, err := fsutil.OutputPath(cfg.OutputDir, workDir, file.Path, htmlExtension)
		if err != nil {
			return fmt.Errorf("output path for %s: %w", displayPath, err)
		}

		content, err := html.RenderString(file.Document.Nodes)
		if err != nil {
			return fmt.Errorf("render %s: %w", displayPath, err)
		}

		changed, err := fsutil.WriteAtomicIfChanged(ctx, outPath, []byte(content+"\n"), fsutil.DefaultFileMode)
		if err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		if changed {
			written++
			logger.Debug("wrote output", logging.FieldPath, displayPath, logging.FieldOutput, outPath)
		}
	}

	logger.Info("output written",
		logging.FieldOutput, cfg.OutputDir,
		logging.FieldFilesWritten, written,
	)

	fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(result.Stats))
	return nil
}

func addParseFlags(cmd *cobra.Command, cfg *config.Config, flags *parseFlags) {
	addSharedFlags(cmd, cfg, &flags.sharedFlags)

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, yaml, html, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&cfg.Extensions, "extensions", nil, "file extensions treated as documents")
	cmd.Flags().StringSliceVar(&cfg.Include, "include", nil, "only parse files matching these glob patterns")
	cmd.Flags().StringSliceVar(&cfg.Ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&cfg.FollowSymlinks, "follow-symlinks", false, "traverse symlinked directories")
	cmd.Flags().StringVar(&cfg.OutputDir, "output-dir", "", "write one HTML file per input into this directory")
	cmd.Flags().BoolVar(&flags.showRaw, "show-raw", false, "include raw block content in text output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line in text output")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "show node counts by kind after text output")
	cmd.Flags().StringVar(&flags.sortBy, "sort", string(analysis.SortByCount),
		"order of summary tables: count, alpha, depth")
}
