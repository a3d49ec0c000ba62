package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textright/internal/logging"
	"github.com/yaklabco/textright/pkg/config"
	"github.com/yaklabco/textright/pkg/fsutil"
	"github.com/yaklabco/textright/pkg/render/html"
)

// stdinName is the document path used for input read from stdin.
const stdinName = "<stdin>"

type renderFlags struct {
	sharedFlags

	output string
}

func newRenderCommand() *cobra.Command {
	var cfg config.Config
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document as HTML",
		Long: `Render a single document as HTML.

The document is read from the named file, or from standard input when no
file is given. The HTML is written to standard output unless --output names
a file, which is replaced atomically.

Examples:
  textright render notes.tr
  textright render notes.tr -o notes.html
  cat notes.tr | textright render`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &cfg, flags)
		},
	}

	addSharedFlags(cmd, &cfg, &flags.sharedFlags)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to this file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, cfg *config.Config, flags *renderFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	applySharedFlags(cmd, cfg, &flags.sharedFlags)

	finalCfg, workDir, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	docParser, err := newDocumentParser(finalCfg)
	if err != nil {
		return err
	}

	path := stdinName
	var content []byte
	if len(args) == 1 {
		path = args[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		content, err = fsutil.ReadFile(ctx, path, fsutil.DefaultMaxFileSize)
	} else {
		content, err = fsutil.ReadAll(cmd.InOrStdin(), fsutil.DefaultMaxFileSize)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, err := docParser.Parse(ctx, path, content)
	if err != nil {
		return err
	}

	out, err := html.RenderString(doc.Nodes)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	out += "\n"

	logger.Debug("rendered document",
		logging.FieldPath, path,
		logging.FieldLines, doc.LineCount(),
		logging.FieldBackend, finalCfg.Backend,
	)

	if flags.output == "" {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	if err := fsutil.WriteAtomic(ctx, flags.output, []byte(out), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Debug("wrote output", logging.FieldOutput, flags.output)

	return nil
}
