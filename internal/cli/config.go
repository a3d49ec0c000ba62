package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textright/internal/configloader"
	"github.com/yaklabco/textright/internal/logging"
	"github.com/yaklabco/textright/pkg/config"
	"github.com/yaklabco/textright/pkg/parser"
	goldmarkparser "github.com/yaklabco/textright/pkg/parser/goldmark"
	"github.com/yaklabco/textright/pkg/runner"
)

// sharedFlags are the parser flags accepted by both parse and render.
type sharedFlags struct {
	backend string
}

func addSharedFlags(cmd *cobra.Command, cfg *config.Config, flags *sharedFlags) {
	cmd.Flags().StringVar(&flags.backend, "backend", string(config.BackendTextRight),
		"input parser: textright, commonmark, gfm")
	cmd.Flags().BoolVar(&cfg.DisallowSimpleParagraphs, "disallow-simple-paragraphs", false,
		"stop indented list markers from interrupting a paragraph")
	cmd.Flags().IntVar(&cfg.MaxDepth, "max-depth", 0,
		"maximum nesting of list items and quotes (0 = default)")
}

// applySharedFlags copies explicitly set string flags into cfg so that
// their defaults do not mask config files or the environment.
func applySharedFlags(cmd *cobra.Command, cfg *config.Config, flags *sharedFlags) {
	if cmd.Flags().Changed("backend") {
		cfg.Backend = config.Backend(flags.backend)
	}
	if cmd.Flags().Changed("color") {
		if color, err := cmd.Flags().GetString("color"); err == nil {
			cfg.Color = config.ColorMode(color)
		}
	}
}

// loadConfig resolves the effective configuration for cmd.
// It returns the configuration and the working directory.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldBackend, cfg.Backend,
		logging.FieldMaxDepth, cfg.MaxDepth,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFormat, cfg.Format,
	)

	return cfg, workDir, nil
}

// newDocumentParser creates the parser selected by cfg.Backend.
func newDocumentParser(cfg *config.Config) (runner.DocumentParser, error) {
	switch cfg.Backend {
	case config.BackendTextRight, "":
		return parser.New(cfg.ParserOptions()), nil
	case config.BackendCommonMark, config.BackendGFM:
		return goldmarkparser.New(string(cfg.Backend)).WithMaxDepth(cfg.MaxDepth), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrUsage, cfg.Backend)
	}
}
