package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textright/internal/configloader"
	"github.com/yaklabco/textright/internal/logging"
	"github.com/yaklabco/textright/pkg/config"
)

// defaultConfigFile is the file written by init when --output is not set.
const defaultConfigFile = ".textright.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new textright configuration file",
		Long: `Create a new .textright.yml configuration file in the current directory
with sensible defaults.

Examples:
  textright init                      Create .textright.yml with defaults commented out
  textright init --full               Write every setting explicitly
  textright init --format json        Write JSON instead of YAML
  textright init --output custom.yml  Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every setting instead of commenting optional ones out")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: "+defaultConfigFile+")")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	if flags.format != "yaml" && flags.format != "json" {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	opts := config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	}

	err = configloader.WriteTemplate(cmd.Context(), absPath, opts, flags.force)
	if errors.Is(err, configloader.ErrConfigExists) {
		return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
	}
	if err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}
