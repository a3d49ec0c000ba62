package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textright/internal/configloader"
	"github.com/yaklabco/textright/internal/ui/pretty"
)

const formatJSON = "json"

type envFlags struct {
	format string
}

func newEnvCommand() *cobra.Command {
	flags := &envFlags{}

	cmd := &cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Long: `List the environment variables that override configuration files.
Command-line flags take precedence over every variable listed here.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars := configloader.ListEnvVars()

			if flags.format == formatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(vars); err != nil {
					return fmt.Errorf("encoding environment variables: %w", err)
				}
				return nil
			}

			color, err := cmd.Flags().GetString("color")
			if err != nil {
				color = "auto"
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(color, cmd.OutOrStdout()))

			table := pretty.Table{
				Title: "Environment Variables",
				Columns: []pretty.Column{
					{Header: "Name"},
					{Header: "Description"},
				},
			}
			for _, envVar := range vars {
				table.Rows = append(table.Rows, []string{envVar.Name, envVar.Description})
			}

			fmt.Fprint(cmd.OutOrStdout(), pretty.NewTableFormatter(styles, 0).Format(table))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}
