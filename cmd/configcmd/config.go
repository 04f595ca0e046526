// Package configcmd prints the effective configuration
package configcmd

import (
	"fmt"

	"wwilson/ops-scripts/cmd/root"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the config command
var Cmd = NewCommand()

// NewCommand builds the config command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after defaults, config file and OPS_ environment variables are applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.LoadConfig(cmd)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("error encoding configuration: %w", err)
			}
			return enc.Close()
		},
	}
}
