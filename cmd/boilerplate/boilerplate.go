// Package boilerplate is the template for new API driven scripts.
package boilerplate

import (
	"context"

	"wwilson/ops-scripts/cmd/common"
	"wwilson/ops-scripts/cmd/root"
	"wwilson/ops-scripts/internal/logging"
	"wwilson/ops-scripts/internal/validation"

	"github.com/spf13/cobra"
)

type options struct {
	username string
	file     string
}

// Cmd represents the boilerplate command
var Cmd = NewCommand()

// NewCommand builds the boilerplate command with its own flag storage.
func NewCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "boilerplate",
		Short: "Template for new scripts",
		Long:  `Parses a username and an input file, prompts for a password and logs the run. It transforms nothing.`,
		Args:  cobra.NoArgs,
		RunE: root.RunE(func(ctx context.Context, cmd *cobra.Command, s *root.Session) error {
			return run(s, opts)
		}),
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "API username")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Input CSV file")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func run(s *root.Session, opts *options) error {
	s.Log.Info("Arguments",
		logging.Field{Key: logging.FieldUser, Value: opts.username},
		logging.Field{Key: logging.FieldInputFile, Value: opts.file})

	if err := validation.HasExtension(opts.file, ".csv"); err != nil {
		s.Log.WithError(err).Warn("Input file does not have a .csv extension",
			logging.Field{Key: logging.FieldInputFile, Value: opts.file})
	}

	password, err := s.ReadPassword("Password: ")
	if err != nil {
		return common.Fail(s.Log, "Error reading password", err)
	}
	s.Log.Debug("Password received", logging.Field{Key: "empty", Value: password == ""})
	return nil
}
