// Package anz handles ANZ bank statement reshaping
package anz

import (
	"context"
	"errors"
	"fmt"

	"wwilson/ops-scripts/cmd/common"
	"wwilson/ops-scripts/cmd/root"
	"wwilson/ops-scripts/internal/apperror"
	"wwilson/ops-scripts/internal/logging"
	"wwilson/ops-scripts/internal/statement"

	"github.com/spf13/cobra"
)

type options struct {
	input      string
	output     string
	creditCard bool
}

// Cmd represents the anz command
var Cmd = NewCommand()

// NewCommand builds the anz command with its own flag storage.
func NewCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "anz",
		Short: "Reshape an ANZ statement CSV",
		Long: `Reshape an ANZ bank statement CSV into three columns.

The transaction fields are joined into a single Description column; Amount
has thousands separators and dollar signs removed. Use -c (or -cc) for
credit card exports, which carry Card and TransactionDate columns.`,
		Args: cobra.NoArgs,
		RunE: root.RunE(func(ctx context.Context, cmd *cobra.Command, s *root.Session) error {
			return run(s, opts)
		}),
	}

	cmd.Flags().StringVarP(&opts.input, "input-file", "i", "", "Input CSV file")
	cmd.Flags().StringVarP(&opts.output, "output-filename", "f", "", "Output CSV file (default from config: output.csv)")
	cmd.Flags().BoolVarP(&opts.creditCard, "credit-card", "c", false, "Input is a credit card statement")
	_ = cmd.MarkFlagRequired("input-file")
	return cmd
}

func run(s *root.Session, opts *options) error {
	output := opts.output
	if output == "" {
		output = s.Config.Statement.OutputFile
	}
	mode := statement.ModeAccount
	if opts.creditCard {
		mode = statement.ModeCreditCard
	}

	s.Log.Info("Arguments",
		logging.Field{Key: logging.FieldInputFile, Value: opts.input},
		logging.Field{Key: logging.FieldOutputFile, Value: output},
		logging.Field{Key: logging.FieldMode, Value: mode.String()})

	summary, err := statement.NewConverter(s.Log).Convert(statement.Options{
		InputFile:          opts.input,
		OutputFile:         output,
		Mode:               mode,
		Delimiter:          s.Config.Delimiter(),
		MissingPlaceholder: s.Config.Statement.MissingPlaceholder,
	})
	if err != nil {
		return common.Fail(s.Log, failureSummary(err), err)
	}

	fmt.Fprintf(s.Out, "Wrote %d rows to %s\n", summary.Rows, output)
	return nil
}

func failureSummary(err error) string {
	var schemaErr *apperror.SchemaMismatchError
	var readErr *apperror.InputReadError
	switch {
	case errors.As(err, &schemaErr):
		return "Error when creating new Description field, you probably forgot the -cc flag or included it for a non credit card file"
	case errors.As(err, &readErr):
		return "Error while reading input csv file"
	default:
		return "Error while writing output csv file"
	}
}
