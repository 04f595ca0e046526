// Package rangereport handles the IP range utilisation report command
package rangereport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wwilson/ops-scripts/cmd/common"
	"wwilson/ops-scripts/cmd/root"
	"wwilson/ops-scripts/internal/apperror"
	"wwilson/ops-scripts/internal/logging"
	"wwilson/ops-scripts/internal/mmws"
	"wwilson/ops-scripts/internal/report"
	"wwilson/ops-scripts/internal/validation"

	"github.com/spf13/cobra"
)

type options struct {
	server       string
	username     string
	addressSpace string
	output       string
	limit        int
}

// Cmd represents the range-report command
var Cmd = NewCommand()

// NewCommand builds the range-report command with its own flag storage.
func NewCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "range-report",
		Short: "Export IP range utilisation to Excel",
		Long: `Export the IP ranges of a Men & Mice address space to an Excel workbook.

The address space is given by numeric ID or exact name and becomes the
session's current address space if it is not already. The password is read
from the terminal.`,
		Args: cobra.NoArgs,
		RunE: root.RunE(func(ctx context.Context, cmd *cobra.Command, s *root.Session) error {
			if !cmd.Flags().Changed("limit") {
				opts.limit = s.Config.Report.Limit
			}
			return run(ctx, s, opts)
		}),
	}

	cmd.Flags().StringVarP(&opts.server, "server", "s", "", "Men & Mice web service host")
	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "API username")
	cmd.Flags().StringVarP(&opts.addressSpace, "address-space", "a", "", "Address space ID or name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output xlsx file (default from config: ip_range_utilisation_output.xlsx)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum number of ranges to request (0 for no limit)")
	_ = cmd.MarkFlagRequired("server")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("address-space")
	return cmd
}

func run(ctx context.Context, s *root.Session, opts *options) error {
	if opts.limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", opts.limit)
	}
	output := opts.output
	if output == "" {
		output = s.Config.Report.File
	}
	if err := validation.HasExtension(output, ".xlsx"); err != nil {
		s.Log.WithError(err).Warn("Output file does not have a .xlsx extension",
			logging.Field{Key: logging.FieldOutputFile, Value: output})
	}

	s.Log.Info("Arguments",
		logging.Field{Key: logging.FieldServer, Value: opts.server},
		logging.Field{Key: logging.FieldUser, Value: opts.username},
		logging.Field{Key: logging.FieldAddressSpace, Value: opts.addressSpace},
		logging.Field{Key: logging.FieldOutputFile, Value: output})

	password, err := s.ReadPassword("Password: ")
	if err != nil {
		return common.Fail(s.Log, "Error reading password", err)
	}

	client, err := mmws.NewClient(mmws.Options{
		Scheme:   s.Config.MMWS.Scheme,
		Server:   opts.server,
		BasePath: s.Config.MMWS.BasePath,
		Username: opts.username,
		Password: password,
		Timeout:  time.Duration(s.Config.MMWS.TimeoutSeconds) * time.Second,
		Logger:   s.Log,
	})
	if err != nil {
		return common.Fail(s.Log, "Error creating API client", err)
	}
	s.Log.Info("Connecting to API", logging.Field{Key: logging.FieldURL, Value: client.BaseURL()})

	result, err := report.NewBuilder(client, s.Log).Build(ctx, report.Options{
		AddressSpace: opts.addressSpace,
		Limit:        opts.limit,
		OutputFile:   output,
		Sheet:        s.Config.Report.Sheet,
	})
	if err != nil {
		return common.Fail(s.Log, failureSummary(err), err)
	}

	fmt.Fprintf(s.Out, "Completed building report %s with %d ranges from address space %s\n",
		result.OutputFile, result.Rows, result.AddressSpace.Name)
	return nil
}

func failureSummary(err error) string {
	var resolveErr *apperror.AddressSpaceResolutionError
	var notFound *apperror.NotFoundError
	var transportErr *apperror.APITransportError
	var responseErr *apperror.APIResponseError
	switch {
	case errors.As(err, &resolveErr):
		return "Address space not found, check the ID or name"
	case errors.As(err, &notFound):
		return "API returned 404"
	case errors.As(err, &transportErr):
		return "Error connecting to the API"
	case errors.As(err, &responseErr):
		return "API returned an error"
	default:
		return "Error building report"
	}
}
