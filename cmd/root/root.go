// Package root contains the root command for the application and the per-run
// session shared by every subcommand.
package root

import (
	"context"
	"fmt"
	"io"
	"time"

	"wwilson/ops-scripts/cmd/common"
	"wwilson/ops-scripts/internal/config"
	"wwilson/ops-scripts/internal/logging"

	"github.com/spf13/cobra"
)

// Persistent flag names.
const (
	FlagDebug  = "debug"
	FlagConfig = "config"
	FlagLogDir = "log-dir"
)

// PasswordPrompt reads the password for commands that authenticate. Tests replace it.
var PasswordPrompt common.PasswordReader = common.ReadPassword

// Cmd is the root command
var Cmd = NewCommand()

// NewCommand builds a root command with its persistent flags and no subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops-scripts",
		Short: "Small automation scripts for bank statements and IP address management reports.",
		Long: `ops-scripts bundles independent command line utilities:
  anz           reshape an ANZ bank statement CSV into Date, Description, Amount
  range-report  export the IP range utilisation of a Men & Mice address space to Excel
  boilerplate   template for new API driven scripts`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Welcome to ops-scripts!")
			fmt.Fprintln(cmd.OutOrStdout(), "Use --help to see available commands")
		},
	}

	cmd.PersistentFlags().BoolP(FlagDebug, "d", false, "Enable debug mode")
	cmd.PersistentFlags().String(FlagConfig, "", "Config file (default is ./config.yaml)")
	cmd.PersistentFlags().String(FlagLogDir, "", "Directory for log files (default from config: logs)")
	return cmd
}

// Session is the state of one run: configuration, logger and start time.
// It is built once per command invocation and handed to the command body.
type Session struct {
	Config       *config.Config
	Log          logging.Logger
	Started      time.Time
	Out          io.Writer
	ReadPassword func(prompt string) (string, error)

	closer io.Closer
}

// LoadConfig reads the configuration named by the --config flag, if any.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString(FlagConfig)
	cfg, err := config.InitializeConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return cfg, nil
}

// Start loads configuration, opens the log file and logs the start of the run.
func Start(cmd *cobra.Command) (*Session, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	level := logLevel(cmd, cfg)
	logDir := cfg.Log.Dir
	if dir, _ := cmd.Flags().GetString(FlagLogDir); dir != "" {
		logDir = dir
	}

	logger, closer, err := logging.NewFileLogger(logDir, cfg.Log.File, level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Config:  cfg,
		Log:     logger.WithField("command", cmd.Name()),
		Started: time.Now(),
		Out:     cmd.OutOrStdout(),
		closer:  closer,
	}
	s.ReadPassword = func(prompt string) (string, error) {
		return PasswordPrompt(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt)
	}

	fmt.Fprintln(s.Out, "***START SCRIPT***")
	s.Log.Info("***START SCRIPT***", logging.Field{Key: "started", Value: s.Started.Format(logging.TimestampFormat)})
	return s, nil
}

// logLevel is the configured level, or trace when -d is set.
func logLevel(cmd *cobra.Command, cfg *config.Config) string {
	if debug, _ := cmd.Flags().GetBool(FlagDebug); debug {
		return "trace"
	}
	return cfg.Log.Level
}

// Finish logs the end of the run with its duration and closes the log file.
func (s *Session) Finish(runErr error) {
	runtime := time.Since(s.Started)
	if runErr != nil {
		s.Log.WithError(runErr).Error("***END SCRIPT*** with errors", logging.Field{Key: logging.FieldDuration, Value: runtime.String()})
	} else {
		s.Log.Info("***END SCRIPT***", logging.Field{Key: logging.FieldDuration, Value: runtime.String()})
		fmt.Fprintln(s.Out, "***END SCRIPT***")
		fmt.Fprintf(s.Out, "Script execution time: %s\n", runtime)
	}

	if s.closer != nil {
		_ = s.closer.Close()
	}
}

// RunE adapts a command body to cobra, wrapping it in a Session.
func RunE(fn func(ctx context.Context, cmd *cobra.Command, s *Session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		s, err := Start(cmd)
		if err != nil {
			return err
		}
		defer func() { s.Finish(err) }()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return fn(ctx, cmd, s)
	}
}
