package root

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wwilson/ops-scripts/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runChild(t *testing.T, fn func(ctx context.Context, cmd *cobra.Command, s *Session) error, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	logDir := t.TempDir()

	parent := NewCommand()
	parent.AddCommand(&cobra.Command{Use: "child", RunE: RunE(fn)})
	var out bytes.Buffer
	parent.SetOut(&out)
	parent.SetArgs(append([]string{"child", "--log-dir", logDir}, args...))
	err := parent.Execute()

	logs, _ := os.ReadFile(filepath.Join(logDir, "output.log"))
	return out.String(), string(logs), err
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := NewCommand()
	assert.Equal(t, "ops-scripts", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().ShorthandLookup("d"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(FlagConfig))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(FlagLogDir))
	assert.True(t, cmd.SilenceErrors)
}

func TestRunE_Success(t *testing.T) {
	var session *Session
	out, logs, err := runChild(t, func(ctx context.Context, cmd *cobra.Command, s *Session) error {
		session = s
		s.Log.Debug("hidden unless debug")
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "output.csv", session.Config.Statement.OutputFile)
	assert.False(t, session.Started.IsZero())
	assert.Contains(t, out, "***START SCRIPT***")
	assert.Contains(t, out, "Script execution time")
	assert.Contains(t, logs, "***END SCRIPT***")
	assert.NotContains(t, logs, "hidden unless debug")
}

func TestRunE_Debug(t *testing.T) {
	_, logs, err := runChild(t, func(ctx context.Context, cmd *cobra.Command, s *Session) error {
		s.Log.Debug("visible in debug")
		return nil
	}, "-d")
	require.NoError(t, err)
	assert.Contains(t, logs, "visible in debug")
}

func TestLogLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "warn"

	cmd := NewCommand()
	assert.Equal(t, "warn", logLevel(cmd, cfg))

	require.NoError(t, cmd.ParseFlags([]string{"-d"}))
	assert.Equal(t, "trace", logLevel(cmd, cfg))
}

func TestRunE_Failure(t *testing.T) {
	boom := errors.New("boom")
	out, logs, err := runChild(t, func(ctx context.Context, cmd *cobra.Command, s *Session) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.NotContains(t, out, "Script execution time")
	assert.Contains(t, logs, "with errors")
}

func TestRunE_BadConfig(t *testing.T) {
	called := false
	_, _, err := runChild(t, func(ctx context.Context, cmd *cobra.Command, s *Session) error {
		called = true
		return nil
	}, "--config", "does-not-exist.yaml")
	require.Error(t, err)
	assert.False(t, called)
}
