package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFrom(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("OPS_REPORT_SHEET=FromDotEnv\nOPS_LOG_LEVEL=debug\n"), 0600))

	t.Setenv("OPS_REPORT_SHEET", "")
	require.NoError(t, os.Unsetenv("OPS_REPORT_SHEET"))
	t.Setenv("OPS_LOG_LEVEL", "warn")

	loaded := loadEnvFrom(filepath.Join(dir, "missing.env"), envFile)
	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "FromDotEnv", os.Getenv("OPS_REPORT_SHEET"))
	assert.Equal(t, "warn", os.Getenv("OPS_LOG_LEVEL"), "existing variables are not overridden")
}

func TestLoadEnvFrom_NoneFound(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", loadEnvFrom(filepath.Join(dir, ".env")))
}
