// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by the configuration.
const EnvPrefix = "OPS"

// Config represents the complete application configuration.
// Credentials are never part of it: the password is prompted for on each run.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
		Dir    string `mapstructure:"dir" yaml:"dir"`
		File   string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Statement struct {
		OutputFile         string `mapstructure:"output_file" yaml:"output_file"`
		MissingPlaceholder string `mapstructure:"missing_placeholder" yaml:"missing_placeholder"`
	} `mapstructure:"statement" yaml:"statement"`

	MMWS struct {
		Scheme         string `mapstructure:"scheme" yaml:"scheme"`
		BasePath       string `mapstructure:"base_path" yaml:"base_path"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"mmws" yaml:"mmws"`

	Report struct {
		File  string `mapstructure:"file" yaml:"file"`
		Sheet string `mapstructure:"sheet" yaml:"sheet"`
		Limit int    `mapstructure:"limit" yaml:"limit"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig loads defaults, then the optional config file, then OPS_* environment variables.
// configFile overrides the search path when non-empty.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.ops-scripts")
		v.AddConfigPath(".ops-scripts")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.file", "output.log")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("statement.output_file", "output.csv")
	v.SetDefault("statement.missing_placeholder", "nan")

	v.SetDefault("mmws.scheme", "http")
	v.SetDefault("mmws.base_path", "/mmws/api")
	v.SetDefault("mmws.timeout_seconds", 0)

	v.SetDefault("report.file", "ip_range_utilisation_output.xlsx")
	v.SetDefault("report.sheet", "ALL")
	v.SetDefault("report.limit", 0)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Log.File == "" {
		return fmt.Errorf("log.file must not be empty")
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.MMWS.Scheme != "http" && config.MMWS.Scheme != "https" {
		return fmt.Errorf("mmws.scheme must be 'http' or 'https', got: %s", config.MMWS.Scheme)
	}

	if config.MMWS.TimeoutSeconds < 0 {
		return fmt.Errorf("mmws.timeout_seconds must not be negative, got: %d", config.MMWS.TimeoutSeconds)
	}

	if config.Report.Limit < 0 {
		return fmt.Errorf("report.limit must not be negative, got: %d", config.Report.Limit)
	}

	if config.Report.Sheet == "" || len([]rune(config.Report.Sheet)) > 31 {
		return fmt.Errorf("report.sheet must be 1 to 31 characters, got: %q", config.Report.Sheet)
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}
