// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	Input struct {
		Encoding  string `mapstructure:"encoding" yaml:"encoding"`
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"input" yaml:"input"`

	Preview struct {
		Rows int `mapstructure:"rows" yaml:"rows"`
	} `mapstructure:"preview" yaml:"preview"`

	Classifier struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"classifier" yaml:"classifier"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.labordist-csv")
	v.AddConfigPath(".labordist-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("LABORDIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Normalize escaped delimiters so env vars and YAML can spell a tab
	// as the two characters backslash-t.
	config.Input.Delimiter = unescapeDelimiter(config.Input.Delimiter)
	config.CSV.Delimiter = unescapeDelimiter(config.CSV.Delimiter)

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Output CSV defaults
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	// Raw export defaults: the payroll system emits UTF-16LE, tab-delimited
	v.SetDefault("input.encoding", "utf-16le")
	v.SetDefault("input.delimiter", "\t")

	// Preview defaults
	v.SetDefault("preview.rows", 10)

	// Classifier defaults: empty means search the standard rule file locations
	v.SetDefault("classifier.rules_file", "")
}

// unescapeDelimiter turns the printable escape "\t" into an actual tab.
func unescapeDelimiter(s string) string {
	if s == `\t` {
		return "\t"
	}
	return s
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate output CSV delimiter
	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate input encoding
	switch config.Input.Encoding {
	case "utf-8", "utf-16le", "utf-16be":
	default:
		return fmt.Errorf("invalid input encoding: %s (must be 'utf-8', 'utf-16le' or 'utf-16be')", config.Input.Encoding)
	}

	// Validate input delimiter
	if len([]rune(config.Input.Delimiter)) != 1 {
		return fmt.Errorf("input delimiter must be a single character, got: %q", config.Input.Delimiter)
	}

	// Validate preview rows
	if config.Preview.Rows < 1 {
		return fmt.Errorf("preview.rows must be at least 1, got: %d", config.Preview.Rows)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
