package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a Config that passes validation, for mutation tests.
func validTestConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.CSV.Delimiter = ","
	config.CSV.IncludeHeaders = true
	config.Input.Encoding = "utf-16le"
	config.Input.Delimiter = "\t"
	config.Preview.Rows = 10
	return config
}

func TestInitializeConfig_Defaults(t *testing.T) {
	// Clear any existing environment variables
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Test default values
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.True(t, config.CSV.IncludeHeaders)
	assert.Equal(t, "utf-16le", config.Input.Encoding)
	assert.Equal(t, "\t", config.Input.Delimiter)
	assert.Equal(t, 10, config.Preview.Rows)
	assert.Equal(t, "", config.Classifier.RulesFile)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	// Clear any existing environment variables
	clearTestEnvVars(t)

	// Set test environment variables
	testEnvVars := map[string]string{
		"LABORDIST_LOG_LEVEL":            "debug",
		"LABORDIST_LOG_FORMAT":           "json",
		"LABORDIST_CSV_DELIMITER":        ";",
		"LABORDIST_INPUT_ENCODING":       "utf-8",
		"LABORDIST_INPUT_DELIMITER":      `\t`,
		"LABORDIST_PREVIEW_ROWS":         "25",
		"LABORDIST_CLASSIFIER_RULES_FILE": "/etc/labordist/rules.yaml",
	}

	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Test environment variable overrides
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "utf-8", config.Input.Encoding)
	assert.Equal(t, "\t", config.Input.Delimiter, "escaped tab must be unescaped")
	assert.Equal(t, 25, config.Preview.Rows)
	assert.Equal(t, "/etc/labordist/rules.yaml", config.Classifier.RulesFile)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	// Clear any existing environment variables
	clearTestEnvVars(t)

	// Create temporary config file
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
input:
  encoding: "utf-8"
  delimiter: ";"
preview:
  rows: 5
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Change to temp directory so config file is found
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Test config file values
	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, "utf-8", config.Input.Encoding)
	assert.Equal(t, ";", config.Input.Delimiter)
	assert.Equal(t, 5, config.Preview.Rows)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	// Clear any existing environment variables
	clearTestEnvVars(t)

	// Create temporary config file
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
preview:
  rows: 5
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Set environment variables that should override config file
	t.Setenv("LABORDIST_LOG_LEVEL", "error")
	t.Setenv("LABORDIST_PREVIEW_ROWS", "50")

	// Change to temp directory
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Test precedence: env vars should override config file
	assert.Equal(t, "error", config.Log.Level)  // env var wins
	assert.Equal(t, "|", config.CSV.Delimiter)  // config file value
	assert.Equal(t, 50, config.Preview.Rows)    // env var wins
	assert.Equal(t, "text", config.Log.Format)  // default survives
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name: "invalid log level",
			modifyConfig: func(c *Config) {
				c.Log.Level = "invalid"
			},
			expectError: "invalid log level",
		},
		{
			name: "invalid log format",
			modifyConfig: func(c *Config) {
				c.Log.Format = "invalid"
			},
			expectError: "invalid log format",
		},
		{
			name: "invalid CSV delimiter",
			modifyConfig: func(c *Config) {
				c.CSV.Delimiter = "abc"
			},
			expectError: "CSV delimiter must be a single character",
		},
		{
			name: "invalid input encoding",
			modifyConfig: func(c *Config) {
				c.Input.Encoding = "latin-1"
			},
			expectError: "invalid input encoding",
		},
		{
			name: "invalid input delimiter",
			modifyConfig: func(c *Config) {
				c.Input.Delimiter = "||"
			},
			expectError: "input delimiter must be a single character",
		},
		{
			name: "invalid preview rows",
			modifyConfig: func(c *Config) {
				c.Preview.Rows = 0
			},
			expectError: "preview.rows must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validTestConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateConfig_ValidValues(t *testing.T) {
	assert.NoError(t, validateConfig(validTestConfig()))

	utf16be := validTestConfig()
	utf16be.Input.Encoding = "utf-16be"
	assert.NoError(t, validateConfig(utf16be))

	utf8 := validTestConfig()
	utf8.Input.Encoding = "utf-8"
	assert.NoError(t, validateConfig(utf8))
}

func TestUnescapeDelimiter(t *testing.T) {
	assert.Equal(t, "\t", unescapeDelimiter(`\t`))
	assert.Equal(t, "\t", unescapeDelimiter("\t"))
	assert.Equal(t, ",", unescapeDelimiter(","))
	assert.Equal(t, ";", unescapeDelimiter(";"))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{name: "text format info level", level: "info", format: "text"},
		{name: "json format debug level", level: "debug", format: "json"},
		{name: "invalid level falls back to info", level: "bogus", format: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validTestConfig()
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)
			assert.NotNil(t, logger)
		})
	}
}

// Helper function to clear test environment variables
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"LABORDIST_LOG_LEVEL",
		"LABORDIST_LOG_FORMAT",
		"LABORDIST_CSV_DELIMITER",
		"LABORDIST_CSV_INCLUDE_HEADERS",
		"LABORDIST_INPUT_ENCODING",
		"LABORDIST_INPUT_DELIMITER",
		"LABORDIST_PREVIEW_ROWS",
		"LABORDIST_CLASSIFIER_RULES_FILE",
	}

	for _, envVar := range envVars {
		if err := os.Unsetenv(envVar); err != nil {
			// Log warning but continue - this is test cleanup
			fmt.Printf("Warning: failed to unset environment variable %s: %v\n", envVar, err)
		}
	}
}
