// Package store provides loading of classification rule data.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/labordist-csv/internal/config"
	"fjacquet/labordist-csv/internal/fileutils"
	"fjacquet/labordist-csv/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// RuleStore manages loading of general-ledger prefix rules.
type RuleStore struct {
	RulesFile string
}

// NewRuleStore creates a new store for classification rule data. An empty
// rulesFile means the standard locations are searched for "rules.yaml".
func NewRuleStore(rulesFile string) *RuleStore {
	return &RuleStore{
		RulesFile: rulesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	// Check if it's an absolute path
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	// Try each location
	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/labordist-csv/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configDir := filepath.Join(homeDir, ".config", "labordist-csv")
		configPath := filepath.Join(configDir, filename)
		if fileutils.FileExists(configPath) {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// resolveConfigFile gets the full path to a config file
func (s *RuleStore) resolveConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return filename, nil
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		return "", err
	}

	return path, nil
}

// LoadRules loads prefix rules from the YAML rules file. A missing file is
// not an error: it returns no rules, which leaves the classifier on its
// built-in mapping.
func (s *RuleStore) LoadRules() ([]models.PrefixRule, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.resolveConfigFile(filename)
	if err != nil {
		// If file doesn't exist, return no rules (not an error)
		if os.IsNotExist(err) {
			log.Debugf("Rules file not found: %s, using built-in rules", filename)
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	// Explicit absolute paths must exist.
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Rules file not found: %s, using built-in rules", filePath)
			return nil, nil
		}
		return nil, fmt.Errorf("error checking rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	// First try the proper RulesConfig structure: "rules: [...]"
	var rulesConfig models.RulesConfig
	err = yaml.Unmarshal(data, &rulesConfig)
	if err == nil && len(rulesConfig.Rules) > 0 {
		log.Debugf("Loaded %d rules from %s", len(rulesConfig.Rules), filePath)
		return rulesConfig.Rules, nil
	}

	// Fallback: a direct array without the top-level key
	var rules []models.PrefixRule
	err = yaml.Unmarshal(data, &rules)
	if err == nil && len(rules) > 0 {
		log.Debugf("Loaded %d rules from %s using direct array", len(rules), filePath)
		return rules, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	log.Warnf("Rules file %s contains no rules", filePath)
	return nil, nil
}
