package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/labordist-csv/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(t, err)
}

func TestNewRuleStore(t *testing.T) {
	store := NewRuleStore("rules.yaml")
	assert.Equal(t, "rules.yaml", store.RulesFile)

	empty := NewRuleStore("")
	assert.Equal(t, "", empty.RulesFile)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()

	// Create a test file
	testFile := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(testFile, []byte("test content"), 0600)
	assert.NoError(t, err)

	store := NewRuleStore("")

	// Test with absolute path that exists
	file, err := store.FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	// Test with file that doesn't exist
	_, err = store.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadRules_TopLevelKey(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "rules.yaml")
	content := `rules:
  - prefix: "51"
    type: "Salary"
  - prefix: "52"
    type: "Benefit"
  - prefix: "53"
    type: "Other"
`
	writeFile(t, file, content)

	store := NewRuleStore(file)
	rules, err := store.LoadRules()
	assert.NoError(t, err)
	assert.Len(t, rules, 3)
	assert.Equal(t, models.PrefixRule{Prefix: "51", Type: "Salary"}, rules[0])
	assert.Equal(t, models.PrefixRule{Prefix: "53", Type: "Other"}, rules[2])
}

func TestLoadRules_DirectArray(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "rules.yaml")
	content := `- prefix: "55"
  type: "Benefit"
`
	writeFile(t, file, content)

	store := NewRuleStore(file)
	rules, err := store.LoadRules()
	assert.NoError(t, err)
	assert.Len(t, rules, 1)
	assert.Equal(t, "55", rules[0].Prefix)
	assert.Equal(t, "Benefit", rules[0].Type)
}

func TestLoadRules_MissingFile(t *testing.T) {
	dir := t.TempDir()

	// Missing file: should return no rules, not an error
	store := NewRuleStore(filepath.Join(dir, "missing.yaml"))
	rules, err := store.LoadRules()
	assert.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadRules_Malformed(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "rules.yaml")
	content := `{malformed: yaml: content}`
	writeFile(t, file, content)

	store := NewRuleStore(file)
	_, err := store.LoadRules()
	assert.Error(t, err)
}

func TestLoadRules_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "rules.yaml")
	writeFile(t, file, "")

	store := NewRuleStore(file)
	rules, err := store.LoadRules()
	assert.NoError(t, err)
	assert.Empty(t, rules)
}
