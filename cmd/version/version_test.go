package version_test

import (
	"bytes"
	"runtime"
	"testing"

	"fjacquet/labordist-csv/cmd/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand_Metadata(t *testing.T) {
	assert.Equal(t, "version", version.Cmd.Use)
	assert.Contains(t, version.Cmd.Short, "version")
	assert.NotNil(t, version.Cmd.Run)
}

func TestVersionCommand_Output(t *testing.T) {
	var buf bytes.Buffer
	version.Cmd.SetOut(&buf)
	defer version.Cmd.SetOut(nil)

	require.NotPanics(t, func() {
		version.Cmd.Run(version.Cmd, []string{})
	})

	out := buf.String()
	assert.Contains(t, out, "labordist-csv")
	assert.Contains(t, out, "Version:    "+version.Version)
	assert.Contains(t, out, "Build Date: "+version.BuildDate)
	assert.Contains(t, out, "Go Version: "+runtime.Version())
}

func TestVersionDefaults(t *testing.T) {
	assert.NotEmpty(t, version.Version)
	assert.NotEmpty(t, version.BuildDate)
}
