package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCommand_UnsupportedFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract", "--format", "xml")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unsupported format")
}

func TestExtractCommand_JSONToFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	root := writeCodebaseTree(t)
	outputFile := filepath.Join(t.TempDir(), "insights.json")

	cmd := exec.Command(binaryPath, "extract", "--codebase", root, "--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "Command failed with output: %s", string(output))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"insights"`)
	assert.Contains(t, string(data), `"id": "SF-1"`)
	assert.Contains(t, string(data), `"status": "live"`)
}

func TestExtractCommand_CSVToStdout(t *testing.T) {
	binaryPath := getBinaryPath(t)
	root := writeCodebaseTree(t)

	cmd := exec.Command(binaryPath, "extract", "--codebase", root, "--format", "csv")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "Command failed with output: %s", string(output))

	assert.Contains(t, string(output), "ID,Status,Priority,Type")
	assert.Contains(t, string(output), "SF-1")
}

func TestExtractCommand_CodebaseFlagOverridesConfig(t *testing.T) {
	binaryPath := getBinaryPath(t)
	root := writeCodebaseTree(t)
	tmpDir := t.TempDir()

	// The config file points at a root with no sources; the flag supplies a
	// valid one and must win.
	emptyRoot := t.TempDir()
	configFile := filepath.Join(tmpDir, "dashboard.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("codebase: "+emptyRoot+"\n"), 0o644))

	cmd := exec.Command(binaryPath, "extract", "--config", configFile, "--codebase", root)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "Command failed with output: %s", string(output))
	assert.Contains(t, string(output), `"id": "SF-1"`)
}
