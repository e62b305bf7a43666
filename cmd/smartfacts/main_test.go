package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := resolveConfig("")
	require.NoError(t, err)

	assert.Equal(t, "index.html", cfg.Output)
	assert.Equal(t, "rebuild-dashboard", cfg.DispatchEvent)
	assert.Empty(t, cfg.Codebase)
	assert.Empty(t, cfg.Title)
}

func TestResolveConfig_MissingFile(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestResolveConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "title: [unclosed\n")

	_, err := resolveConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestResolveConfig_MissingTemplateRejected(t *testing.T) {
	path := writeConfigFile(t, "template: /nonexistent/custom.html.tmpl\n")

	_, err := resolveConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestResolveConfig_FileValuesMergeOverDefaults(t *testing.T) {
	path := writeConfigFile(t, "title: Team Dashboard\ndispatch_repo: hometap/dashboard\n")

	cfg, err := resolveConfig(path)
	require.NoError(t, err)

	// File values win, unset fields fall back to defaults.
	assert.Equal(t, "Team Dashboard", cfg.Title)
	assert.Equal(t, "hometap/dashboard", cfg.DispatchRepo)
	assert.Equal(t, "index.html", cfg.Output)
	assert.Equal(t, "rebuild-dashboard", cfg.DispatchEvent)
}

func TestResolveConfig_FileOutputOverridesDefault(t *testing.T) {
	path := writeConfigFile(t, "output: dist/dashboard.html\n")

	cfg, err := resolveConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dist/dashboard.html", cfg.Output)
}
