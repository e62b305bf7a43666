package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the smartfacts binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "smartfacts"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

const sampleDefinitionsSource = `
SMART_FACTS = [
    SmartFactDefinition(
        id="SF-1",
        content="Home equity investments do not add monthly payments.",
        status="live",
        category="home-equity",
        priority=1,
    ),
]
`

const sampleTemplatesSource = `
DISPLAY_TEMPLATES = {}
`

// writeCodebaseTree lays out a minimal codebase with the two smart_facts
// source files and returns its root.
func writeCodebaseTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "eng_portals", "portals", "portals", "apps", "smart_facts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create source dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "definitions.py"), []byte(sampleDefinitionsSource), 0o644); err != nil {
		t.Fatalf("failed to write definitions: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "display_templates.py"), []byte(sampleTemplatesSource), 0o644); err != nil {
		t.Fatalf("failed to write display templates: %v", err)
	}
	return root
}
