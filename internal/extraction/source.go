package extraction

import (
	"os"
	"path/filepath"
)

// Repository-relative locations of the two source files inside the codebase.
const (
	DefinitionsRelPath      = "eng_portals/portals/portals/apps/smart_facts/definitions.py"
	DisplayTemplatesRelPath = "eng_portals/portals/portals/apps/smart_facts/display_templates.py"
)

// CodebasePathEnv overrides codebase root discovery when set.
const CodebasePathEnv = "CODEBASE_PATH"

// defaultCodebaseRoots are probed in order when no explicit root is given.
// The dashboard repo usually sits next to (or inside) the main codebase
// checkout.
var defaultCodebaseRoots = []string{
	"../hometap",
	"../../hometap",
	"/tmp/codebase",
}

// ResolveCodebaseRoot returns the first existing codebase root, trying the
// explicit override, then the CODEBASE_PATH environment variable, then the
// default candidate locations.
func ResolveCodebaseRoot(override string) (string, error) {
	candidates := make([]string, 0, len(defaultCodebaseRoots)+2)
	if override != "" {
		candidates = append(candidates, override)
	}
	if env := os.Getenv(CodebasePathEnv); env != "" {
		candidates = append(candidates, env)
	}
	candidates = append(candidates, defaultCodebaseRoots...)

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}
	return "", &SourceError{Path: override, Message: "no codebase root found (set CODEBASE_PATH or pass --codebase)"}
}

// Sources holds the raw contents of the two definition files.
type Sources struct {
	Definitions      string
	DisplayTemplates string
}

// LoadSources reads both source files from the codebase root. A missing or
// unreadable file is fatal.
func LoadSources(root string) (*Sources, error) {
	definitions, err := readSource(filepath.Join(root, DefinitionsRelPath))
	if err != nil {
		return nil, err
	}
	displayTemplates, err := readSource(filepath.Join(root, DisplayTemplatesRelPath))
	if err != nil {
		return nil, err
	}
	return &Sources{Definitions: definitions, DisplayTemplates: displayTemplates}, nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &SourceError{Path: path, Message: "source file not found", Cause: err}
		}
		return "", &SourceError{Path: path, Message: "failed to read source file", Cause: err}
	}
	return string(data), nil
}
