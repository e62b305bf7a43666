package extraction

import (
	"regexp"
	"sort"
)

// templateKeyPattern matches {placeholder} substitution keys inside a
// display template string.
var templateKeyPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// parseDisplayTemplates extracts the id to template string mapping from the
// display-templates source. Entries are dict items whose key is a string
// literal and whose value is a (possibly triple-quoted) string literal:
//
//	"SMRT12": """Your home has gained {appreciation_amount} in value.""",
//
// Anything that does not match that shape is ignored.
func parseDisplayTemplates(source string) map[string]string {
	templates := make(map[string]string)

	for i := 0; i < len(source); {
		switch source[i] {
		case '#':
			for i < len(source) && source[i] != '\n' {
				i++
			}
		case '\'', '"':
			key, next, ok := scanPyString(source, i)
			if !ok {
				i = next
				continue
			}
			i = next

			// A template entry is "key": "value"; anything else restarts the scan.
			j := skipSpace(source, i)
			if j >= len(source) || source[j] != ':' {
				continue
			}
			j = skipSpace(source, j+1)
			value, after, ok := scanPyString(source, j)
			if !ok {
				continue
			}
			if key != "" {
				templates[key] = value
			}
			i = after
		default:
			i++
		}
	}

	return templates
}

// templateKeys returns the sorted, deduplicated substitution keys used by a
// display template.
func templateKeys(tmpl string) []string {
	matches := templateKeyPattern.FindAllStringSubmatch(tmpl, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var keys []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	sort.Strings(keys)
	return keys
}

// skipSpace advances past whitespace starting at s[i].
func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}
