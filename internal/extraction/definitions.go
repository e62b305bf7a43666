// Package extraction pulls Smart Fact records out of the two definition
// source files. Extraction is pattern-based: it locates constructor blocks
// and keyword fields by structural markers rather than parsing Python, and
// it only tolerates the conventions those two files actually use.
package extraction

import (
	"strings"

	"go.uber.org/zap"

	"github.com/hometap/smartfacts-dashboard/internal/types"
)

// definitionMarker opens a Smart Fact definition block in the definitions source.
const definitionMarker = "SmartFactDefinition("

// Extractor turns source file contents into an ordered slice of insights.
type Extractor struct {
	logger *zap.Logger
}

// New creates an Extractor. A nil logger disables warning output.
func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract produces the normalized insight records from the definitions source
// and the display-templates source. Blocks that do not match the expected
// shape are skipped with a warning; the run degrades gracefully rather than
// aborting on one malformed entry.
func (e *Extractor) Extract(definitions, displayTemplates string) []types.Insight {
	templates := parseDisplayTemplates(displayTemplates)

	var insights []types.Insight
	seen := make(map[string]bool)

	for _, body := range findDefinitionBlocks(definitions) {
		insight, err := parseDefinitionBlock(body)
		if err != nil {
			e.logger.Warn("malformed definition block", zap.Error(err))
			continue
		}
		if seen[insight.ID] {
			e.logger.Warn("duplicate insight id, keeping first occurrence", zap.String("id", insight.ID))
			continue
		}

		if tmpl, ok := templates[insight.ID]; ok {
			insight.TemplateKeys = templateKeys(tmpl)
		}
		insight.IsDynamic = len(insight.TemplateKeys) > 0
		if insight.Type == "" {
			if insight.IsDynamic {
				insight.Type = "dynamic"
			} else {
				insight.Type = "static"
			}
		}

		if err := insight.Validate(); err != nil {
			e.logger.Warn("insight failed validation", zap.String("id", insight.ID), zap.Error(err))
			continue
		}

		seen[insight.ID] = true
		insights = append(insights, insight)
	}

	return insights
}

// findDefinitionBlocks returns the kwargs body of every definition block,
// located by the constructor marker and closed by balancing parentheses.
// String literals and comments are skipped both while searching for the
// marker and while balancing, so the marker text inside a string does not
// open a block.
func findDefinitionBlocks(source string) []string {
	var blocks []string
	for i := 0; i < len(source); {
		switch source[i] {
		case '\'', '"':
			i = skipPyString(source, i)
		case '#':
			for i < len(source) && source[i] != '\n' {
				i++
			}
		default:
			if strings.HasPrefix(source[i:], definitionMarker) {
				body, end, ok := captureBalanced(source, i+len(definitionMarker))
				if !ok {
					return blocks
				}
				blocks = append(blocks, body)
				i = end
				continue
			}
			i++
		}
	}
	return blocks
}

// captureBalanced reads from s[start] (just inside an opening paren) to the
// matching close paren. Returns the enclosed text and the index past it.
func captureBalanced(s string, start int) (string, int, bool) {
	depth := 1
	for i := start; i < len(s); {
		switch s[i] {
		case '\'', '"':
			i = skipPyString(s, i)
			continue
		case '#':
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return s[start:i], i + 1, true
			}
		}
		i++
	}
	return "", len(s), false
}

// parseDefinitionBlock extracts the keyword fields of one block into an
// insight. Required fields are id, content, and status.
func parseDefinitionBlock(body string) (types.Insight, error) {
	fields := make(map[string]string)
	for _, arg := range splitTopLevel(body) {
		eq := strings.Index(arg, "=")
		if eq < 0 {
			continue
		}
		name := strings.TrimSpace(arg[:eq])
		if name == "" || strings.ContainsAny(name, " \t\n") {
			continue
		}
		fields[name] = strings.TrimSpace(arg[eq+1:])
	}

	var insight types.Insight

	id, ok := pyString(fields["id"])
	if !ok || id == "" {
		return insight, &BlockError{Message: "missing id field"}
	}
	insight.ID = id

	content, ok := pyString(fields["content"])
	if !ok || content == "" {
		return insight, &BlockError{ID: id, Message: "missing content field"}
	}
	insight.Content = content

	status, ok := fields["status"]
	if !ok || strings.TrimSpace(status) == "" {
		return insight, &BlockError{ID: id, Message: "missing status field"}
	}
	if literal, isLiteral := pyString(status); isLiteral {
		insight.Status = NormalizeStatus(literal)
	} else {
		insight.Status = NormalizeStatus(status)
	}

	if raw, ok := fields["category"]; ok {
		if category, isLiteral := pyString(raw); isLiteral {
			insight.Type = NormalizeCategory(category)
		}
	}
	if raw, ok := fields["priority"]; ok {
		if priority, isInt := pyInt(raw); isInt {
			insight.Priority = priority
		}
	}
	if raw, ok := fields["required_context"]; ok {
		if contexts, isList := pyList(raw); isList {
			insight.RequiredContext = contexts
		}
	}
	if raw, ok := fields["requires_primary_user"]; ok {
		insight.RequiresPrimaryUser, _ = pyBool(raw)
	}
	if raw, ok := fields["requires_profile_complete"]; ok {
		insight.RequiresProfileComplete, _ = pyBool(raw)
	}

	ctaText, hasText := pyString(fields["cta_text"])
	ctaURL, hasURL := pyString(fields["cta_url"])
	if hasText && hasURL && ctaText != "" && ctaURL != "" {
		insight.HasCTA = true
		insight.CTA = &types.CTA{Text: ctaText, URL: ctaURL}
	}

	return insight, nil
}
