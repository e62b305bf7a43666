package extraction

import (
	"strconv"
	"strings"
)

// Helpers for pulling Python literal values out of source text. This is not a
// Python parser; only the literal forms used by the smart_facts sources are
// supported (plain/triple-quoted strings, ints, True/False, flat lists, and
// dotted enum references).

// scanPyString reads a Python string literal starting at s[i]. An optional
// single-letter prefix (f, r, u) before the opening quote is accepted.
// Returns the decoded value and the index just past the closing quote.
func scanPyString(s string, i int) (string, int, bool) {
	if i < len(s) {
		switch s[i] {
		case 'f', 'r', 'u', 'F', 'R', 'U':
			if i+1 < len(s) && (s[i+1] == '\'' || s[i+1] == '"') {
				i++
			}
		}
	}
	if i >= len(s) || (s[i] != '\'' && s[i] != '"') {
		return "", i, false
	}

	quote := s[i]
	delim := string(quote)
	if strings.HasPrefix(s[i:], strings.Repeat(delim, 3)) {
		delim = strings.Repeat(delim, 3)
	}
	i += len(delim)

	var sb strings.Builder
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(s[i+1])
			}
			i += 2
			continue
		}
		if strings.HasPrefix(s[i:], delim) {
			return sb.String(), i + len(delim), true
		}
		sb.WriteByte(s[i])
		i++
	}
	// Unterminated literal; treat everything consumed as the value.
	return sb.String(), i, false
}

// skipPyString advances past the string literal starting at s[i] without
// decoding it. Returns i unchanged if s[i] does not open a string.
func skipPyString(s string, i int) int {
	if i >= len(s) || (s[i] != '\'' && s[i] != '"') {
		return i
	}
	_, next, _ := scanPyString(s, i)
	return next
}

// splitTopLevel splits a kwargs body on commas at bracket depth zero,
// skipping commas inside string literals and nested brackets.
func splitTopLevel(body string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(body); {
		switch body[i] {
		case '\'', '"':
			i = skipPyString(body, i)
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '#':
			// Comment runs to end of line.
			for i < len(body) && body[i] != '\n' {
				i++
			}
			continue
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
		i++
	}
	if tail := strings.TrimSpace(body[start:]); tail != "" {
		parts = append(parts, body[start:])
	}
	return parts
}

// pyString decodes a string literal value, concatenating adjacent literals
// ("a" "b" is "ab" in Python source). Values wrapped in parentheses for
// multi-line layout are unwrapped first.
func pyString(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")") {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}
	var sb strings.Builder
	i := 0
	found := false
	for i < len(raw) {
		val, next, ok := scanPyString(raw, i)
		if !ok {
			break
		}
		sb.WriteString(val)
		found = true
		i = next
		for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n' || raw[i] == '\r') {
			i++
		}
	}
	if !found {
		return "", false
	}
	return sb.String(), true
}

// pyBool interprets True/False.
func pyBool(raw string) (bool, bool) {
	switch strings.TrimSpace(raw) {
	case "True":
		return true, true
	case "False":
		return false, true
	}
	return false, false
}

// pyInt parses an integer literal.
func pyInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// pyList extracts a flat Python list as strings. Elements may be string
// literals or dotted identifiers; identifiers reduce to their last attribute
// (Context.SYSTEM becomes "SYSTEM").
func pyList(raw string) ([]string, bool) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return nil, false
	}
	inner := raw[1 : len(raw)-1]
	var out []string
	for _, part := range splitTopLevel(inner) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if val, ok := pyString(part); ok {
			out = append(out, val)
			continue
		}
		out = append(out, attrName(part))
	}
	return out, true
}

// attrName reduces a dotted reference to its final attribute name.
func attrName(ref string) string {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "."); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
