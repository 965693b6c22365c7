package parser

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Parse recovers a JSON value from raw agent output. The text is nominally
// JSON but may arrive wrapped in prose, markdown code fences, or with
// leading/trailing commentary. Returns false when nothing recoverable was
// found; it never panics and never returns an error.
//
// A non-object value (a bare number, an array) is still valid output: the
// caller decides whether the shape is usable.
func Parse(raw string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}

	if out, ok := tryParse(trimmed); ok {
		return out, true
	}

	// JSON buried in surrounding prose.
	if candidate, ok := extractObject(trimmed); ok {
		if out, ok := tryParse(candidate); ok {
			return out, true
		}
	}

	// JSON inside a fenced code block.
	if fenced, ok := extractFence(trimmed); ok {
		if out, ok := tryParse(fenced); ok {
			return out, true
		}
		if candidate, ok := extractObject(fenced); ok {
			if out, ok := tryParse(candidate); ok {
				return out, true
			}
		}
	}

	// Last resort: hand the most promising substring to jsonrepair, which
	// fixes single quotes, trailing commas and similar LLM malformations.
	for _, candidate := range repairCandidates(trimmed) {
		repaired, err := jsonrepair.JSONRepair(candidate)
		if err != nil {
			continue
		}
		if out, ok := tryParse(repaired); ok {
			return out, true
		}
	}

	return nil, false
}

func tryParse(s string) (json.RawMessage, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !json.Valid([]byte(s)) {
		return nil, false
	}
	return json.RawMessage(s), true
}

// extractObject returns the substring from the first '{' to its matching
// '}'. The scan tracks string literals and backslash escapes so braces
// inside quoted values do not terminate the object early.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// extractFence returns the content of the first ``` fenced block. The
// language tag on the opening fence, if any, is dropped.
func extractFence(s string) (string, bool) {
	open := strings.Index(s, "```")
	if open < 0 {
		return "", false
	}
	rest := s[open+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		// Skip a language tag such as ```json.
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]\"") {
			rest = rest[nl+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// repairCandidates lists substrings worth handing to jsonrepair. Plain prose
// and unterminated objects are excluded: repairing those would fabricate a
// value out of text that carries none.
func repairCandidates(s string) []string {
	var candidates []string
	if repairable(s) {
		candidates = append(candidates, s)
	}
	if fenced, ok := extractFence(s); ok && repairable(fenced) {
		candidates = append(candidates, fenced)
	}
	return candidates
}

func repairable(s string) bool {
	if strings.ContainsRune(s, '{') && strings.ContainsRune(s, '}') {
		return true
	}
	return strings.ContainsRune(s, '[') && strings.ContainsRune(s, ']')
}
