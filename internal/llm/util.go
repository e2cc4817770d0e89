// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import (
	"strings"
	"unicode"
)

const fence = "```"

// SanitizeResponse strips prose wrappers and markdown fences from a model response.
// LLMs often wrap JSON in ```json ... ``` blocks or prefix it with "JSON:" even when instructed not to.
// An empty response is treated as an empty object.
func SanitizeResponse(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "{}"
	}
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, fence) {
		// The first line holds the fence and an optional language tag
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, fence); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.IndexByte(s, '{'); idx > 0 && strings.IndexFunc(s[:idx], unicode.IsLetter) >= 0 {
		s = s[idx:]
	}

	return strings.TrimSpace(s)
}

// LocateJSONObject returns the first brace-balanced {...} span in s.
// Scanning stops where the depth first returns to zero, so trailing text is ignored.
// Braces are counted wherever they appear, including inside string values.
func LocateJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
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

// RecoverJSON sanitizes a raw model response and cuts out the first balanced object.
// When no balanced object exists the sanitized text is returned unchanged.
func RecoverJSON(raw string) string {
	cleaned := SanitizeResponse(raw)
	if obj, ok := LocateJSONObject(cleaned); ok {
		return obj
	}
	return cleaned
}
