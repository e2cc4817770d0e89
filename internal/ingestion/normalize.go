package ingestion

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxPromptChars is the largest amount of résumé text sent to the generation endpoint
const MaxPromptChars = 18000

var multiSpace = regexp.MustCompile(` {2,}`)

// NormalizeText prepares raw résumé text for extraction.
// Line endings become LF, words hyphenated across a line break are rejoined,
// lines are trimmed, empty lines dropped and runs of spaces collapsed.
func NormalizeText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	// CRLF becomes two breaks here; the empty line is dropped below
	text = strings.ReplaceAll(text, "\r", "\n")

	// "ASP-\nNET" => "ASPNET"
	text = strings.ReplaceAll(text, "-\n", "")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}

	return multiSpace.ReplaceAllString(strings.Join(kept, "\n"), " ")
}

// Truncate cuts text to at most max bytes without splitting a UTF-8 sequence
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
