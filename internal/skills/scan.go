// Package skills detects and reconciles candidate skills.
package skills

import (
	"strings"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/lexicon"
)

// MaxScanResults caps the number of keywords returned by Scan.
const MaxScanResults = 20

// Scan reports which lexicon keywords occur in text as case-insensitive substrings.
// Results keep lexicon order and casing, contain no case-insensitive duplicates and
// are capped at MaxScanResults. A nil lexicon uses lexicon.Default().
func Scan(text string, lex *lexicon.Lexicon) []string {
	if lex == nil {
		lex = lexicon.Default()
	}
	haystack := strings.ToLower(text)
	if strings.TrimSpace(haystack) == "" {
		return nil
	}

	seen := make(map[string]bool)
	var found []string
	for _, keyword := range lex.Skills {
		key := strings.ToLower(keyword)
		if seen[key] || !strings.Contains(haystack, key) {
			continue
		}
		seen[key] = true
		found = append(found, keyword)
		if len(found) == MaxScanResults {
			break
		}
	}
	return found
}
