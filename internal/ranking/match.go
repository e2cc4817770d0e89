// Package ranking scores a candidate's skills against a target-role requirement list.
package ranking

import (
	"math"
	"strings"
	"unicode"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/lexicon"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
)

const (
	// GreenThreshold is exceeded by strong matches
	GreenThreshold = 80.0
	// RedThreshold is undercut by weak matches
	RedThreshold = 60.0
	// NeutralPercentage is reported when there is nothing to match against
	NeutralPercentage = 50.0
	// fullCreditYears of experience earn a requirement's full credit
	fullCreditYears = 2.0
)

// Score rates skills against the requirements for targetRole.
//
// Each requirement earns min(1, years/2) when the candidate holds a skill with the
// same key and positive years. The percentage is the mean credit times 100, rounded
// to two decimals half to even. With no requirements the result is neutral: 50 and Yellow.
func Score(skills []types.Skill, targetRole, mustHaveCSV string, lex *lexicon.Lexicon) types.MatchResult {
	requirements := ResolveRequirements(targetRole, mustHaveCSV, lex)
	if len(requirements) == 0 {
		return types.MatchResult{Percentage: NeutralPercentage, TrafficLight: types.Yellow}
	}

	held := make(map[string]float64, len(skills))
	for _, s := range skills {
		key := NormalizeKey(s.Name)
		if years, ok := held[key]; !ok || s.Years > years {
			held[key] = s.Years
		}
	}

	credit := 0.0
	for _, req := range requirements {
		if years, ok := held[NormalizeKey(req)]; ok && years > 0 {
			credit += math.Min(1, years/fullCreditYears)
		}
	}

	pct := roundPercent(credit / float64(len(requirements)) * 100)
	return types.MatchResult{Percentage: pct, TrafficLight: Classify(pct)}
}

// roundPercent rounds to two decimals, half to even. The scaled value is snapped to
// six decimals first so float noise such as 1234.4999999999998 still counts as a tie.
func roundPercent(v float64) float64 {
	scaled := math.Round(v*100*1e6) / 1e6
	return math.RoundToEven(scaled) / 100
}

// ResolveRequirements returns the requirement list for a role. A non-blank CSV wins and
// is split on commas with entries trimmed and empties dropped. Otherwise the first lexicon
// trigger whose keyword occurs in targetRole supplies its list. A nil lexicon uses
// lexicon.Default().
func ResolveRequirements(targetRole, mustHaveCSV string, lex *lexicon.Lexicon) []string {
	if strings.TrimSpace(mustHaveCSV) != "" {
		var out []string
		for _, part := range strings.Split(mustHaveCSV, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	if lex == nil {
		lex = lexicon.Default()
	}
	return lex.RequirementsFor(targetRole)
}

// Classify maps a percentage to a traffic light.
func Classify(pct float64) types.TrafficLight {
	switch {
	case pct > GreenThreshold:
		return types.Green
	case pct < RedThreshold:
		return types.Red
	default:
		return types.Yellow
	}
}

// NormalizeKey lower-cases a skill name and keeps only letters and digits,
// so "ASP.NET Core" and "asp net-core" compare equal.
func NormalizeKey(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
