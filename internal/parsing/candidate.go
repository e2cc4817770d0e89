// Package parsing turns model responses about a résumé into a validated candidate profile.
package parsing

import (
	"time"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/experience"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/lexicon"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/llm"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/skills"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
)

// ExtractCandidate builds a candidate from a model response and the normalized résumé text.
//
// The response may still carry prose or code fences; the first JSON object is recovered
// from it. Missing or malformed fields take defaults. Skills found by scanning the text
// are merged in at types.DefaultSkillYears, and when the model gives no positive total
// the experience span is estimated from the employment history as of now.
// A *ParseError is returned only when no JSON object can be read at all.
func ExtractCandidate(response, normalizedText string, lex *lexicon.Lexicon, now time.Time) (*types.Candidate, error) {
	return candidateFromJSON(llm.RecoverJSON(response), normalizedText, lex, now)
}

// candidateFromJSON is ExtractCandidate for text that has already been through llm.RecoverJSON.
func candidateFromJSON(jsonText, normalizedText string, lex *lexicon.Lexicon, now time.Time) (*types.Candidate, error) {
	doc, err := decodeDocument(jsonText)
	if err != nil {
		return nil, err
	}

	fullName, _ := stringValue(doc.FullName)
	email, _ := stringValue(doc.Email)
	phone, _ := stringValue(doc.Phone)
	location, _ := stringValue(doc.Location)

	employment := []types.EmploymentRecord(doc.Employment)
	if employment == nil {
		employment = []types.EmploymentRecord{}
	}

	years := totalYears(doc.TotalYearsExperience)
	if years <= 0 {
		years = experience.EstimateYears(employment, now)
	}

	return &types.Candidate{
		FullName:             fullName,
		Email:                email,
		Phone:                phone,
		Location:             location,
		GithubURL:            absoluteURL(doc.GithubURL),
		LinkedInURL:          absoluteURL(doc.LinkedInURL),
		TotalYearsExperience: min(max(years, 0), types.MaxYears),
		Skills:               skills.Merge(doc.Skills.items, skills.Scan(normalizedText, lex)),
		Employment:           employment,
	}, nil
}
