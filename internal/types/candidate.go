// Package types provides type definitions for structured data used throughout the CV matching system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// MaxYears is the ceiling applied to any experience value read from a model response.
const MaxYears = 60

// DefaultSkillYears is assigned to skills whose experience is unknown.
const DefaultSkillYears = 0.5

// Candidate is the canonical profile extracted from a résumé
type Candidate struct {
	FullName             string             `json:"fullName"`
	Email                string             `json:"email"`
	Phone                string             `json:"phone"`
	Location             string             `json:"location"`
	GithubURL            *string            `json:"githubUrl"`
	LinkedInURL          *string            `json:"linkedInUrl"`
	TotalYearsExperience int                `json:"totalYearsExperience"`
	Skills               []Skill            `json:"skills"`
	Employment           []EmploymentRecord `json:"employment"`
}

// Skill is a named skill with years of relevant experience
type Skill struct {
	Name  string  `json:"name" validate:"required"`
	Years float64 `json:"years" validate:"gte=0"`
}

// EmploymentRecord is a single position from the employment history.
// Start and End hold the raw date strings; a nil End means the position is current.
type EmploymentRecord struct {
	Company string  `json:"company"`
	Title   string  `json:"title"`
	Start   *string `json:"start"`
	End     *string `json:"end"`
	Summary string  `json:"summary"`
}

// RepoSummary describes one public repository found for a candidate
type RepoSummary struct {
	Name      string           `json:"name"`
	URL       string           `json:"url"`
	Languages map[string]int64 `json:"languages"`
}

// LinkedInProfile holds the few public fields readable from a profile page
type LinkedInProfile struct {
	Headline string `json:"headline"`
	Location string `json:"location"`
}

// SkillBar is a skill row in the analysis response, ordered by years
type SkillBar struct {
	Skill string  `json:"skill"`
	Years float64 `json:"years"`
}

// AnalyzeResult is returned after a résumé has been extracted, stored and scored
type AnalyzeResult struct {
	CandidateID          uuid.UUID        `json:"candidateId"`
	FullName             string           `json:"fullName"`
	TotalYearsExperience int              `json:"totalYearsExperience"`
	MatchPercentage      float64          `json:"matchPercentage"`
	TrafficLight         TrafficLight     `json:"trafficLight"`
	SkillBars            []SkillBar       `json:"skillBars"`
	GithubRepos          []RepoSummary    `json:"githubRepos"`
	LinkedIn             *LinkedInProfile `json:"linkedIn,omitempty"`
}
