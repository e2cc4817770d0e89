// Package types provides type definitions for structured data used throughout the CV matching system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// TrafficLight is the three-tier summary of a match percentage
type TrafficLight string

// Traffic light values
const (
	Green  TrafficLight = "Green"
	Yellow TrafficLight = "Yellow"
	Red    TrafficLight = "Red"
)

// MatchResult is the score of a candidate against a requirement list
type MatchResult struct {
	Percentage   float64      `json:"matchPercentage"`
	TrafficLight TrafficLight `json:"trafficLight"`
}

// MatchRequest asks for a score of a skill set against a target role.
type MatchRequest struct {
	Skills      []Skill `json:"skills" validate:"dive"`
	TargetRole  string  `json:"targetRole"`
	MustHaveCSV string  `json:"mustHaveCsv,omitempty"`
}

// AnalyzeRequest carries the non-file inputs of a résumé analysis.
type AnalyzeRequest struct {
	FileName         string `validate:"required"`
	Text             string `validate:"required"`
	TargetRolePrompt string `validate:"required"`
	MustHaveCSV      string
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
