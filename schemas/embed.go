// Package schemas holds the JSON Schema documents for the artifacts the service produces.
package schemas

import _ "embed"

// Candidate is the JSON Schema for an extracted candidate profile.
//
//go:embed candidate.schema.json
var Candidate string
