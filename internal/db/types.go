package db

import (
	"time"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
	"github.com/google/uuid"
)

// CandidateInput is everything stored for one analysed résumé
type CandidateInput struct {
	Candidate  *types.Candidate
	TargetRole string
	SourceFile string
	SourceHash string
}

// StoredCandidate is a candidate row with its skills and employment history
type StoredCandidate struct {
	ID         uuid.UUID       `json:"id"`
	TargetRole string          `json:"targetRole"`
	SourceFile string          `json:"sourceFile"`
	SourceHash string          `json:"sourceHash"`
	CreatedAt  time.Time       `json:"createdAt"`
	Candidate  types.Candidate `json:"candidate"`
}

// employmentRow is an employment record prepared for insertion
type employmentRow struct {
	ID        uuid.UUID
	Company   string
	Title     string
	StartRaw  *string
	EndRaw    *string
	StartDate *time.Time
	EndDate   *time.Time
	Summary   string
	Ordinal   int
}
