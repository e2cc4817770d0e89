// Package analysis runs the résumé analysis flow: extraction, persistence,
// repository scan and scoring.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/db"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/ingestion"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/lexicon"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/ranking"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when a stored candidate does not exist
var ErrNotFound = errors.New("candidate not found")

// CandidateExtractor turns résumé text into a candidate profile
type CandidateExtractor interface {
	Extract(ctx context.Context, cvText, targetRole string) (*types.Candidate, error)
}

// CandidateStore persists candidate profiles
type CandidateStore interface {
	SaveCandidate(ctx context.Context, input *db.CandidateInput) (uuid.UUID, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (*db.StoredCandidate, error)
}

// RepoScanner lists public repositories for a profile URL
type RepoScanner interface {
	Scan(ctx context.Context, profileURL string) ([]types.RepoSummary, error)
}

// ProfileLookup reads a public professional profile; nil means nothing was found
type ProfileLookup interface {
	Lookup(ctx context.Context, profileURL string) *types.LinkedInProfile
}

// Service wires the analysis collaborators together
type Service struct {
	extractor CandidateExtractor
	store     CandidateStore
	repos     RepoScanner
	profiles  ProfileLookup
	lexicon   *lexicon.Lexicon
}

// Option configures a Service
type Option func(*Service)

// WithStore enables persistence. Without a store candidates get the nil UUID.
func WithStore(store CandidateStore) Option {
	return func(s *Service) { s.store = store }
}

// WithRepoScanner enables the repository scan
func WithRepoScanner(scanner RepoScanner) Option {
	return func(s *Service) { s.repos = scanner }
}

// WithProfileLookup enables the LinkedIn lookup
func WithProfileLookup(lookup ProfileLookup) Option {
	return func(s *Service) { s.profiles = lookup }
}

// NewService creates an analysis service. A nil lexicon uses the built-in one.
func NewService(extractor CandidateExtractor, lex *lexicon.Lexicon, opts ...Option) *Service {
	if lex == nil {
		lex = lexicon.Default()
	}
	s := &Service{extractor: extractor, lexicon: lex}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze extracts a candidate from the résumé text, stores it, scans its
// repositories and scores it against the target role. Storage failures fail
// the analysis; repository and profile lookups only log.
func (s *Service) Analyze(ctx context.Context, req *types.AnalyzeRequest) (*types.AnalyzeResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	candidate, err := s.extractor.Extract(ctx, req.Text, req.TargetRolePrompt)
	if err != nil {
		return nil, err
	}

	meta := ingestion.NewMetadata(req.Text, req.FileName)

	var (
		candidateID uuid.UUID
		repos       = []types.RepoSummary{}
		linkedIn    *types.LinkedInProfile
	)

	g, gCtx := errgroup.WithContext(ctx)

	if s.store != nil {
		g.Go(func() error {
			id, err := s.store.SaveCandidate(gCtx, &db.CandidateInput{
				Candidate:  candidate,
				TargetRole: req.TargetRolePrompt,
				SourceFile: meta.FileName,
				SourceHash: meta.Hash,
			})
			if err != nil {
				return fmt.Errorf("failed to save candidate: %w", err)
			}
			candidateID = id
			return nil
		})
	}

	if s.repos != nil && candidate.GithubURL != nil && strings.TrimSpace(*candidate.GithubURL) != "" {
		g.Go(func() error {
			found, err := s.repos.Scan(gCtx, *candidate.GithubURL)
			if err != nil {
				log.Printf("GitHub scan failed for %s: %v", *candidate.GithubURL, err)
				return nil
			}
			if found != nil {
				repos = found
			}
			return nil
		})
	}

	if s.profiles != nil && candidate.LinkedInURL != nil {
		g.Go(func() error {
			linkedIn = s.profiles.Lookup(gCtx, *candidate.LinkedInURL)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	match := ranking.Score(candidate.Skills, req.TargetRolePrompt, req.MustHaveCSV, s.lexicon)

	return &types.AnalyzeResult{
		CandidateID:          candidateID,
		FullName:             candidate.FullName,
		TotalYearsExperience: candidate.TotalYearsExperience,
		MatchPercentage:      match.Percentage,
		TrafficLight:         match.TrafficLight,
		SkillBars:            SkillBars(candidate.Skills),
		GithubRepos:          repos,
		LinkedIn:             linkedIn,
	}, nil
}

// Match scores a skill set against a target role
func (s *Service) Match(req *types.MatchRequest) (types.MatchResult, error) {
	if err := req.Validate(); err != nil {
		return types.MatchResult{}, err
	}
	return ranking.Score(req.Skills, req.TargetRole, req.MustHaveCSV, s.lexicon), nil
}

// GetCandidate loads a stored candidate, returning ErrNotFound when it does not exist
func (s *Service) GetCandidate(ctx context.Context, id uuid.UUID) (*db.StoredCandidate, error) {
	if s.store == nil {
		return nil, ErrNotFound
	}
	stored, err := s.store.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrNotFound
	}
	return stored, nil
}

// SkillBars lists skills ordered by years, most experienced first. Ties keep
// their extraction order.
func SkillBars(skills []types.Skill) []types.SkillBar {
	bars := make([]types.SkillBar, 0, len(skills))
	for _, s := range skills {
		bars = append(bars, types.SkillBar{Skill: s.Name, Years: s.Years})
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Years > bars[j].Years
	})
	return bars
}
