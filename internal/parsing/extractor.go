package parsing

import (
	"context"
	"fmt"
	"time"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/ingestion"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/lexicon"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/llm"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/observability"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/prompts"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/schemas"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
)

// Extractor runs résumé text through a generation model and builds the candidate profile.
type Extractor struct {
	client  llm.Client
	lexicon *lexicon.Lexicon
	sink    observability.ResponseSink
	tier    llm.ModelTier
	now     func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSink routes raw model responses to sink.
func WithSink(sink observability.ResponseSink) Option {
	return func(e *Extractor) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithClock overrides the time used for open-ended employment records.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		if now != nil {
			e.now = now
		}
	}
}

// WithTier selects the model tier used for extraction (default llm.TierStandard).
func WithTier(tier llm.ModelTier) Option {
	return func(e *Extractor) { e.tier = tier }
}

// NewExtractor creates an Extractor. A nil lexicon uses lexicon.Default().
func NewExtractor(client llm.Client, lex *lexicon.Lexicon, opts ...Option) *Extractor {
	if lex == nil {
		lex = lexicon.Default()
	}
	e := &Extractor{
		client:  client,
		lexicon: lex,
		sink:    observability.NopSink{},
		tier:    llm.TierStandard,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract normalizes cvText, asks the model for a structured profile aimed at
// targetRole and builds a schema-valid candidate from the answer.
func (e *Extractor) Extract(ctx context.Context, cvText, targetRole string) (*types.Candidate, error) {
	normalized := ingestion.NormalizeText(cvText)
	if normalized == "" {
		return nil, &ingestion.UnsupportedInputError{Message: "CV text is empty"}
	}

	prompt := BuildExtractionPrompt(targetRole, ingestion.Truncate(normalized, ingestion.MaxPromptChars))

	raw, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return nil, &APICallError{
			Model:   e.client.GetModel(e.tier),
			Message: "failed to generate candidate JSON",
			Cause:   err,
		}
	}

	recovered := llm.RecoverJSON(raw)
	e.sink.RawResponse(e.client.GetModel(e.tier), raw, recovered)

	candidate, err := candidateFromJSON(recovered, normalized, e.lexicon, e.now())
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateCandidate(candidate); err != nil {
		return nil, fmt.Errorf("extracted candidate failed schema validation: %w", err)
	}

	return candidate, nil
}

// BuildExtractionPrompt fills the embedded extraction template.
func BuildExtractionPrompt(targetRole, cvText string) string {
	template := prompts.MustGet("extraction.json", "extract-candidate")
	return prompts.Format(template, map[string]string{
		"TargetRole": targetRole,
		"CVText":     cvText,
	})
}
