package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/experience"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveCandidate stores a candidate with its skills and employment rows in one
// transaction and returns the new candidate ID.
func (db *DB) SaveCandidate(ctx context.Context, input *CandidateInput) (uuid.UUID, error) {
	if input == nil || input.Candidate == nil {
		return uuid.Nil, fmt.Errorf("candidate is required")
	}
	c := input.Candidate

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO candidates (id, full_name, email, phone, location, github_url, linkedin_url,
		                         total_years_experience, target_role, source_file, source_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, c.FullName, c.Email, c.Phone, c.Location, c.GithubURL, c.LinkedInURL,
		c.TotalYearsExperience, input.TargetRole, input.SourceFile, input.SourceHash,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert candidate: %w", err)
	}

	batch := &pgx.Batch{}
	for i, s := range c.Skills {
		batch.Queue(
			`INSERT INTO candidate_skills (id, candidate_id, name, years, ordinal)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), id, s.Name, s.Years, i+1,
		)
	}
	for _, row := range employmentRows(c.Employment) {
		batch.Queue(
			`INSERT INTO candidate_employment (id, candidate_id, company, title, start_raw, end_raw,
			                                   start_date, end_date, summary, ordinal)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			row.ID, id, row.Company, row.Title, row.StartRaw, row.EndRaw,
			row.StartDate, row.EndDate, row.Summary, row.Ordinal,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert candidate details: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit candidate: %w", err)
	}
	return id, nil
}

// GetCandidate loads a stored candidate by ID. Returns nil, nil when not found.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*StoredCandidate, error) {
	var stored StoredCandidate
	c := &stored.Candidate
	err := db.pool.QueryRow(ctx,
		`SELECT id, full_name, email, phone, location, github_url, linkedin_url,
		        total_years_experience, target_role, source_file, source_hash, created_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&stored.ID, &c.FullName, &c.Email, &c.Phone, &c.Location, &c.GithubURL, &c.LinkedInURL,
		&c.TotalYearsExperience, &stored.TargetRole, &stored.SourceFile, &stored.SourceHash, &stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if c.Skills, err = db.listSkills(ctx, id); err != nil {
		return nil, err
	}
	if c.Employment, err = db.listEmployment(ctx, id); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (db *DB) listSkills(ctx context.Context, candidateID uuid.UUID) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, years::float8 FROM candidate_skills WHERE candidate_id = $1 ORDER BY ordinal`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []types.Skill{}
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.Name, &s.Years); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (db *DB) listEmployment(ctx context.Context, candidateID uuid.UUID) ([]types.EmploymentRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT company, title, start_raw, end_raw, summary
		 FROM candidate_employment WHERE candidate_id = $1 ORDER BY ordinal`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment: %w", err)
	}
	defer rows.Close()

	records := []types.EmploymentRecord{}
	for rows.Next() {
		var r types.EmploymentRecord
		if err := rows.Scan(&r.Company, &r.Title, &r.Start, &r.End, &r.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan employment: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// employmentRows converts records for insertion. Dates that parse are also stored
// as DATE columns; ongoing or unreadable ends stay NULL.
func employmentRows(records []types.EmploymentRecord) []employmentRow {
	rows := make([]employmentRow, 0, len(records))
	for i, r := range records {
		rows = append(rows, employmentRow{
			ID:        uuid.New(),
			Company:   r.Company,
			Title:     r.Title,
			StartRaw:  optionalRaw(r.Start),
			EndRaw:    optionalRaw(r.End),
			StartDate: dateOnly(experience.ParseDatePtr(r.Start)),
			EndDate:   dateOnly(experience.ParseDatePtr(r.End)),
			Summary:   r.Summary,
			Ordinal:   i + 1,
		})
	}
	return rows
}

func optionalRaw(s *string) *string {
	if s == nil {
		return nil
	}
	return nullIfEmpty(*s)
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
