package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

// Session is one job search run against a parsed resume. ResumeHash ties
// repeat searches for the same document together.
type Session struct {
	ID              uuid.UUID  `json:"id"`
	ResumeHash      string     `json:"resume_hash"`
	ResumeFilename  string     `json:"resume_filename"`
	CandidateName   string     `json:"candidate_name,omitempty"`
	CandidateEmail  string     `json:"candidate_email,omitempty"`
	JobRoles        []string   `json:"job_roles"`
	TotalJobsFound  int        `json:"total_jobs_found"`
	MarketReadiness *float64   `json:"market_readiness,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// CreateSession records a new search session and returns its ID.
func (s *Store) CreateSession(ctx context.Context, resumeHash, filename, candidateName, candidateEmail string, roles []string) (uuid.UUID, error) {
	rolesJSON, err := json.Marshal(roles)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal roles: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO search_sessions (resume_hash, resume_filename, candidate_name, candidate_email, job_roles)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		resumeHash, filename, candidateName, candidateEmail, rolesJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// CompleteSession marks a session finished and records its readiness score
// and posting count.
func (s *Store) CompleteSession(ctx context.Context, sessionID uuid.UUID, totalJobs int, marketReadiness float64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE search_sessions
		 SET total_jobs_found = $1, market_readiness = $2, completed_at = NOW()
		 WHERE id = $3`,
		totalJobs, marketReadiness, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID, or nil if it does not exist.
func (s *Store) GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	var session Session
	var rolesJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, resume_hash, resume_filename, candidate_name, candidate_email,
		        job_roles, total_jobs_found, market_readiness, created_at, completed_at
		 FROM search_sessions WHERE id = $1`,
		sessionID,
	).Scan(&session.ID, &session.ResumeHash, &session.ResumeFilename,
		&session.CandidateName, &session.CandidateEmail, &rolesJSON,
		&session.TotalJobsFound, &session.MarketReadiness, &session.CreatedAt, &session.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if len(rolesJSON) > 0 {
		if err := json.Unmarshal(rolesJSON, &session.JobRoles); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session roles: %w", err)
		}
	}
	return &session, nil
}

// ListSessions retrieves the sessions recorded for a resume hash, newest
// first.
func (s *Store) ListSessions(ctx context.Context, resumeHash string, limit int) ([]Session, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, resume_hash, resume_filename, candidate_name, candidate_email,
		        job_roles, total_jobs_found, market_readiness, created_at, completed_at
		 FROM search_sessions WHERE resume_hash = $1
		 ORDER BY created_at DESC LIMIT $2`,
		resumeHash, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var session Session
		var rolesJSON []byte
		if err := rows.Scan(&session.ID, &session.ResumeHash, &session.ResumeFilename,
			&session.CandidateName, &session.CandidateEmail, &rolesJSON,
			&session.TotalJobsFound, &session.MarketReadiness, &session.CreatedAt, &session.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if len(rolesJSON) > 0 {
			if err := json.Unmarshal(rolesJSON, &session.JobRoles); err != nil {
				return nil, fmt.Errorf("failed to unmarshal session roles: %w", err)
			}
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// DeleteSession deletes a session and its postings and analysis via
// cascade.
func (s *Store) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM search_sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	return nil
}

// SavePostings stores the postings fetched during a session, with the role
// each one was grouped under (empty for unassigned postings).
func (s *Store) SavePostings(ctx context.Context, sessionID uuid.UUID, postings []types.JobPosting, matchedRoles []string) error {
	if len(matchedRoles) > 0 && len(matchedRoles) != len(postings) {
		return fmt.Errorf("matched roles length %d does not match postings length %d", len(matchedRoles), len(postings))
	}

	batch := &pgx.Batch{}
	for i, posting := range postings {
		skillsJSON, err := json.Marshal(posting.RequiredSkills)
		if err != nil {
			return fmt.Errorf("failed to marshal posting skills: %w", err)
		}
		matchedRole := ""
		if len(matchedRoles) > 0 {
			matchedRole = matchedRoles[i]
		}
		batch.Queue(
			`INSERT INTO session_postings
			   (session_id, title, company, location, description, required_skills,
			    salary, url, posted_date, source, matched_role)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			sessionID, posting.Title, posting.Company, posting.Location, posting.Description,
			skillsJSON, posting.Salary, posting.URL, posting.PostedDate, posting.Source, matchedRole,
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range postings {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save posting: %w", err)
		}
	}
	return nil
}

// GetSessionPostings retrieves the postings stored for a session in
// insertion order.
func (s *Store) GetSessionPostings(ctx context.Context, sessionID uuid.UUID) ([]types.JobPosting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT title, company, location, description, required_skills,
		        salary, url, posted_date, source
		 FROM session_postings WHERE session_id = $1
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get session postings: %w", err)
	}
	defer rows.Close()

	var postings []types.JobPosting
	for rows.Next() {
		var posting types.JobPosting
		var skillsJSON []byte
		if err := rows.Scan(&posting.Title, &posting.Company, &posting.Location,
			&posting.Description, &skillsJSON, &posting.Salary, &posting.URL,
			&posting.PostedDate, &posting.Source); err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		if len(skillsJSON) > 0 {
			if err := json.Unmarshal(skillsJSON, &posting.RequiredSkills); err != nil {
				return nil, fmt.Errorf("failed to unmarshal posting skills: %w", err)
			}
		}
		postings = append(postings, posting)
	}
	return postings, nil
}
